package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/langhost/langhost/internal/config"
	"github.com/langhost/langhost/internal/logging"
	"github.com/langhost/langhost/internal/lsp"
	"github.com/langhost/langhost/internal/project"
	"github.com/langhost/langhost/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "langhost",
	Short: "Supervisor for per-language protocol server connections",
	Long: `Langhost supervises one language server connection per configured language.
It resolves each server's configuration, allocates ports, spawns or attaches to
the server, applies configuration changes live or through a restart, and tears
everything down on exit.`,
	Example: `
  # Supervise all configured servers
  langhost

  # Run with debug logging in a specific directory
  langhost -d -c /path/to/dir

  # Supervise only the servers needed for the given files
  langhost -o main.py -o index.js

  # Use a project directory as the server root path
  langhost -P /path/to/project
  `,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If the help flag is set, show the help message
		if cmd.Flag("help").Changed {
			cmd.Help()
			return nil
		}
		if cmd.Flag("version").Changed {
			fmt.Println(version.Version)
			return nil
		}

		debug, _ := cmd.Flags().GetBool("debug")
		cwd, _ := cmd.Flags().GetString("cwd")
		projectPath, _ := cmd.Flags().GetString("project")
		openFiles, _ := cmd.Flags().GetStringSlice("open")

		if cwd != "" {
			err := os.Chdir(cwd)
			if err != nil {
				return fmt.Errorf("failed to change directory: %v", err)
			}
		}
		if cwd == "" {
			c, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current working directory: %v", err)
			}
			cwd = c
		}

		cfg, err := config.Load(cwd, debug)
		if err != nil {
			return err
		}

		if projectPath == "" {
			projectPath = cfg.Project.Path
		}
		projects := project.NewService(projectPath)

		manager := lsp.NewManager(lsp.NewProcessClient, cfg.Servers,
			lsp.WithProjects(projects),
			lsp.WithDataDir(cfg.Data.Directory),
			lsp.WithStartupSuppressed(config.StartupSuppressed()),
		)
		defer manager.Shutdown()

		if len(openFiles) > 0 {
			// Start only what the given files need; registrations for
			// languages without a configured server are dropped.
			for _, file := range openFiles {
				language := lsp.DetectLanguage(file)
				if language == "" {
					logging.Warn("No server support for file, skipping", "file", file)
					continue
				}
				manager.RegisterFile(language, file, nil)
				if _, err := manager.Start(language); err != nil {
					logging.Error("Failed to start client", "language", language, "error", err)
				}
			}
		} else {
			for _, language := range manager.Languages() {
				if _, err := manager.Start(language); err != nil {
					logging.Error("Failed to start client", "language", language, "error", err)
				}
			}
		}

		stopWatcher := watchConfig(manager)
		defer stopWatcher()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		logging.Info("Signal received, shutting down")
		return nil
	},
}

// watchConfig re-reads the preferences file when it changes and hands the
// refreshed server table to the manager's reconciler.
func watchConfig(manager *lsp.Manager) func() {
	file := viper.ConfigFileUsed()
	if file == "" {
		return func() {}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logging.Warn("Failed to create config watcher", "error", err)
		return func() {}
	}
	if err := watcher.Add(file); err != nil {
		logging.Warn("Failed to watch config file", "file", file, "error", err)
		watcher.Close()
		return func() {}
	}

	done := make(chan struct{})
	go func() {
		defer logging.RecoverPanic("config-watcher", nil)
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				logging.Info("Configuration changed, reconciling servers", "file", event.Name)
				servers, err := config.ReloadServers()
				if err != nil {
					logging.Warn("Failed to reload configuration", "error", err)
					continue
				}
				manager.UpdateServers(servers)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logging.Warn("Config watcher error", "error", err)
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		watcher.Close()
	}
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("help", "h", false, "Help")
	rootCmd.Flags().BoolP("version", "v", false, "Version")
	rootCmd.Flags().BoolP("debug", "d", false, "Debug")
	rootCmd.Flags().StringP("cwd", "c", "", "Current working directory")
	rootCmd.Flags().StringP("project", "P", "", "Active project path used as the server root")
	rootCmd.Flags().StringSliceP("open", "o", nil, "Register a file and start its language's server (repeatable)")
}
