package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceActivePath(t *testing.T) {
	s := NewService("")
	assert.False(t, s.IsActive())
	assert.Empty(t, s.ActivePath())

	s.SetActive("/work/myproject")
	assert.True(t, s.IsActive())
	assert.Equal(t, "/work/myproject", s.ActivePath())

	s.SetActive("")
	assert.False(t, s.IsActive())
}
