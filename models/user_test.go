package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultDisplayName(t *testing.T) {
	assert.Equal(t, "a", DefaultDisplayName("a@example.com"))
	assert.Equal(t, "first.last", DefaultDisplayName("first.last@domain.org"))
	assert.Equal(t, "no-at-sign", DefaultDisplayName("no-at-sign"))
	assert.Equal(t, "User", DefaultDisplayName(""))
}
