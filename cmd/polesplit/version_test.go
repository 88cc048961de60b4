package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCommand(t *testing.T) {
	old := version
	version = "1.2.3"
	t.Cleanup(func() { version = old })

	assert.Equal(t, "polesplit 1.2.3\n", runRoot(t, "version"))
}
