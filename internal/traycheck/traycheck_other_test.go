//go:build !linux && !freebsd && !openbsd && !netbsd && !dragonfly

package traycheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	assert.NoError(t, HealthCheck())
}
