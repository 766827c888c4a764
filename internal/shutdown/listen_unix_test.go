//go:build unix

package shutdown

import (
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mru-ui/internal/logger"
)

func TestManager_ListenHandsSignalToCallback(t *testing.T) {
	m := NewManager(logger.Nop{})
	defer m.Shutdown()

	got := make(chan os.Signal, 1)
	m.Listen(func(sig os.Signal) { got <- sig })

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	select {
	case sig := <-got:
		assert.Equal(t, syscall.SIGTERM, sig)
	case <-time.After(5 * time.Second):
		t.Fatal("signal not delivered")
	}
}
