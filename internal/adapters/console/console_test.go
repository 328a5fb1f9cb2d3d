package console_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rig/internal/adapters/console"
	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func interactive() bool { return true }

func TestConsole_Compact_Windows(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	executor.EXPECT().
		Run(gomock.Any(), domain.NewCommand("", "cmd", "/c", "mode", "con:", "cols=100", "lines=30")).
		Return(nil)

	c := console.New(executor, console.WithGOOS("windows"), console.WithTerminalCheck(interactive))
	require.NoError(t, c.Compact(t.Context(), domain.CompactCols, domain.CompactLines))
}

func TestConsole_Compact_NoOp(t *testing.T) {
	tests := []struct {
		name  string
		goos  string
		isTTY func() bool
	}{
		{name: "linux", goos: "linux", isTTY: interactive},
		{name: "darwin", goos: "darwin", isTTY: interactive},
		{name: "windows redirected", goos: "windows", isTTY: func() bool { return false }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// No expectations: any Run call fails the test.
			executor := mocks.NewMockExecutor(ctrl)

			c := console.New(executor, console.WithGOOS(tt.goos), console.WithTerminalCheck(tt.isTTY))
			require.NoError(t, c.Compact(t.Context(), 100, 30))
		})
	}
}

func TestConsole_Compact_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	cause := errors.New("mode: not available")
	executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(cause)

	c := console.New(executor, console.WithGOOS("windows"), console.WithTerminalCheck(interactive))
	err := c.Compact(t.Context(), 100, 30)
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to resize console")
}
