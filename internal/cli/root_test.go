package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		name string
		info BuildInfo
		want string
	}{
		{
			name: "all fields set",
			info: BuildInfo{Version: "1.2.3", Commit: "abc1234", Date: "2026-01-01"},
			want: "1.2.3 (commit: abc1234, built: 2026-01-01)",
		},
		{
			name: "empty fields get placeholders",
			info: BuildInfo{},
			want: "dev (commit: none, built: unknown)",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, formatVersion(tc.info))
		})
	}
}

func TestNewRootCmd(t *testing.T) {
	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{})

	assert.Equal(t, "xapian", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	// Lock command group must be registered
	lockCmd, _, err := cmd.Find([]string{"lock"})
	require.NoError(t, err)
	assert.Equal(t, "lock", lockCmd.Name())

	probeCmd, _, err := cmd.Find([]string{"lock", "probe"})
	require.NoError(t, err)
	assert.Equal(t, "probe", probeCmd.Name())

	holdCmd, _, err := cmd.Find([]string{"lock", "hold"})
	require.NoError(t, err)
	assert.Equal(t, "hold", holdCmd.Name())
}

func TestExecute_InvalidOutputFormat(t *testing.T) {
	t.Setenv("XAPIAN_HOME", t.TempDir())
	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{})
	cmd.SetArgs([]string{"--output", "yaml"})

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output format")
}

func TestExecute_Help(t *testing.T) {
	t.Setenv("XAPIAN_HOME", t.TempDir())
	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{})
	cmd.SetArgs([]string{"--help"})

	assert.NoError(t, cmd.ExecuteContext(context.Background()))
}
