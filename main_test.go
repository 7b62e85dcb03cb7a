package main

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/livepip/internal/config"
)

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--rtl", "--log-level", "debug", "--lang", "pt", "--env-file", "a.env,b.env"}))

	rtl, err := cmd.Flags().GetBool("rtl")
	require.NoError(t, err)
	assert.True(t, rtl)

	files, err := cmd.Flags().GetStringSlice("env-file")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.env", "b.env"}, files)

	assert.Error(t, cmd.Args(cmd, []string{"extra"}))
}

func TestOptionsResolveFromEnv(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "warn")
	t.Setenv(config.EnvLogFormat, "json")
	t.Setenv(config.EnvLanguage, "ru")
	t.Setenv(config.EnvRTL, "true")

	settings := config.NewSettings(test.NewApp())
	cmd := newRootCmd()
	opts := &options{logLevel: "debug"}
	opts.resolve(cmd.Flags(), settings)

	assert.Equal(t, "debug", opts.logLevel, "flags win over the environment")
	assert.Equal(t, "json", opts.logFormat)
	assert.Equal(t, "ru", opts.lang)
	assert.True(t, opts.rtl)
}

func TestOptionsResolveRTLFlagWins(t *testing.T) {
	t.Setenv(config.EnvRTL, "true")

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--rtl=false"}))
	opts := &options{}
	opts.resolve(cmd.Flags(), config.NewSettings(test.NewApp()))

	assert.False(t, opts.rtl)
}
