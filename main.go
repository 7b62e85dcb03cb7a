package main

import (
	"context"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/ytget/livepip/internal/anim"
	"github.com/ytget/livepip/internal/config"
	"github.com/ytget/livepip/internal/logging"
	"github.com/ytget/livepip/internal/session"
	"github.com/ytget/livepip/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.livepip"
	AppName = "Livepip"
)

type options struct {
	rtl       bool
	logLevel  string
	logFormat string
	envFiles  []string
	lang      string
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "livepip",
		Short:        "Live streams with a floating picture-in-picture overlay",
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.LoadEnv(opts.envFiles...)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.rtl, "rtl", false, "mirror the slide-back gesture for right-to-left layouts")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (env "+config.EnvLogLevel+")")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format: text or json (env "+config.EnvLogFormat+")")
	flags.StringSliceVar(&opts.envFiles, "env-file", nil, "dotenv files to load (default .env)")
	flags.StringVar(&opts.lang, "lang", "", "interface language: system, en, ru, pt (env "+config.EnvLanguage+")")

	return cmd
}

// resolve fills unset flags from the environment.
func (o *options) resolve(flags interface{ Changed(string) bool }, settings *config.Settings) {
	if o.logLevel == "" {
		o.logLevel = config.GetEnv(config.EnvLogLevel, "info")
	}
	if o.logFormat == "" {
		o.logFormat = config.GetEnv(config.EnvLogFormat, "text")
	}
	if o.lang == "" {
		o.lang = config.GetEnv(config.EnvLanguage, "")
	}
	if !flags.Changed("rtl") {
		o.rtl = config.GetEnvBool(config.EnvRTL, settings.GetRightToLeft())
	}
}

func run(cmd *cobra.Command, opts *options) error {
	a := app.NewWithID(AppID)
	a.Settings().SetTheme(ui.NewCompactTheme())

	settings := config.NewSettings(a)
	opts.resolve(cmd.Flags(), settings)

	log := logging.New(opts.logLevel, opts.logFormat, cmd.ErrOrStderr())
	slog.SetDefault(log)
	log.Info("starting", "app", AppName, "version", version)

	settings.SetRightToLeft(opts.rtl)
	if opts.lang != "" {
		settings.SetLanguage(opts.lang)
	}

	sessions := session.NewManager(settings, log.With("component", "session"))
	a.Lifecycle().SetOnExitedForeground(sessions.EnteredBackground)
	a.Lifecycle().SetOnEnteredForeground(sessions.EnteredForeground)

	driver := anim.NewDriver()
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	go driver.Run(ctx, fyne.Do)

	w := a.NewWindow(AppName)
	ui.NewRootUI(w, a, sessions, driver, log.With("component", "ui"))
	w.ShowAndRun()

	log.Info("stopped")
	return nil
}
