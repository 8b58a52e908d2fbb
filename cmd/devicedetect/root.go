package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/devicekit/pkg/device"
	"github.com/dmitrymomot/devicekit/pkg/logger"
	"github.com/dmitrymomot/devicekit/pkg/requestid"
)

const serviceName = "devicedetect"

var errInvalidFormat = errors.New("invalid output format")

// app is the state shared by all subcommands, filled in PersistentPreRunE.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	format        string
	verbose       bool
	tablet        bool
	featureDetect bool
	screen        device.Screen
	touchPoints   int

	cfg        appConfig
	log        *slog.Logger
	classifier *device.Classifier
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	cmd := &cobra.Command{
		Use:   serviceName,
		Short: "Classify user-agent signals into device, OS and browser",
		Long: `devicedetect classifies user-agent strings into a device class
(mobile, tablet or desktop), an operating system and a browser family.

Screen and touch flags describe a live environment for the feature
prober; they only matter with --feature-detect.

Settings are read from the environment (and a .env file):
  DEVICE_CACHE_TTL, DEVICE_CACHE_MAX_ENTRIES, DEVICE_TABLET,
  DEVICE_FEATURE_DETECT, HTTP_ADDR, APP_ENV, LOG_LEVEL`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.setup(cmd) },
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.format, "format", "f", "yaml", "output format: yaml or json")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log cache activity (same as LOG_LEVEL=debug)")
	flags.BoolVar(&a.tablet, "tablet", false, "count tablets as mobile")
	flags.BoolVar(&a.featureDetect, "feature-detect", false, "combine patterns with the feature prober")
	flags.IntVar(&a.screen.Width, "width", 0, "screen width in CSS pixels")
	flags.IntVar(&a.screen.Height, "height", 0, "screen height in CSS pixels")
	flags.Float64Var(&a.screen.PixelRatio, "dpr", 0, "device pixel ratio")
	flags.IntVar(&a.touchPoints, "touch-points", 0, "maximum simultaneous touch points")

	cmd.AddCommand(newClassifyCommand(a))
	cmd.AddCommand(newServeCommand(a))

	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.format != "yaml" && a.format != "json" {
		return fmt.Errorf("%w: %q", errInvalidFormat, a.format)
	}

	deviceCfg, err := device.LoadConfig()
	if err != nil {
		return err
	}
	cfg, err := env.ParseAs[appConfig]()
	if err != nil {
		return errors.Join(device.ErrParsingConfig, err)
	}

	flags := cmd.Flags()
	if flags.Changed("tablet") {
		deviceCfg.Tablet = a.tablet
	}
	if flags.Changed("feature-detect") {
		deviceCfg.FeatureDetect = a.featureDetect
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if a.verbose {
		level = slog.LevelDebug
	}
	logOpts := []logger.Option{
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithLevel(level),
		logger.WithOutput(a.stderr),
		logger.WithContextExtractors(requestid.LogExtractor(), device.LogExtractor()),
	}

	a.cfg = cfg
	a.log = logger.New(logOpts...)

	clsOpts := []device.ClassifierOption{device.WithLogger(a.log)}
	if live := a.environment(); live != nil {
		clsOpts = append(clsOpts, device.WithEnvironment(live))
	}
	a.classifier = device.NewClassifierFromConfig(deviceCfg, clsOpts...)
	return nil
}

// environment returns the live environment described by the flags, or nil
// when none of them was set.
func (a *app) environment() *device.Environment {
	if a.screen == (device.Screen{}) && a.touchPoints == 0 {
		return nil
	}
	return &device.Environment{
		Screen:      a.screen,
		TouchPoints: a.touchPoints,
	}
}
