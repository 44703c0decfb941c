// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package commands is the command-line interface of the terminal client.
// Without a subcommand it starts the TUI; every subcommand goes through the
// same client services as the TUI.
package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/parse-guard/internal/client"
	"github.com/MKhiriev/parse-guard/internal/config"
	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/internal/tui"
	"github.com/MKhiriev/parse-guard/models"
	"github.com/spf13/cobra"
)

// Env is the client runtime shared by the commands.
type Env struct {
	Client client.Client
	Config *config.ClientConfig
	Logger *logger.Logger
}

// Opener builds the runtime after the flags are parsed.
type Opener func(ctx context.Context, overrides *config.StructuredConfig, logFile string) (*Env, error)

// DefaultOpener loads the client config and opens the session store.
func DefaultOpener(ctx context.Context, overrides *config.StructuredConfig, logFile string) (*Env, error) {
	log := logger.NewClientLogger("parse-guard-client", logFile)

	cfg, err := config.GetClientConfig(overrides)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	app, err := client.Open(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return &Env{Client: app, Config: cfg, Logger: log}, nil
}

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute(buildInfo models.AppBuildInfo) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCmd(buildInfo, DefaultOpener).ExecuteContext(ctx)
}

type cli struct {
	buildInfo models.AppBuildInfo
	open      Opener

	overrides config.StructuredConfig
	logFile   string
	output    string

	stdin *bufio.Reader
	env   *Env
}

func NewRootCmd(buildInfo models.AppBuildInfo, open Opener) *cobra.Command {
	c := &cli{buildInfo: buildInfo, open: open}

	root := &cobra.Command{
		Use:          "parseguard",
		Short:        "Compliance tracking and document analysis",
		Long:         "ParseGuard tracks compliance items and analyzes documents.\nRun without a command to open the terminal UI.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         c.runTUI,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch c.output {
			case outputText, outputJSON:
				return nil
			default:
				return fmt.Errorf("unknown output format %q", c.output)
			}
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.overrides.Adapter.APIURL, "api-url", "", "server origin, e.g. http://localhost:8000")
	flags.StringVar(&c.overrides.Storage.Session.DSN, "session-db", "", "path of the local session database")
	flags.StringVarP(&c.overrides.FilePath, "config", "c", "", "path of a JSON or YAML config file")
	flags.StringVar(&c.logFile, "log-file", "", "log file (default: \"logs\" next to the binary)")
	flags.StringVarP(&c.output, "output", "o", outputText, "output format: text or json")

	root.AddCommand(
		c.loginCmd(),
		c.registerCmd(),
		c.logoutCmd(),
		c.whoamiCmd(),
		c.statsCmd(),
		c.activityCmd(),
		c.complianceCmd(),
		c.analyzeCmd(),
		c.assessRiskCmd(),
		c.versionCmd(),
	)

	return root
}

// client opens the runtime on first use.
func (c *cli) client(ctx context.Context) (*Env, error) {
	if c.env != nil {
		return c.env, nil
	}

	env, err := c.open(ctx, &c.overrides, c.logFile)
	if err != nil {
		return nil, err
	}
	c.env = env

	return env, nil
}

func (c *cli) close() error {
	if c.env == nil {
		return nil
	}
	err := c.env.Client.Close()
	c.env = nil
	return err
}

func (c *cli) runTUI(cmd *cobra.Command, _ []string) error {
	env, err := c.client(cmd.Context())
	if err != nil {
		return err
	}

	ui := tui.New(env.Client.Services(), tui.Options{
		SessionExpired:  env.Client.SessionExpired(),
		RefreshInterval: env.Config.Workers.SessionRefreshInterval,
		BuildInfo:       c.buildInfo,
	}, env.Logger)

	if err = ui.Run(cmd.Context()); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return err
	}
	return nil
}
