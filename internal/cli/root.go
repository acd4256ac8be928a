// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements auditctl, the scriptable command line over the
// local inspection store.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/unitytechnetwork/Afifi-sub000/internal/config"
	"github.com/unitytechnetwork/Afifi-sub000/internal/export"
	"github.com/unitytechnetwork/Afifi-sub000/internal/logger"
	"github.com/unitytechnetwork/Afifi-sub000/internal/metrics"
	"github.com/unitytechnetwork/Afifi-sub000/internal/service"
	"github.com/unitytechnetwork/Afifi-sub000/internal/store"
	"github.com/unitytechnetwork/Afifi-sub000/models"
)

// runtime is what a command needs to reach the store.
type runtime struct {
	services *service.Services
	renderer *export.Renderer
	close    func() error
}

type opener func(ctx context.Context, configPath string, verbose bool) (*runtime, error)

type cli struct {
	buildInfo  models.AppBuildInfo
	open       opener
	configPath string
	verbose    bool
	rt         *runtime
}

// Execute runs auditctl with os.Args.
func Execute(ctx context.Context, buildInfo models.AppBuildInfo) error {
	c := &cli{buildInfo: buildInfo, open: openRuntime(buildInfo)}
	defer c.close()

	return c.rootCommand().ExecuteContext(ctx)
}

func (c *cli) rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "auditctl",
		Short:         "Manage fire protection inspections from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "JSON config file path")
	cmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Log at the configured level instead of warnings only")

	cmd.AddCommand(c.newCommand())
	cmd.AddCommand(c.listCommand())
	cmd.AddCommand(c.showCommand())
	cmd.AddCommand(c.importCommand())
	cmd.AddCommand(c.naCommand())
	cmd.AddCommand(c.summaryCommand())
	cmd.AddCommand(c.shareCommand())
	cmd.AddCommand(c.reportCommand())
	cmd.AddCommand(c.overrideCommand())
	cmd.AddCommand(c.statusCommand())
	cmd.AddCommand(c.certifyCommand())
	cmd.AddCommand(c.pinHashCommand())
	cmd.AddCommand(c.versionCommand())
	return cmd
}

// services opens the store on first use.
func (c *cli) services(cmd *cobra.Command) (*runtime, error) {
	if c.rt != nil {
		return c.rt, nil
	}
	rt, err := c.open(commandContext(cmd), c.configPath, c.verbose)
	if err != nil {
		return nil, err
	}
	c.rt = rt
	return rt, nil
}

func (c *cli) close() {
	if c.rt == nil || c.rt.close == nil {
		return
	}
	if err := c.rt.close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing storage: %v\n", err)
	}
	c.rt = nil
}

func openRuntime(buildInfo models.AppBuildInfo) opener {
	return func(ctx context.Context, configPath string, verbose bool) (*runtime, error) {
		cfg, err := config.GetCLIConfig(configPath)
		if err != nil {
			return nil, err
		}

		level := "warn"
		if verbose {
			level = cfg.Log.Level
		}
		if err = logger.SetLevel(level); err != nil {
			return nil, err
		}
		log := logger.NewConsoleLogger("auditctl", os.Stderr)

		storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
		if err != nil {
			return nil, fmt.Errorf("error opening storage: %w", err)
		}

		if cfg.App.Version == "" {
			cfg.App.Version = buildInfo.BuildVersion()
		}
		services, err := service.NewServices(storages.KV, cfg.App, metrics.Nop(), log)
		if err != nil {
			storages.Close()
			return nil, err
		}
		renderer, err := export.New()
		if err != nil {
			storages.Close()
			return nil, err
		}
		return &runtime{services: services, renderer: renderer, close: storages.Close}, nil
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return ctx
}
