package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chrysly/wildfire-VIP/config"
	"github.com/chrysly/wildfire-VIP/macgrid"
	"github.com/chrysly/wildfire-VIP/verify"
)

var errNoGrid = errors.New("either --config or --cells is required")

type rootOpts struct {
	cfgFile  string
	cells    []int
	dx       float64
	logLevel string
	logJSON  bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOpts{}
	logger := logrus.New()

	root := &cobra.Command{
		Use:           "macgrid",
		Short:         "Inspect and audit staggered (MAC) grids",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := logrus.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			logger.SetLevel(lvl)
			logger.SetOutput(cmd.ErrOrStderr())
			if opts.logJSON {
				logger.SetFormatter(&logrus.JSONFormatter{})
			} else {
				logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			}
			macgrid.SetLogger(logger)
			verify.SetLogger(logger)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.cfgFile, "config", "c", "", "TOML grid description")
	pf.IntSliceVar(&opts.cells, "cells", nil, "cell counts per axis, overrides the config file (e.g. 64,64,32)")
	pf.Float64Var(&opts.dx, "dx", 0, "cell spacing, overrides the config file")
	pf.StringVar(&opts.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	pf.BoolVar(&opts.logJSON, "log-json", false, "log as JSON")

	root.AddCommand(newDescribeCmd(opts), newVerifyCmd(opts))

	return root
}

// loadConfig merges the config file with command-line overrides.
func (o *rootOpts) loadConfig(cmd *cobra.Command) (config.Config, error) {
	var c config.Config
	switch {
	case o.cfgFile != "":
		var err error
		if c, err = config.Load(o.cfgFile); err != nil {
			return config.Config{}, err
		}
	case len(o.cells) == 0:
		return config.Config{}, errNoGrid
	default:
		c.Dx = 1
	}

	flags := cmd.Flags()
	if flags.Changed("cells") {
		c.CellCounts = append([]int(nil), o.cells...)
		c.Dim = len(c.CellCounts)
		if len(c.DomainMin) != c.Dim {
			c.DomainMin = nil
		}
	}
	if flags.Changed("dx") {
		c.Dx = o.dx
	}

	return c, c.Validate()
}

// buildGrid loads the configuration and constructs the MacGrid.
func (o *rootOpts) buildGrid(cmd *cobra.Command) (config.Config, *macgrid.MacGrid, error) {
	c, err := o.loadConfig(cmd)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("config: %w", err)
	}
	mg, err := c.Build()
	if err != nil {
		return config.Config{}, nil, err
	}

	return c, mg, nil
}
