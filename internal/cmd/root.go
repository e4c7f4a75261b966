// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"github.com/aibor/yuzurun/internal/config"
	"github.com/aibor/yuzurun/internal/yuzurun"
	"github.com/spf13/cobra"
	"pkt.systems/pslog"
)

// state is shared by all commands of a single [Run].
type state struct {
	io         IO
	configPath string
	verbose    bool
	cfg        config.Config
	logger     pslog.Logger
}

func newRootCmd(s *state) *cobra.Command {
	root := &cobra.Command{
		Use:           "yuzurun",
		Short:         "Run and debug programs in the yuzu emulator",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			s.logger = newLogger(s.io.Stderr, s.verbose)
			cmd.SetContext(pslog.ContextWithLogger(cmd.Context(), s.logger))

			cfg, err := config.Load(s.configPath)
			if err != nil {
				return err //nolint:wrapcheck
			}

			s.cfg = cfg

			return nil
		},
	}

	root.SetIn(s.io.Stdin)
	root.SetOut(s.io.Stdout)
	root.SetErr(s.io.Stderr)

	root.PersistentFlags().StringVar(
		&s.configPath,
		"config",
		"",
		"configuration file (default: $XDG_CONFIG_HOME/yuzurun/config.yaml)",
	)

	root.PersistentFlags().BoolVarP(
		&s.verbose,
		"verbose",
		"v",
		false,
		"enable debug logging",
	)

	root.AddCommand(
		newRunCmd(s),
		newDebugCmd(s),
		newPrintConfigCmd(s),
	)

	return root
}

func newRunCmd(s *state) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run [flags] program",
		Short: "Run a program in the emulator and print its debug output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := flags.spec(args[0], s.cfg, cmd.Flags())
			if err != nil {
				return err
			}

			ctx, stop := notifyContext(cmd.Context(), false)
			defer stop()

			return yuzurun.Run(ctx, spec, s.io) //nolint:wrapcheck
		},
	}

	flags.register(cmd.Flags())

	return cmd
}

func newDebugCmd(s *state) *cobra.Command {
	flags := &debugFlags{}

	cmd := &cobra.Command{
		Use:   "debug [flags] program",
		Short: "Run a program in the emulator with gdb attached",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := flags.spec(args[0], s.cfg, cmd.Flags())
			if err != nil {
				return err
			}

			// gdb owns the terminal and handles SIGINT for pausing the
			// target.
			ctx, stop := notifyContext(cmd.Context(), true)
			defer stop()

			return yuzurun.Run(ctx, spec, s.io) //nolint:wrapcheck
		},
	}

	flags.register(cmd.Flags())

	return cmd
}

func newPrintConfigCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "print-config",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.cfg.WriteYAML(cmd.OutOrStdout()) //nolint:wrapcheck
		},
	}
}
