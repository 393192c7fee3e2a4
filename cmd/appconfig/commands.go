// FILE: lixenwraith/appconfig/cmd/appconfig/commands.go
package main

import (
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/appconfig"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file path (creates its directory)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}
		path, err := m.Path()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the settings file after decoding it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}
		if err := m.Load(); err != nil {
			return err
		}

		data, err := m.Codec().Marshal(m.Get())
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var setCmd = &cobra.Command{
	Use:   "set key=value...",
	Short: "Set dot-separated keys and save the settings file",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}
		// A missing file starts empty; a broken one is not overwritten.
		if err := m.Load(); err != nil && !errors.Is(err, appconfig.ErrConfigNotFound) {
			return err
		}

		var setErr error
		m.Update(func(tree *map[string]any) {
			if *tree == nil {
				*tree = make(map[string]any)
			}
			for _, arg := range args {
				key, raw, ok := strings.Cut(arg, "=")
				if !ok {
					setErr = fmt.Errorf("expected key=value, got %q", arg)
					return
				}
				if setErr = appconfig.SetKey(*tree, key, raw); setErr != nil {
					return
				}
			}
		})
		if setErr != nil {
			return setErr
		}

		return m.Save()
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the settings file so the application starts from defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}
		return m.Remove()
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print changed keys whenever the settings file is edited",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newManager()
		if err != nil {
			return err
		}
		if err := m.Load(); err != nil && !errors.Is(err, appconfig.ErrConfigNotFound) {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		opts := appconfig.DefaultWatchOptions()
		opts.OnReload = func(changed []string, err error) {
			if err != nil {
				fmt.Fprintf(out, "reload failed: %v\n", err)
				return
			}
			for _, key := range changed {
				fmt.Fprintf(out, "changed: %s\n", key)
			}
		}
		if err := m.Watch(ctx, opts); err != nil {
			return err
		}
		defer m.Close()

		path, _ := m.Path()
		fmt.Fprintf(out, "watching %s, press Ctrl+C to exit\n", path)
		<-ctx.Done()
		return nil
	},
}
