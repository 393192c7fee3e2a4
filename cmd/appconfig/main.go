// FILE: lixenwraith/appconfig/cmd/appconfig/main.go

// Appconfig inspects and edits the per-user settings file of an application
// that stores its settings with the appconfig package.
//
// Usage:
//
//	appconfig --org sumibi-yakitori --app myapp path
//	appconfig --org sumibi-yakitori --app myapp show
//	appconfig --org sumibi-yakitori --app myapp set window.width=1024 theme=dark
//	appconfig --org sumibi-yakitori --app myapp reset
//	appconfig --org sumibi-yakitori --app myapp watch
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/appconfig"
)

var (
	orgName string
	appName string
	format  string
	rootDir string
	verbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "appconfig",
	Short: "Inspect and edit per-user application settings files",
	Long: `Inspect and edit the settings file an application keeps at
<config root>/com.<org>.<app>/app_config.<format>.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&orgName, "org", "", "organization name")
	flags.StringVar(&appName, "app", "", "application name")
	flags.StringVar(&format, "format", "toml", "file format: toml, json or yaml")
	flags.StringVar(&rootDir, "root", "", "config root override (default: platform user config directory)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = rootCmd.MarkPersistentFlagRequired("org")
	_ = rootCmd.MarkPersistentFlagRequired("app")

	rootCmd.AddCommand(pathCmd, showCmd, setCmd, resetCmd, watchCmd)
}

// newLogger returns a console logger when verbose, otherwise a no-op logger.
func newLogger() (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.DebugLevel),
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// newManager builds a manager over an untyped settings tree. Auto-saving is
// disabled: commands save explicitly.
func newManager() (*appconfig.Manager[map[string]any], error) {
	logger, err := newLogger()
	if err != nil {
		return nil, err
	}

	b := appconfig.NewBuilder[map[string]any](nil, appName, orgName).
		WithDefaults(func() map[string]any { return make(map[string]any) }).
		WithFormat(format).
		WithAutoRecovery(false).
		WithAutoSaving(false).
		WithLogger(logger)
	if rootDir != "" {
		b = b.WithConfigRoot(rootDir)
	}
	return b.Build()
}
