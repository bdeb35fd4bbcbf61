// Package cli wires the blog service commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"blog-service/internal/config"
	"blog-service/internal/logger"
)

// Version is reported by the health endpoints. Set at build time.
var Version = "dev"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigFile string
	LogLevel   string

	cfg *config.Config
}

// Config returns the configuration loaded before the command ran.
func (o *RootOptions) Config() *config.Config {
	return o.cfg
}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "blog",
		Short: "Blog post service",
		Long:  "Serves the blog post API and manages its database.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := opts.ConfigFile
			if path == "" {
				path = os.Getenv("CONFIG_FILE")
			}
			cfg, err := config.LoadFile(path)
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if opts.LogLevel != "" {
				cfg.LogLevel = opts.LogLevel
			}
			logger.Configure(cfg.LogLevel, cfg.LogFormat)
			opts.cfg = cfg
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigFile, "config", "c", "", "path to a YAML config file (overrides CONFIG_FILE)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))

	return cmd
}
