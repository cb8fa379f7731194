package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-miscord/internal/app"
	"github.com/MKhiriev/go-miscord/internal/config"
)

func (c *cli) newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and scaffold the miscord configuration",
	}

	configCmd.AddCommand(c.newConfigPathCmd())
	configCmd.AddCommand(c.newConfigInitCmd())
	configCmd.AddCommand(c.newConfigShowCmd())
	configCmd.AddCommand(c.newConfigValidateCmd())

	return configCmd
}

func (c *cli) newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.ResolveDataPath(c.opts.DataPath)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), config.ConfigFile(dir))
			return nil
		},
	}
}

func (c *cli) newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create an example config file if none exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, created, err := c.loader.Init(*c.opts)
			if err != nil {
				return err
			}

			if !created {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", app.MsgConfigExists, path)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", app.MsgConfigCreated, path)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", app.MsgUseConfigGenerator, config.GuideURL)
			return nil
		},
	}
}

func (c *cli) newConfigShowCmd() *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.load()
			if err != nil {
				return err
			}

			tree := cfg.Redacted()
			if reveal {
				tree = cfg.Tree()
			}

			data, err := json.MarshalIndent(tree, "", "  ")
			if err != nil {
				return fmt.Errorf("error encoding config: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	cmd.Flags().BoolVar(&reveal, "reveal", false, "Print credentials instead of masking them")

	return cmd
}

func (c *cli) newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the configuration and report problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.load()
			if err != nil {
				return err
			}

			c.log.Info().Str("path", cfg.Path).Str("log_level", cfg.LogLevel).Msg("config loaded")
			fmt.Fprintln(cmd.OutOrStdout(), app.MsgConfigValid)
			return nil
		},
	}
}
