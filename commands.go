package main

import (
	"fmt"

	"github.com/borgmon/games-board/pkg/logger"
	"github.com/borgmon/games-board/pkg/models"
	"github.com/borgmon/games-board/pkg/store"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "games-board.toml"

type rootOptions struct {
	configPath string
	verbose    bool
	feedURL    string
	outputPath string
	layout     string
	limit      int
	timezone   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "games-board",
		Short: "Render upcoming games from an iCal feed into a signage HTML page",
		Long: `games-board fetches an iCal feed, keeps the next upcoming events and
writes them as a standalone HTML page for a digital signage display.
The previous page is left in place if anything fails.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.SetVerbose(opts.verbose)

			config, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}

			gen, err := NewGenerator(config, nil)
			if err != nil {
				return err
			}
			return gen.Run(cmd.Context())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "path to the TOML config file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.Flags().StringVar(&opts.feedURL, "url", "", "iCal feed URL (overrides config)")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "output HTML path (overrides config)")
	cmd.Flags().StringVar(&opts.layout, "layout", "", "layout: table or cards (overrides config)")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "number of events to show (overrides config)")
	cmd.Flags().StringVar(&opts.timezone, "timezone", "", "IANA display time zone (overrides config)")

	cmd.AddCommand(newConfigCmd(opts))

	return cmd
}

func newConfigCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the games-board config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cs := store.NewConfigStore(root.configPath)
			if !force && fileExists(cs.Path()) {
				return fmt.Errorf("%s already exists (use --force to overwrite)", cs.Path())
			}
			if err := cs.Save(models.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", cs.Path())
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}
