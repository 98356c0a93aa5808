package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/borgmon/games-board/pkg/models"
	"github.com/borgmon/games-board/pkg/store"
	"github.com/spf13/cobra"
)

// loadConfig reads the config file and applies flags the user set explicitly
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*models.Config, error) {
	config, err := store.NewConfigStore(o.configPath).Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("url") {
		config.FeedURL = o.feedURL
	}
	if flags.Changed("output") {
		config.OutputPath = o.outputPath
	}
	if flags.Changed("layout") {
		config.Layout = models.Layout(o.layout)
	}
	if flags.Changed("limit") {
		config.Limit = o.limit
	}
	if flags.Changed("timezone") {
		config.Timezone = o.timezone
	}

	return config, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
