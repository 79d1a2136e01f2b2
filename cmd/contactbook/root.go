package main

import (
	"errors"
	"io"

	"github.com/illmade-knight/contactbook/app"
	"github.com/illmade-knight/contactbook/internal/config"
	"github.com/illmade-knight/contactbook/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// cli holds the global flags and the application assembled for one invocation.
type cli struct {
	configPath string
	dataDir    string
	logLevel   string

	app    *app.App
	logger zerolog.Logger
}

// execute runs one invocation and releases the application afterwards, also
// when the command failed.
func execute(args []string, stdout, stderr io.Writer) error {
	c := &cli{}
	root := c.newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if c.app != nil {
		err = errors.Join(err, c.app.Close())
	}
	return err
}

func (c *cli) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "contactbook",
		Short: "A personal contact list",
		Long: `contactbook keeps a personal list of contacts and a few display preferences.

Every change is saved immediately to the data directory
($XDG_DATA_HOME/contactbook by default).`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: config.yaml in the working or data directory)")
	root.PersistentFlags().StringVar(&c.dataDir, "data-dir", "", "directory holding contacts and settings")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		c.newAddCmd(),
		c.newEditCmd(),
		c.newDeleteCmd(),
		c.newListCmd(),
		c.newPrefsCmd(),
		c.newExportCmd(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.dataDir != "" {
		cfg.DataDir = c.dataDir
	}
	if c.logLevel != "" {
		cfg.Log.Level = c.logLevel
	}

	c.logger = logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})

	c.app, err = app.Open(cmd.Context(), cfg, c.logger)
	return err
}
