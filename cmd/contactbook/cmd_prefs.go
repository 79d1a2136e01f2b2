package main

import (
	"fmt"
	"strconv"

	"github.com/illmade-knight/contactbook/pkg/preferences"
	"github.com/spf13/cobra"
)

func (c *cli) newPrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change display preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), renderPreferences(c.app.Preferences.Preferences()))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "font-size <size>",
		Short: "Set the font size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid font size %q: %w", args[0], err)
			}
			return c.app.Preferences.SetFontSize(cmd.Context(), size)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "background <#rrggbb[aa]>",
		Short: "Set the background color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			color, err := preferences.ParseHex(args[0])
			if err != nil {
				return err
			}
			return c.app.Preferences.SetBackgroundColor(cmd.Context(), color)
		},
	})

	return cmd
}
