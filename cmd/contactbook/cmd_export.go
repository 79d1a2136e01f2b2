package main

import (
	"fmt"
	"os"

	"github.com/illmade-knight/contactbook/internal/export"
	"github.com/spf13/cobra"
)

func (c *cli) newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file.xlsx>",
		Short: "Export all contacts to a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("failed to create export file: %w", err)
			}
			all := c.app.Contacts.Contacts()
			if err := export.WriteXLSX(f, all); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to close export file: %w", err)
			}
			c.logger.Info().Int("count", len(all)).Str("path", args[0]).Msg("Exported contacts")
			return nil
		},
	}
}
