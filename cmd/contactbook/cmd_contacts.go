package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func (c *cli) newAddCmd() *cobra.Command {
	var phone, email, address string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			contact, err := c.app.Contacts.Add(cmd.Context(), args[0], phone, email, address)
			fmt.Fprintln(cmd.OutOrStdout(), contact.ID)
			return err
		},
	}
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&address, "address", "", "postal address")
	return cmd
}

func (c *cli) newEditCmd() *cobra.Command {
	var name, phone, email, address string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a contact; fields without a flag keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid contact id %q: %w", args[0], err)
			}
			current, ok := c.app.Contacts.Get(id)
			if !ok {
				return fmt.Errorf("contact %s not found", id)
			}

			flags := cmd.Flags()
			if !flags.Changed("name") {
				name = current.Name
			}
			if !flags.Changed("phone") {
				phone = current.PhoneNumber
			}
			if !flags.Changed("email") {
				email = current.Email
			}
			if !flags.Changed("address") {
				address = current.Address
			}
			return c.app.Contacts.Edit(cmd.Context(), id, name, phone, email, address)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "name")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&address, "address", "", "postal address")
	return cmd
}

func (c *cli) newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid contact id %q: %w", args[0], err)
			}
			return c.app.Contacts.Delete(cmd.Context(), id)
		},
	}
}

func (c *cli) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list [query]",
		Aliases: []string{"search"},
		Short:   "List contacts whose name contains query",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			results := c.app.Contacts.Search(query)
			fmt.Fprint(cmd.OutOrStdout(), renderContacts(results, c.app.Preferences.Preferences()))
			return nil
		},
	}
}
