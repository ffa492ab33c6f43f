package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGroupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Manage contact groups",
	}
	var force bool
	removeCmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a group (requires --force if it still has contacts)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(true, func(a *app) error {
				if err := a.contacts.RemoveGroup(args[0], force); err != nil {
					return err
				}
				fmt.Printf("Group %q removed.\n", args[0])
				return nil
			})
		},
	}
	removeCmd.Flags().BoolVar(&force, "force", false, "delete the group together with its contacts")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all groups with contact counts",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(false, func(a *app) error {
					current := a.contacts.CurrentGroup()
					for _, g := range a.contacts.ListGroups() {
						marker := " "
						if g.ID == current {
							marker = "*"
						}
						fmt.Printf("%s %s (%d contacts)\n", marker, g.ID, g.Contacts)
					}
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "add ID [TITLE]",
			Short: "Create a new group",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(true, func(a *app) error {
					title := ""
					if len(args) > 1 {
						title = args[1]
					}
					g, err := a.contacts.AddGroup(args[0], title)
					if err != nil {
						return err
					}
					fmt.Printf("Group %q created.\n", g.ID)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "use ID",
			Short: "Switch the current group",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(true, func(a *app) error {
					if err := a.contacts.UseGroup(args[0]); err != nil {
						return err
					}
					fmt.Printf("Current group set to %q.\n", a.contacts.CurrentGroup())
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Show the current group",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(false, func(a *app) error {
					fmt.Println(a.contacts.CurrentGroup())
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "rename OLD_ID NEW_ID",
			Short: "Rename a group, migrating all of its contacts",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(true, func(a *app) error {
					if err := a.contacts.RenameGroup(args[0], args[1]); err != nil {
						return err
					}
					fmt.Printf("Group %q renamed to %q.\n", args[0], args[1])
					return nil
				})
			},
		},
		removeCmd,
	)
	return cmd
}
