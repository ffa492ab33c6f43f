package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"contactbook/internal/book"
)

func newTagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage a contact's tags",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add NAME TAG",
			Short: "Add a tag to a contact",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(true, func(a *app) error {
					if err := a.contacts.AddTag(args[0], args[1], flagGroup); err != nil {
						return err
					}
					fmt.Println("Tag added.")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "remove NAME TAG",
			Short: "Remove a tag from a contact",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(true, func(a *app) error {
					if err := a.contacts.RemoveTag(args[0], args[1], flagGroup); err != nil {
						return err
					}
					fmt.Println("Tag removed.")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "clear NAME",
			Short: "Remove all tags from a contact",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(true, func(a *app) error {
					if err := a.contacts.ClearTags(args[0], flagGroup); err != nil {
						return err
					}
					fmt.Println("Tags cleared.")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "list NAME",
			Short: "List a contact's tags",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(false, func(a *app) error {
					tags, err := a.contacts.ListTags(args[0], flagGroup)
					if err != nil {
						return err
					}
					if len(tags) == 0 {
						fmt.Printf("No tags for contact %q.\n", args[0])
						return nil
					}
					fmt.Println(strings.Join(tags, ", "))
					return nil
				})
			},
		},
	)
	return cmd
}

func newFindByTagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find-by-tags TAGS",
		Short: "Find contacts carrying every listed tag (comma-separated, AND)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(false, func(a *app) error {
				entries, err := a.contacts.FindByTagsAll(args[0])
				if err != nil {
					return err
				}
				printTagMatches(entries)
				return nil
			})
		},
	}
}

func newFindByTagsAnyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find-by-tags-any TAGS",
		Short: "Find contacts carrying at least one listed tag (comma-separated, OR)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(false, func(a *app) error {
				entries, err := a.contacts.FindByTagsAny(args[0])
				if err != nil {
					return err
				}
				printTagMatches(entries)
				return nil
			})
		},
	}
}

func printTagMatches(entries []book.Entry) {
	if len(entries) == 0 {
		fmt.Println("No contacts found.")
		return
	}
	for _, e := range entries {
		fmt.Println(e.Record.Summary())
	}
}
