package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newNoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage notes attached to a contact",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add CONTACT NOTE_NAME [CONTENT]",
			Short: "Attach a new note to a contact",
			Args:  cobra.RangeArgs(2, 3),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(true, func(a *app) error {
					content := ""
					if len(args) > 2 {
						content = args[2]
					}
					if _, err := a.notes.AddNote(args[0], args[1], content, flagGroup); err != nil {
						return err
					}
					fmt.Println("Note added.")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "edit CONTACT NOTE_NAME CONTENT",
			Short: "Replace a note's content",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(true, func(a *app) error {
					if err := a.notes.EditNote(args[0], args[1], args[2], flagGroup); err != nil {
						return err
					}
					fmt.Println("Note updated.")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "delete CONTACT NOTE_NAME",
			Short: "Delete a note",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(true, func(a *app) error {
					if err := a.notes.DeleteNote(args[0], args[1], flagGroup); err != nil {
						return err
					}
					fmt.Println("Note deleted.")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "show CONTACT [NOTE_NAME]",
			Short: "Show one note, or all of a contact's notes",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(false, func(a *app) error {
					if len(args) > 1 {
						n, err := a.notes.GetNote(args[0], args[1], flagGroup)
						if err != nil {
							return err
						}
						printNote(n.Name, n.Content, n.ListTags())
						return nil
					}
					notes, err := a.notes.ListNotes(args[0], flagGroup)
					if err != nil {
						return err
					}
					if len(notes) == 0 {
						fmt.Printf("No notes for contact %q.\n", args[0])
						return nil
					}
					for _, n := range notes {
						printNote(n.Name, n.Content, n.ListTags())
					}
					return nil
				})
			},
		},
		newNoteTagCmd(),
	)
	return cmd
}

func newNoteTagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage a note's tags",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add CONTACT NOTE_NAME TAG",
			Short: "Add a tag to a note",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(true, func(a *app) error {
					if err := a.notes.AddNoteTag(args[0], args[1], args[2], flagGroup); err != nil {
						return err
					}
					fmt.Println("Tag added.")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "remove CONTACT NOTE_NAME TAG",
			Short: "Remove a tag from a note",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(true, func(a *app) error {
					if err := a.notes.RemoveNoteTag(args[0], args[1], args[2], flagGroup); err != nil {
						return err
					}
					fmt.Println("Tag removed.")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "clear CONTACT NOTE_NAME",
			Short: "Remove all tags from a note",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(true, func(a *app) error {
					if err := a.notes.ClearNoteTags(args[0], args[1], flagGroup); err != nil {
						return err
					}
					fmt.Println("Tags cleared.")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "list CONTACT NOTE_NAME",
			Short: "List a note's tags",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(false, func(a *app) error {
					tags, err := a.notes.ListNoteTags(args[0], args[1], flagGroup)
					if err != nil {
						return err
					}
					if len(tags) == 0 {
						fmt.Println("No tags.")
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

func printNote(name, content string, tags []string) {
	line := fmt.Sprintf("Note %q: %s", name, content)
	if len(tags) > 0 {
		line += fmt.Sprintf(" [%s]", strings.Join(tags, ", "))
	}
	fmt.Println(line)
}
