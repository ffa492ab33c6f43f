package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"contactbook/internal/query"
)

func newSearchCmd() *cobra.Command {
	var (
		searchType string
		notes      bool
	)
	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search contacts (or notes with --notes) in the current group",
		Long: `Search contacts by a case-insensitive substring match.

Contact search types: all, name, phone, tags, tags-all, tags-any,
notes-text, notes-name, notes-tags. The tags-all and tags-any types treat
QUERY as a comma-separated tag list and match tag sets exactly.

Note search types (--notes): all, name, text, tags, contact-name,
contact-phone, contact-tags.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(false, func(a *app) error {
				if notes {
					hits, err := a.search.SearchNotes(args[0], query.NoteSearchType(searchType))
					if err != nil {
						return err
					}
					if len(hits) == 0 {
						fmt.Println("No notes found.")
						return nil
					}
					for _, h := range hits {
						fmt.Printf("%s / %q: %s\n", h.ContactName, h.Note.Name, h.Note.Content)
					}
					return nil
				}

				entries, err := a.search.SearchContacts(args[0], query.ContactSearchType(searchType))
				if err != nil {
					return err
				}
				if len(entries) == 0 {
					fmt.Println("No contacts found.")
					return nil
				}
				for _, e := range entries {
					fmt.Println(e.Record.Summary())
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&searchType, "type", "t", "all", "which fields to search")
	cmd.Flags().BoolVar(&notes, "notes", false, "search notes instead of contacts")
	return cmd
}
