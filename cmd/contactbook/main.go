// Command contactbook is a command-line address book: contacts with phones,
// birthdays, emails, addresses and tags, notes attached to contacts, and
// named groups isolating contacts from each other.
//
// It runs either as a one-shot command (`contactbook add Bob 0501234567`)
// or as an interactive REPL with tab-completion (`contactbook repl`).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"contactbook/internal/book"
	"contactbook/internal/config"
	"contactbook/internal/locations"
	"contactbook/internal/service"
	"contactbook/internal/storage"
	"contactbook/internal/storage/sqlite"
	"contactbook/pkg/logging"
)

// app bundles everything a command needs: configuration, the open store,
// the loaded book and the services over it.
type app struct {
	cfg      *config.Config
	store    storage.Store
	book     *book.Book
	contacts *service.ContactService
	notes    *service.NoteService
	search   *service.SearchService
	catalog  *locations.Catalog
}

// global flags
var (
	flagConfig  string
	flagDB      string
	flagGroup   string
	flagVerbose bool
)

func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagDB != "" {
		cfg.StoragePath = flagDB
	}

	store, err := sqlite.New(cfg.StoragePath)
	if err != nil {
		return nil, err
	}
	b, err := store.Load(ctx)
	if err != nil {
		store.Close()
		return nil, err
	}

	catalog, err := locations.New(filepath.Join(filepath.Dir(cfg.StoragePath), "user_cities.json"))
	if err != nil {
		store.Close()
		return nil, err
	}

	return &app{
		cfg:      cfg,
		store:    store,
		book:     b,
		contacts: service.NewContactService(b, cfg.DefaultRegion),
		notes:    service.NewNoteService(b),
		search:   service.NewSearchService(b),
		catalog:  catalog,
	}, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		slog.Warn("failed to close store", "error", err)
	}
}

// run loads the book, executes fn, and saves the book back when the command
// mutates it. The whole book is written after every mutating command, so a
// crash mid-command never leaves a half-saved file behind.
func run(mutating bool, fn func(a *app) error) error {
	ctx := context.Background()
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if err := fn(a); err != nil {
		return err
	}
	if mutating {
		if err := a.store.Save(ctx, a.book); err != nil {
			return err
		}
	}
	return nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "contactbook",
		Short:         "Address book with groups, tags, notes and birthday reminders",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				logging.SetupWithLevel(slog.LevelDebug)
			} else {
				logging.Setup()
			}
		},
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default ~/.contactbook/config.yaml)")
	root.PersistentFlags().StringVar(&flagDB, "db", "", "address book database file (overrides config)")
	root.PersistentFlags().StringVarP(&flagGroup, "group", "g", "", "group to operate on (default: current group)")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newAddCmd(),
		newChangeCmd(),
		newPhoneCmd(),
		newAllCmd(),
		newDeleteCmd(),
		newAddBirthdayCmd(),
		newShowBirthdayCmd(),
		newBirthdaysCmd(),
		newEmailCmd(),
		newAddressCmd(),
		newTagCmd(),
		newFindByTagsCmd(),
		newFindByTagsAnyCmd(),
		newNoteCmd(),
		newSearchCmd(),
		newGroupCmd(),
		newReplCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
