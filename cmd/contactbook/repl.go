package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive shell with tab-completion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl()
		},
	}
}

func runRepl() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "contactbook> ",
		HistoryFile:     historyFile(),
		AutoComplete:    buildCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to start repl: %w", err)
	}
	defer rl.Close()

	fmt.Println("Welcome to contactbook. Type a command, or 'exit' to quit.")
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" || line == "close" {
			fmt.Println("Good bye!")
			break
		}

		root := newRootCmd()
		root.SetArgs(splitArgs(line))
		if err := root.Execute(); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
	}
	return nil
}

// buildCompleter assembles the static command tree plus dynamic contact and
// group name suggestions. The dynamic lookups are read-only and return
// nothing on an empty book.
func buildCompleter() readline.AutoCompleter {
	contacts := readline.PcItemDynamic(completeContacts)
	groups := readline.PcItemDynamic(completeGroups)

	return readline.NewPrefixCompleter(
		readline.PcItem("add", contacts),
		readline.PcItem("change", contacts),
		readline.PcItem("phone", contacts),
		readline.PcItem("all"),
		readline.PcItem("delete", contacts),
		readline.PcItem("add-birthday", contacts),
		readline.PcItem("show-birthday", contacts),
		readline.PcItem("birthdays"),
		readline.PcItem("email",
			readline.PcItem("set", contacts),
			readline.PcItem("remove", contacts),
		),
		readline.PcItem("address",
			readline.PcItem("set", contacts),
			readline.PcItem("remove", contacts),
			readline.PcItem("cities"),
		),
		readline.PcItem("tag",
			readline.PcItem("add", contacts),
			readline.PcItem("remove", contacts),
			readline.PcItem("clear", contacts),
			readline.PcItem("list", contacts),
		),
		readline.PcItem("find-by-tags"),
		readline.PcItem("find-by-tags-any"),
		readline.PcItem("note",
			readline.PcItem("add", contacts),
			readline.PcItem("edit", contacts),
			readline.PcItem("delete", contacts),
			readline.PcItem("show", contacts),
			readline.PcItem("tag",
				readline.PcItem("add", contacts),
				readline.PcItem("remove", contacts),
				readline.PcItem("clear", contacts),
				readline.PcItem("list", contacts),
			),
		),
		readline.PcItem("search"),
		readline.PcItem("group",
			readline.PcItem("list"),
			readline.PcItem("add"),
			readline.PcItem("use", groups),
			readline.PcItem("show"),
			readline.PcItem("rename", groups),
			readline.PcItem("remove", groups),
		),
		readline.PcItem("exit"),
		readline.PcItem("quit"),
	)
}

func completeContacts(string) []string {
	a, err := openApp(context.Background())
	if err != nil {
		return nil
	}
	defer a.close()

	entries, err := a.contacts.ListContacts("", "")
	if err != nil {
		return nil
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Key.Name
	}
	return names
}

func completeGroups(string) []string {
	a, err := openApp(context.Background())
	if err != nil {
		return nil
	}
	defer a.close()

	groups := a.contacts.ListGroups()
	ids := make([]string, len(groups))
	for i, g := range groups {
		ids[i] = g.ID
	}
	return ids
}

// splitArgs splits a command line on whitespace, keeping quoted segments
// (single or double quotes) together.
func splitArgs(line string) []string {
	var (
		args    []string
		current strings.Builder
		quote   rune
		inArg   bool
	)
	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inArg = true
		case r == ' ' || r == '\t':
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}
	if inArg {
		args = append(args, current.String())
	}
	return args
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.contactbook/history"
}
