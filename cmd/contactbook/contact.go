package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"contactbook/internal/query"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME [PHONE]",
		Short: "Add a contact, or add a phone to an existing one",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(true, func(a *app) error {
				phone := ""
				if len(args) > 1 {
					phone = args[1]
				}
				created, err := a.contacts.AddContact(args[0], phone, flagGroup)
				if err != nil {
					return err
				}
				if created {
					fmt.Println("Contact added.")
				} else {
					fmt.Println("Contact updated.")
				}
				return nil
			})
		},
	}
}

func newChangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "change NAME OLD_PHONE NEW_PHONE",
		Short: "Replace a contact's phone number",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(true, func(a *app) error {
				if err := a.contacts.ChangeContact(args[0], args[1], args[2], flagGroup); err != nil {
					return err
				}
				fmt.Println("Contact updated.")
				return nil
			})
		},
	}
}

func newPhoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "phone NAME",
		Short: "Show a contact's phone numbers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(false, func(a *app) error {
				phones, err := a.contacts.GetPhones(args[0], flagGroup)
				if err != nil {
					return err
				}
				if len(phones) == 0 {
					fmt.Printf("No phones for contact %q.\n", args[0])
					return nil
				}
				out := make([]string, len(phones))
				for i, p := range phones {
					out[i] = p.International
				}
				fmt.Println(strings.Join(out, "; "))
				return nil
			})
		},
	}
}

func newAllCmd() *cobra.Command {
	var sortBy string
	cmd := &cobra.Command{
		Use:   "all",
		Short: "List contacts in the current group (or --group, or --group all)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(false, func(a *app) error {
				entries, err := a.contacts.ListContacts(query.SortBy(sortBy), flagGroup)
				if err != nil {
					return err
				}
				if len(entries) == 0 {
					fmt.Println("Address book is empty.")
					return nil
				}
				showGroup := flagGroup == query.GroupAll
				for _, e := range entries {
					if showGroup {
						fmt.Printf("[%s] %s\n", e.Key.GroupID, e.Record.Summary())
					} else {
						fmt.Println(e.Record.Summary())
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&sortBy, "sort", string(query.DefaultSortBy),
		"sort order: name, phone, birthday, tag_count, tag_name")
	return cmd
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a contact and all of its notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(true, func(a *app) error {
				if err := a.contacts.DeleteContact(args[0], flagGroup); err != nil {
					return err
				}
				fmt.Println("Contact deleted.")
				return nil
			})
		},
	}
}

func newAddBirthdayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-birthday NAME DD.MM.YYYY",
		Short: "Set a contact's birthday",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(true, func(a *app) error {
				if err := a.contacts.SetBirthday(args[0], args[1], flagGroup); err != nil {
					return err
				}
				fmt.Println("Birthday added.")
				return nil
			})
		},
	}
}

func newShowBirthdayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-birthday NAME",
		Short: "Show a contact's birthday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(false, func(a *app) error {
				bd, err := a.contacts.GetBirthday(args[0], flagGroup)
				if err != nil {
					return err
				}
				if bd == nil {
					fmt.Printf("No birthday set for contact %q.\n", args[0])
					return nil
				}
				fmt.Println(bd)
				return nil
			})
		},
	}
}

func newBirthdaysCmd() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "birthdays",
		Short: "Show congratulation dates coming up within the window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(false, func(a *app) error {
				window := days
				if !cmd.Flags().Changed("days") {
					window = a.cfg.BirthdayWindowDays
				}
				greetings := a.contacts.UpcomingBirthdays(window)
				if len(greetings) == 0 {
					fmt.Printf("No upcoming birthdays in the next %d days.\n", window)
					return nil
				}
				for _, g := range greetings {
					fmt.Printf("%s: %s\n", g.Name, g.Congratulation.Format("02.01.2006"))
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "lookahead window in days")
	return cmd
}

func newEmailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email",
		Short: "Manage a contact's email address",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "set NAME EMAIL",
			Short: "Set or replace the email address",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(true, func(a *app) error {
					if err := a.contacts.SetEmail(args[0], args[1], flagGroup); err != nil {
						return err
					}
					fmt.Println("Email set.")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "remove NAME",
			Short: "Remove the email address",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(true, func(a *app) error {
					if err := a.contacts.RemoveEmail(args[0], flagGroup); err != nil {
						return err
					}
					fmt.Println("Email removed.")
					return nil
				})
			},
		},
	)
	return cmd
}

func newAddressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Manage a contact's address",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "set NAME COUNTRY CITY LINE",
			Short: "Set or replace the address",
			Args:  cobra.ExactArgs(4),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(true, func(a *app) error {
					country := args[1]
					if a.catalog.HasCountry(country) {
						// Remember new cities for later autocompletion.
						if err := a.catalog.AddUserCity(country, args[2]); err != nil {
							return err
						}
					}
					if err := a.contacts.SetAddress(args[0], country, args[2], args[3], flagGroup); err != nil {
						return err
					}
					fmt.Println("Address set.")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "remove NAME",
			Short: "Remove the address",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(true, func(a *app) error {
					if err := a.contacts.RemoveAddress(args[0], flagGroup); err != nil {
						return err
					}
					fmt.Println("Address removed.")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "cities COUNTRY [QUERY]",
			Short: "List or search known cities for a country",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(false, func(a *app) error {
					var cities []string
					if len(args) > 1 {
						cities = a.catalog.SearchCities(args[0], args[1])
					} else {
						cities = a.catalog.Cities(args[0], true)
					}
					for _, c := range cities {
						fmt.Println(c)
					}
					return nil
				})
			},
		},
	)
	return cmd
}
