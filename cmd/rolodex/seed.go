package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/fogmite/rolodex/internal/app"
	"github.com/fogmite/rolodex/internal/config"
	"github.com/fogmite/rolodex/internal/contact"
	"github.com/fogmite/rolodex/internal/persist"
)

var (
	seedFirstNames = []string{
		"Ann", "Bob", "Cid", "Dora", "Emil", "Faye", "Gus", "Hana",
		"Igor", "June", "Karl", "Lena", "Mona", "Nils", "Olga", "Pete",
		"Quin", "Rosa", "Sven", "Tova", "Ulf", "Vera", "Wade", "Xena",
		"Yuri", "Zelda",
	}
	seedLastNames = []string{
		"Lee", "Foe", "Stone", "Rivers", "Hale", "Brook", "Marsh",
		"Frost", "Wolfe", "Lang", "Berg", "Holt", "Reyes", "Kim",
		"Novak", "Ume",
	}
)

func newSeedCmd(opts *app.Options) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a demo contact file",
		Long: "seed writes a generated, first-name-sorted contact collection to the\n" +
			"configured contacts file, overwriting whatever is there.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			path := cfg.ContactsPath
			if opts.ContactsPath != "" {
				path = opts.ContactsPath
			}

			contacts := generate(count)
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			if err := persist.NewFile(path, logger).Save(contacts); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d contacts to %s\n", len(contacts), path)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 200, "number of contacts to generate")
	return cmd
}

func generate(n int) []contact.Contact {
	if n < 0 {
		n = 0
	}
	contacts := make([]contact.Contact, 0, n)
	for i := 0; i < n; i++ {
		contacts = append(contacts, contact.Contact{
			FirstName: seedFirstNames[rand.Intn(len(seedFirstNames))],
			LastName:  seedLastNames[rand.Intn(len(seedLastNames))],
			Phone:     fmt.Sprintf("555-%04d", rand.Intn(10000)),
		})
	}
	contact.Sort(contacts)
	return contacts
}
