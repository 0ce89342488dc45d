package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fogmite/rolodex/internal/app"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "rolodex: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "rolodex",
		Short: "Browse a local contact list in the terminal",
		Long: "rolodex is a contact-list browser backed by a local TOML file.\n" +
			"The list view is virtualized: only the rows covering the viewport\n" +
			"plus a small overscan margin exist at any time.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return app.Run(ctx, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file path (optional)")
	root.PersistentFlags().StringVar(&opts.ContactsPath, "contacts", "", "contacts file path (optional)")

	root.AddCommand(newSeedCmd(&opts))
	return root
}
