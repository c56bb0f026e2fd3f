package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AlexZinkM/tos-paper-wallet/internal/chrome"
	"github.com/AlexZinkM/tos-paper-wallet/internal/prefs"
)

func newPrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Read or change stored preferences",
	}

	cmd.AddCommand(&cobra.Command{
		Use:       "get <theme|language>",
		Short:     "Print a preference",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(prefs.Theme), string(prefs.Language)},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := prefs.Name(args[0])
			if _, err := prefs.Key(name); err != nil {
				return fmt.Errorf("%w: %s", err, args[0])
			}
			e, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			fmt.Fprintln(cmd.OutOrStdout(), e.store.Get(name))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set <theme|language> <value>",
		Short:     "Store a preference",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(prefs.Theme), string(prefs.Language)},
		RunE: func(cmd *cobra.Command, args []string) error {
			name, value := prefs.Name(args[0]), args[1]
			if _, err := prefs.Key(name); err != nil {
				return fmt.Errorf("%w: %s", err, args[0])
			}
			e, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			switch name {
			case prefs.Theme:
				if !chrome.IsTheme(value) {
					return fmt.Errorf("%w: %q", chrome.ErrUnknownTheme, value)
				}
			case prefs.Language:
				if !e.engine.Catalog().HasLanguage(value) {
					return fmt.Errorf("unknown language %q", value)
				}
			}
			if e.durable == nil {
				return errors.New("preference store unavailable, nothing was saved")
			}
			if err := e.store.Set(name, value); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", name, value)
			return nil
		},
	})
	return cmd
}
