package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "paperwallet",
		Short:         "Generate offline TOS paper wallets",
		Long:          "paperwallet serves the localized TOS paper wallet page and generates wallets from the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "log debug output")

	root.AddCommand(
		newServeCmd(),
		newGenerateCmd(),
		newPrefsCmd(),
		newLanguagesCmd(),
	)
	return root
}
