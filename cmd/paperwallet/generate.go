package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/AlexZinkM/tos-paper-wallet/internal/chrome"
	"github.com/AlexZinkM/tos-paper-wallet/internal/keygen"
	"github.com/AlexZinkM/tos-paper-wallet/internal/model"
	"github.com/AlexZinkM/tos-paper-wallet/internal/qr"
)

func newGenerateCmd() *cobra.Command {
	var (
		testnet bool
		lang    string
		copyTo  string
		noQR    bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a wallet and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var target chrome.Target
			if copyTo != "" {
				t, err := chrome.ParseTarget(copyTo)
				if err != nil {
					return err
				}
				target = t
			}

			e, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			if lang != "" {
				if !e.engine.Catalog().HasLanguage(lang) {
					return fmt.Errorf("unknown language %q, see 'paperwallet languages'", lang)
				}
				if err := e.store.SetLanguage(lang); err != nil {
					return err
				}
			}
			lang = e.language()

			module := keygen.NewLocalModule()
			if err := module.Init(cmd.Context()); err != nil {
				return fmt.Errorf("%s: %w", e.engine.Translate(lang, "toast.module_missing"), err)
			}
			w, err := module.GenerateWallet(!testnet)
			if err != nil {
				return fmt.Errorf("%s: %w", e.engine.Translate(lang, "toast.generate_failed"), err)
			}

			out := cmd.OutOrStdout()
			showQR := !noQR && isTerminal(out)
			printWallet(out, e.engine.Translate, lang, w, showQR)

			if target != "" {
				notice := chrome.Copy(chrome.SystemClipboard{}, target, w)
				toast := notice.Toast(func(key string) string { return e.engine.Translate(lang, key) })
				fmt.Fprintln(cmd.ErrOrStderr(), toast.Message)
				if toast.Kind == chrome.KindError {
					return fmt.Errorf("copy %s failed", target)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&testnet, "testnet", false, "generate a testnet wallet")
	cmd.Flags().StringVar(&lang, "lang", "", "output language (stored as preference)")
	cmd.Flags().StringVar(&copyTo, "copy", "", "copy a field to the clipboard: address, private-key or seed")
	cmd.Flags().BoolVar(&noQR, "no-qr", false, "never print QR codes")
	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func printWallet(out io.Writer, translate func(lang, key string) string, lang string, w model.WalletRecord, showQR bool) {
	t := func(key string) string { return translate(lang, key) }

	network := t("network.testnet")
	if w.Network.IsMainnet() {
		network = t("network.mainnet")
	}
	fmt.Fprintf(out, "%s [%s]\n\n", t("wallet.header"), network)

	fmt.Fprintf(out, "%s\n  %s\n", t("wallet.address.title"), w.Address)
	printQR(out, w.Address, showQR)
	fmt.Fprintf(out, "\n%s\n  %s\n", t("wallet.privatekey.title"), w.PrivateKey)
	printQR(out, w.PrivateKey, showQR)

	fmt.Fprintf(out, "\n%s\n", t("wallet.seed.title"))
	for i, word := range w.SeedWords() {
		fmt.Fprintf(out, "  %2d. %-12s", i+1, word)
		if (i+1)%5 == 0 {
			fmt.Fprintln(out)
		}
	}
	if len(w.SeedWords())%5 != 0 {
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "\n%s\n", strings.ToUpper(t("wallet.privatekey.desc")))
}

func printQR(out io.Writer, text string, show bool) {
	if !show {
		return
	}
	art, err := qr.Terminal(text, qr.LevelMedium)
	if err != nil {
		return
	}
	fmt.Fprint(out, art)
}
