package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/developia-II/moderated-translator/internal/client"
	"github.com/developia-II/moderated-translator/internal/services"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		lang string
		url  string
	)

	cmd := &cobra.Command{
		Use:          "translatecli [text]",
		Short:        "Translate text through a running translator server",
		Long:         "Sends text to POST /api/translate and prints the translation. Without arguments the text is read from stdin.",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				text = string(b)
			}

			out, err := client.New(url, nil).Translate(cmd.Context(), text, lang)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "ja", "target language, one of: "+strings.Join(services.SupportedLanguages, ", "))
	cmd.Flags().StringVar(&url, "url", client.DefaultURL, "translate endpoint")

	return cmd
}
