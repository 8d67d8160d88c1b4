package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

const defaultInteractiveLanguage = "Spanish"

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Translate lines read from the terminal",
	Long: `Reads text and a target language in a loop. An empty language
defaults to ` + defaultInteractiveLanguage + `. Type 'quit' to exit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()
		scanner := bufio.NewScanner(os.Stdin)

		fmt.Println(titleStyle.Render("lingo interactive mode") +
			labelStyle.Render("  (type 'quit' to exit)"))

		for {
			fmt.Print(promptStyle.Render("text> "))
			if !scanner.Scan() {
				break
			}
			text := strings.TrimSpace(scanner.Text())
			if text == "" {
				continue
			}
			if strings.EqualFold(text, "quit") {
				break
			}

			fmt.Print(promptStyle.Render(fmt.Sprintf("language [%s]> ", defaultInteractiveLanguage)))
			if !scanner.Scan() {
				break
			}
			lang := strings.TrimSpace(scanner.Text())
			if lang == "" {
				lang = defaultInteractiveLanguage
			}

			resp, err := c.Translate(cmd.Context(), text, lang)
			if err != nil {
				fmt.Printf("%s %s\n", failMark, errorStyle.Render(err.Error()))
				continue
			}
			fmt.Printf("%s %s\n", okMark, resultStyle.Render(resp.TranslatedText))
		}

		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
