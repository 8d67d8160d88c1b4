package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	targetLanguage string
	useChain       bool
)

var translateCmd = &cobra.Command{
	Use:   "translate [text]",
	Short: "Translate text to a target language",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()

		call := c.Translate
		if useChain {
			call = c.ChainInvoke
		}

		resp, err := call(cmd.Context(), args[0], targetLanguage)
		if err != nil {
			return err
		}

		fmt.Printf("%s %s\n", labelStyle.Render("original:  "), resp.OriginalText)
		fmt.Printf("%s %s\n", labelStyle.Render("language:  "), resp.TargetLanguage)
		fmt.Printf("%s %s\n", labelStyle.Render("translated:"), resultStyle.Render(resp.TranslatedText))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&targetLanguage, "language", "l", "Spanish", "Target language")
	translateCmd.Flags().BoolVar(&useChain, "chain", false, "Use the /chain/invoke endpoint")
}
