package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smallnest/lingo/pkg/client"
)

// suiteCases cover a few language pairs; each one is sent to both
// translation endpoints.
var suiteCases = []struct {
	text     string
	language string
}{
	{"Hello, how are you?", "Spanish"},
	{"Good morning, have a great day!", "French"},
	{"Thank you very much", "German"},
	{"What is the weather like today?", "Italian"},
}

var suiteCmd = &cobra.Command{
	Use:   "suite",
	Short: "Run a smoke test suite against the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient()
		ctx := cmd.Context()

		fmt.Println(titleStyle.Render("lingo smoke test"))
		fmt.Println(labelStyle.Render(strings.Repeat("─", 40)))

		if _, err := c.Health(ctx); err != nil {
			fmt.Printf("%s %s\n", failMark, errorStyle.Render("server is not healthy"))
			return err
		}
		fmt.Printf("%s server is healthy\n\n", okMark)

		failed := 0
		for i, tc := range suiteCases {
			fmt.Printf("%s %q → %s\n",
				titleStyle.Render(fmt.Sprintf("case %d:", i+1)), tc.text, tc.language)

			failed += runCase("/translate", func() (*client.TranslationResponse, error) {
				return c.Translate(ctx, tc.text, tc.language)
			})
			failed += runCase("/chain/invoke", func() (*client.TranslationResponse, error) {
				return c.ChainInvoke(ctx, tc.text, tc.language)
			})
			fmt.Println()
		}

		total := len(suiteCases) * 2
		if failed > 0 {
			return fmt.Errorf("%d of %d calls failed", failed, total)
		}
		fmt.Println(resultStyle.Render(fmt.Sprintf("all %d calls passed", total)))
		return nil
	},
}

// runCase reports 1 on failure so the caller can tally.
func runCase(endpoint string, call func() (*client.TranslationResponse, error)) int {
	resp, err := call()
	if err != nil {
		fmt.Printf("   %s %s: %s\n", failMark, endpoint, errorStyle.Render(err.Error()))
		return 1
	}
	fmt.Printf("   %s %s: %s\n", okMark, endpoint, resultStyle.Render(resp.TranslatedText))
	return 0
}

func init() {
	rootCmd.AddCommand(suiteCmd)
}
