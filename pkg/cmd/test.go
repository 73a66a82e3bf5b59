package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mixfix/pkg/fixtures"
	"mixfix/pkg/refreducer"
	"mixfix/pkg/shuntingyard"
	"mixfix/pkg/token"
)

var (
	testVerbose bool
	testFilter  string
)

var testCmd = &cobra.Command{
	Use:   "test [flags]",
	Short: "Run the fixture battery through both parsers and report agreement",
	Long: `Runs every case in the fixture suites through shuntingyard and refreducer,
checking that both drivers accept or reject each input identically and
render identical trees when they accept, in the style of the original
project's own pass/fail test tracker.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		suites := fixtures.All()
		total, failed := 0, 0

		for _, s := range suites {
			if testFilter != "" && !strings.Contains(s.Name, testFilter) {
				continue
			}
			printHeader(s.Name)
			for _, c := range s.Cases {
				total++
				ok, detail := runCase(s, c)
				if !ok {
					failed++
					fmt.Printf("  %s %s — %s\n", failStyle.Render("FAIL"), c.Source, detail)
					continue
				}
				if testVerbose {
					fmt.Printf("  %s %s\n", okStyle.Render("ok"), c.Source)
				}
			}
		}

		fmt.Println()
		summary := fmt.Sprintf("%d/%d passed", total-failed, total)
		if failed == 0 {
			fmt.Println(okStyle.Render(summary))
			return nil
		}
		fmt.Println(failStyle.Render(summary))
		return fmt.Errorf("%d test case(s) failed", failed)
	},
}

// runCase checks a single fixture case against both drivers, requiring
// them to agree with each other and with the expected outcome.
func runCase(s *fixtures.Suite, c fixtures.Case) (ok bool, detail string) {
	toks, err := token.Tokenize(c.Source)
	if err != nil {
		if c.WantErr {
			return true, ""
		}
		return false, fmt.Sprintf("tokenize error: %v", err)
	}

	syNode, syErr := shuntingyard.Parse(s.Grammar, toks)
	rrNode, rrErr := refreducer.Parse(s.Grammar, toks)

	if c.WantErr {
		if syErr == nil {
			return false, fmt.Sprintf("shuntingyard expected an error, got %q", syNode.Render())
		}
		if rrErr == nil {
			return false, fmt.Sprintf("refreducer expected an error, got %q", rrNode.Render())
		}
		return true, ""
	}

	if syErr != nil {
		return false, fmt.Sprintf("shuntingyard: %v", syErr)
	}
	if rrErr != nil {
		return false, fmt.Sprintf("refreducer: %v", rrErr)
	}

	syRender, rrRender := syNode.Render(), rrNode.Render()
	if syRender != rrRender {
		return false, fmt.Sprintf("drivers disagree: shuntingyard=%q refreducer=%q", syRender, rrRender)
	}
	if syRender != c.Expected {
		return false, fmt.Sprintf("got %q, want %q", syRender, c.Expected)
	}
	return true, ""
}

func init() {
	rootCmd.AddCommand(testCmd)

	testCmd.Flags().BoolVarP(&testVerbose, "verbose", "v", false, "Print each passing case, not just failures")
	testCmd.Flags().StringVar(&testFilter, "filter", "", "Run only suites whose name contains this substring")
}
