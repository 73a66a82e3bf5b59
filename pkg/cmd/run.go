package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mixfix/pkg/refreducer"
	"mixfix/pkg/shuntingyard"
	"mixfix/pkg/token"
)

var runCmd = &cobra.Command{
	Use:   "run <grammar.json> <token>...",
	Short: "Parse an expression with both drivers and report whether they agree",
	Long:  `Builds the grammar, parses the given tokens with shuntingyard and refreducer independently, and reports their rendered trees and whether they match.`,
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		grammarPath, words := args[0], args[1:]
		source := strings.Join(words, " ")

		printHeader("Run")
		printInfo("Grammar", grammarPath)
		printInfo("Source", source)

		g, err := loadGrammarFile(grammarPath)
		if err != nil {
			return err
		}

		toks, err := token.Tokenize(source)
		if err != nil {
			return fmt.Errorf("tokenizing input: %w", err)
		}

		syTree, syErr := shuntingyard.Parse(g, toks)
		rrTree, rrErr := refreducer.Parse(g, toks)

		if syErr != nil || rrErr != nil {
			printInfo("shuntingyard", errOrRender(syTree, syErr))
			printInfo("refreducer", errOrRender(rrTree, rrErr))
			if (syErr == nil) != (rrErr == nil) {
				return fmt.Errorf("drivers disagree on whether %q parses", source)
			}
			return nil
		}

		syRender, rrRender := syTree.Render(), rrTree.Render()
		printInfo("Result", syRender)
		if syRender != rrRender {
			fmt.Println(failStyle.Render(fmt.Sprintf("drivers disagree: shuntingyard=%q refreducer=%q", syRender, rrRender)))
			return fmt.Errorf("differential check failed for %q", source)
		}
		fmt.Println(okStyle.Render("agree"))
		return nil
	},
}

func errOrRender(n interface{ Render() string }, err error) string {
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return n.Render()
}

func init() {
	rootCmd.AddCommand(runCmd)
}
