package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mixfix/pkg/shuntingyard"
	"mixfix/pkg/token"
)

var buildVerbose bool

var buildCmd = &cobra.Command{
	Use:   "build <grammar.json> <token>...",
	Short: "Parse a pre-tokenized expression against a grammar",
	Long:  `Builds the grammar, tokenizes the remaining arguments as a space-separated expression, and prints the rendered tree.`,
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		grammarPath, words := args[0], args[1:]
		if buildVerbose {
			printHeader("Build")
			printInfo("Grammar", grammarPath)
			printInfo("Source", strings.Join(words, " "))
		}

		g, err := loadGrammarFile(grammarPath)
		if err != nil {
			return err
		}

		toks, err := token.Tokenize(strings.Join(words, " "))
		if err != nil {
			return fmt.Errorf("tokenizing input: %w", err)
		}

		tree, err := shuntingyard.Parse(g, toks)
		if err != nil {
			return fmt.Errorf("parsing: %w", err)
		}

		fmt.Println(tree.Render())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Print the grammar path and source before parsing")
}
