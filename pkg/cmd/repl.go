package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mixfix/pkg/grammar"
	"mixfix/pkg/opalgebra"
	"mixfix/pkg/shuntingyard"
	"mixfix/pkg/token"
)

var (
	replNoBanner bool
	replGrammar  string
)

// demoGrammar is used when --grammar is not given: a small arithmetic
// grammar with unary minus, multiplication/division, addition/
// subtraction, and a ternary conditional.
func demoGrammar() *grammar.Grammar {
	b := grammar.NewBuilder()
	b.LevelRTL("neg", opalgebra.Prefix{Name: "-"})
	b.LevelLTR("mul", opalgebra.Infix{Name: "*"}, opalgebra.Infix{Name: "/"})
	b.LevelFlat("add", opalgebra.Infix{Name: "+"}, opalgebra.Infix{Name: "-"})
	b.LevelRTL("ter", opalgebra.Ternary{FirstName: "?", SecondName: ":"})
	g, err := b.Finish()
	if err != nil {
		panic(fmt.Sprintf("repl: built-in demo grammar is malformed: %v", err))
	}
	return g
}

var replCmd = &cobra.Command{
	Use:   "repl [flags]",
	Short: "Parse one pre-tokenized expression per line",
	Long:  `Reads lines of whitespace-separated tokens from stdin, parses each against a loaded (or built-in demo) grammar, and prints the rendered tree or the parse error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g := demoGrammar()
		if replGrammar != "" {
			loaded, err := loadGrammarFile(replGrammar)
			if err != nil {
				return err
			}
			g = loaded
		}

		if !replNoBanner {
			fmt.Println(logoStyle.Render("axe repl"))
			if replGrammar == "" {
				fmt.Println(subtextStyle.Render("using the built-in demo grammar; pass --grammar to load one"))
			}
			fmt.Println(subtextStyle.Render("one pre-tokenized expression per line, Ctrl+D to quit"))
		}

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			toks, err := token.Tokenize(line)
			if err != nil {
				fmt.Println(failStyle.Render(err.Error()))
				continue
			}
			n, err := shuntingyard.Parse(g, toks)
			if err != nil {
				fmt.Println(failStyle.Render(err.Error()))
				continue
			}
			fmt.Println(n.Render())
		}
		return scanner.Err()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVar(&replNoBanner, "no-banner", false, "Hide welcome message")
	replCmd.Flags().StringVar(&replGrammar, "grammar", "", "Path to a grammar document (defaults to a built-in demo grammar)")
}
