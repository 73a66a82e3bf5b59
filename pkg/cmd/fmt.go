package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mixfix/pkg/token"
)

var (
	fmtCheck bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Reformat a raw word file into canonical single-space form",
	Long: `Reads a file of space-separated words (trailing newlines are ignored) and
rewrites it with exactly one ASCII space between words and one final
newline, surfacing token.ErrDoubleSpace as a lint failure rather than
silently collapsing it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		src := strings.TrimRight(string(data), "\n")
		toks, err := token.Tokenize(src)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		words := make([]string, len(toks))
		for i, t := range toks {
			words[i] = t.Name
		}
		canonical := strings.Join(words, " ")

		if fmtCheck {
			if canonical != src {
				return fmt.Errorf("%s is not formatted", path)
			}
			fmt.Println(okStyle.Render("formatted"))
			return nil
		}

		return os.WriteFile(path, []byte(canonical+"\n"), 0o644)
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "Report whether the file is already formatted instead of rewriting it")
}
