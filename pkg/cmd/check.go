package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:     "check <grammar.json>",
	Short:   "Validate a grammar document without parsing anything",
	Long:    `Loads a grammar specification and reports the first well-formedness violation, if any.`,
	Aliases: []string{"vet"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		printHeader("Check")
		printInfo("Input", args[0])
		if _, err := loadGrammarFile(args[0]); err != nil {
			printInfo("Status", failStyle.Render("invalid"))
			return err
		}
		printInfo("Status", okStyle.Render("valid"))
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
