package cmd

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"mixfix/pkg/gspec"
)

var docCmd = &cobra.Command{
	Use:   "doc <grammar.json>",
	Short: "Print a grammar's levels and operators as an aligned table",
	Long:  `Loads a grammar specification and renders its precedence table: precedence, associativity, level name, and operator shapes, tightest first.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadGrammarSpec(args[0])
		if err != nil {
			return err
		}

		type row struct {
			prec, assoc, name, ops string
		}
		n := len(s.Levels)
		rows := make([]row, n)
		for i, lvl := range s.Levels {
			prec := n - i
			specs := make([]string, len(lvl.Ops))
			for j, o := range lvl.Ops {
				specs[j] = describeOp(o)
			}
			rows[i] = row{
				prec:  fmt.Sprintf("%d", prec),
				assoc: strings.ToUpper(lvl.Assoc),
				name:  lvl.Name,
				ops:   strings.Join(specs, ", "),
			}
		}

		widths := [4]int{len("PREC"), len("ASSOC"), len("LEVEL"), len("OPERATORS")}
		for _, r := range rows {
			widths[0] = max(widths[0], runewidth.StringWidth(r.prec))
			widths[1] = max(widths[1], runewidth.StringWidth(r.assoc))
			widths[2] = max(widths[2], runewidth.StringWidth(r.name))
			widths[3] = max(widths[3], runewidth.StringWidth(r.ops))
		}

		printHeader("Grammar")
		fmt.Println(headerStyle.Render(padRow("PREC", "ASSOC", "LEVEL", "OPERATORS", widths)))
		for _, r := range rows {
			fmt.Println(padRow(r.prec, r.assoc, r.name, r.ops, widths))
		}
		return nil
	},
}

func describeOp(o gspec.OpSpec) string {
	switch o.Shape {
	case "prefix":
		return fmt.Sprintf("prefix %s", o.Name)
	case "prefixBracketed":
		return fmt.Sprintf("prefix %s.%s", o.Left, o.Right)
	case "postfix":
		return fmt.Sprintf("postfix %s", o.Name)
	case "postfixBracketed":
		return fmt.Sprintf("postfix %s.%s", o.Left, o.Right)
	case "infix":
		return fmt.Sprintf("infix %s", o.Name)
	case "concat":
		return "concat"
	case "ternary":
		return fmt.Sprintf("ternary %s.%s", o.First, o.Second)
	default:
		return o.Shape
	}
}

func padRow(prec, assoc, name, ops string, widths [4]int) string {
	return fmt.Sprintf("%s  %s  %s  %s",
		padRight(prec, widths[0]), padRight(assoc, widths[1]), padRight(name, widths[2]), padRight(ops, widths[3]))
}

func padRight(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}

func init() {
	rootCmd.AddCommand(docCmd)
}
