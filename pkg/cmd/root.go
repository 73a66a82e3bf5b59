package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	// Styles
	logoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true) // Blue accent
	subtextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))           // Dim gray
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)  // Green
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true) // Red
)

var rootCmd = &cobra.Command{
	Use:   "axe",
	Short: "A configurable mixed-fix expression parser",
	Long: logoStyle.Render("axe") + ` - builds an expression grammar from named precedence
levels and parses pre-tokenized source against it.

Design: one grammar, two independent parsers, checked against each other.`,
	// Silence usages on error to keep output clean
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags can be defined here
}

// Helper for printing section headers
func printHeader(title string) {
	fmt.Println(headerStyle.Render(title))
}

// Helper for printing info
func printInfo(label, value string) {
	fmt.Printf("%s: %s\n", subtextStyle.Render(label), value)
}
