package commands

import (
	"github.com/spf13/cobra"
)

var simplifyCmd = &cobra.Command{
	Use:   "simplify [expr.json | -]",
	Short: "Run one simplification pass over an expression",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr, err := decodeValue(cmd, args)
		if err != nil {
			return err
		}
		return runTool(cmd, "simplify", map[string]interface{}{"expr": expr})
	},
}

var latexCmd = &cobra.Command{
	Use:   "latex [expr.json | -]",
	Short: "Print an expression as LaTeX",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr, err := decodeValue(cmd, args)
		if err != nil {
			return err
		}
		showLaTeX = true
		return runTool(cmd, "to_latex", map[string]interface{}{"expr": expr})
	},
}

func init() {
	AddCommand(simplifyCmd)
	AddCommand(latexCmd)
}
