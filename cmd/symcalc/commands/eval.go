package commands

import (
	"github.com/spf13/cobra"
)

var evalBindings []string

var evalCmd = &cobra.Command{
	Use:   "eval [expr.json | -]",
	Short: "Evaluate an expression numerically",
	Long: `Evaluate an expression with the given variable bindings.
Variables without a binding read as 0.

  symcalc eval --bind x=2 --bind y=0.5 expr.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr, err := decodeValue(cmd, args)
		if err != nil {
			return err
		}
		bindings, err := parseBindings(evalBindings)
		if err != nil {
			return err
		}
		return runTool(cmd, "eval", map[string]interface{}{"expr": expr, "bindings": bindings})
	},
}

func init() {
	evalCmd.Flags().StringArrayVarP(&evalBindings, "bind", "b", nil, "Variable binding as name=value (repeatable)")
	AddCommand(evalCmd)
}
