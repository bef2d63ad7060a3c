package commands

import (
	"github.com/spf13/cobra"
)

var (
	diffVar   string
	diffOrder int
)

var diffCmd = &cobra.Command{
	Use:   "diff [expr.json | -]",
	Short: "Differentiate an expression",
	Long: `Differentiate an expression with respect to --var. When --var is omitted
the expression must have exactly one free variable.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr, err := decodeValue(cmd, args)
		if err != nil {
			return err
		}
		params := map[string]interface{}{"expr": expr, "order": float64(diffOrder)}
		if diffVar == "" {
			return runTool(cmd, "diff_single", params)
		}
		params["var"] = diffVar
		return runTool(cmd, "diff", params)
	},
}

func init() {
	diffCmd.Flags().StringVarP(&diffVar, "var", "v", "", "Variable to differentiate with respect to")
	diffCmd.Flags().IntVarP(&diffOrder, "order", "n", 1, "Order of the derivative")
	AddCommand(diffCmd)
}
