package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var gradientVars []string

var gradientCmd = &cobra.Command{
	Use:   "gradient [expr.json | -]",
	Short: "Compute the gradient of an expression",
	Long: `Compute the gradient of an expression. Components follow the order in
which variables first appear, unless --vars fixes it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr, err := decodeValue(cmd, args)
		if err != nil {
			return err
		}
		params := map[string]interface{}{"expr": expr}
		if len(gradientVars) > 0 {
			vars := make([]interface{}, len(gradientVars))
			for i, v := range gradientVars {
				vars[i] = v
			}
			params["vars"] = vars
		}
		return runTool(cmd, "gradient", params)
	},
}

var jacobianCmd = &cobra.Command{
	Use:   "jacobian [exprs.json | -]",
	Short: "Compute the Jacobian of a list of expressions",
	Long:  `The input must be a JSON array of expressions.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exprs, err := decodeValue(cmd, args)
		if err != nil {
			return err
		}
		if _, ok := exprs.([]interface{}); !ok {
			return fmt.Errorf("jacobian expects a JSON array of expressions")
		}
		return runTool(cmd, "jacobian", map[string]interface{}{"exprs": exprs})
	},
}

var freeVarsCmd = &cobra.Command{
	Use:   "free-vars [expr.json | -]",
	Short: "List the free variables of an expression or an array of expressions",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := decodeValue(cmd, args)
		if err != nil {
			return err
		}
		if list, ok := v.([]interface{}); ok {
			return runTool(cmd, "free_variables", map[string]interface{}{"exprs": list})
		}
		return runTool(cmd, "free_variables", map[string]interface{}{"expr": v})
	},
}

func init() {
	gradientCmd.Flags().StringSliceVar(&gradientVars, "vars", nil, "Comma separated variable order")
	AddCommand(gradientCmd)
	AddCommand(jacobianCmd)
	AddCommand(freeVarsCmd)
}
