package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/njchilds90/symcalc"
)

var (
	exprFile   string
	outputJSON bool
	showLaTeX  bool
	noSimplify bool
)

var rootCmd = &cobra.Command{
	Use:   "symcalc",
	Short: "symcalc evaluates and differentiates expression trees",
	Long: `symcalc works on expressions written in the symcalc JSON form, e.g.

  {"type":"power","base":{"type":"variable","name":"x"},"exp":{"type":"value","value":2}}

An expression is read from the first argument, from --file, or from stdin
when the argument is "-".`,
	SilenceUsage: true,
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&exprFile, "file", "f", "", "Read the expression JSON from a file")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Print the full tool response as JSON")
	rootCmd.PersistentFlags().BoolVar(&showLaTeX, "latex", false, "Also print the LaTeX form")
	rootCmd.PersistentFlags().BoolVar(&noSimplify, "no-simplify", false, "Do not simplify derived expressions")
}

// ExecuteArgs runs the root command with args in place of os.Args[1:].
func ExecuteArgs(args []string) {
	rootCmd.SetArgs(args)
	Execute()
}

// AddCommand allows adding subcommands from other files.
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

// readInput returns the raw JSON from the argument, --file or stdin.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	switch {
	case exprFile != "":
		return os.ReadFile(exprFile)
	case len(args) > 0 && args[0] == "-":
		return io.ReadAll(cmd.InOrStdin())
	case len(args) > 0:
		return []byte(args[0]), nil
	}
	return nil, fmt.Errorf("no expression given: pass JSON as an argument, -f <file> or - for stdin")
}

func decodeValue(cmd *cobra.Command, args []string) (interface{}, error) {
	raw, err := readInput(cmd, args)
	if err != nil {
		return nil, err
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("invalid expression JSON: %w", err)
	}
	return v, nil
}

// runTool sends params to the tool dispatcher and prints the response.
func runTool(cmd *cobra.Command, tool string, params map[string]interface{}) error {
	params["auto_simplify"] = !noSimplify
	resp := symcalc.HandleToolCall(symcalc.ToolRequest{Tool: tool, Params: params})
	if resp.Error != "" {
		return fmt.Errorf("%s: %s", tool, resp.Error)
	}

	out := cmd.OutOrStdout()
	if outputJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	label := color.New(color.FgCyan, color.Bold)
	fmt.Fprintf(out, "%s %s\n", label.Sprint(tool+":"), resp.String)
	if showLaTeX && resp.LaTeX != "" {
		fmt.Fprintf(out, "%s %s\n", label.Sprint("latex:"), resp.LaTeX)
	}
	return nil
}

// parseBindings turns name=value pairs into a bindings object.
func parseBindings(pairs []string) (map[string]interface{}, error) {
	b := map[string]interface{}{}
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("binding %q must look like name=value", p)
		}
		x, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", p, err)
		}
		b[name] = x
	}
	return b, nil
}
