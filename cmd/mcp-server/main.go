// cmd/mcp-server/main.go: standalone HTTP MCP server for symcalc
//
// Exposes symcalc tools as an HTTP endpoint for AI agent frameworks. It is
// the same server as "symcalc serve" and takes the same flags.
//
// Usage:
//
//	go run ./cmd/mcp-server --port 8080
//
// Tool call endpoint: POST /tool
// Schema endpoint:    GET  /schema
// Health endpoint:    GET  /health
package main

import (
	"os"

	"github.com/njchilds90/symcalc/cmd/symcalc/commands"
)

func main() {
	commands.ExecuteArgs(append([]string{"serve"}, os.Args[1:]...))
}
