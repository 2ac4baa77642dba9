// Package prompts contains MCP prompt implementations for building Galaxy
// tools from OGC API Processes servers.
package prompts

// Config holds configuration needed by prompts.
type Config struct {
	// Interpreter and Script are the executor defaults generated tools use.
	Interpreter string
	Script      string
}
