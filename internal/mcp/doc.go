// Package mcp provides the Model Context Protocol (MCP) server for compkit using mcp-go.
//
// The server lets AI assistants search the component catalog, fetch
// installation instructions, run the clone-frontend workflow and walk the
// template and landing-page conversations.
//
// # Implementation
//
// The package uses the mcp-go library (github.com/mark3labs/mcp-go). Tools do
// no work themselves: every call is forwarded to the compkit HTTP API at the
// configured api_url, so the MCP process stays small and the browser used for
// screenshots lives in the API process.
//
// # Tools
//
//   - list_components: ranked search over the catalog
//   - get_component_details: install command, import and usage for one component
//   - clone_frontend: initial_analysis, component_suggestion, compare_screenshots, iteration_guide
//   - generate_template: four-question project template conversation
//   - generate_landing_page: four-question landing page conversation
//
// Screenshots from clone_frontend are returned as image content.
//
// # Fallbacks
//
// When the API cannot be reached, tools return instructional text the
// assistant can follow by hand instead of an error. Errors reported by the
// API itself (missing fields, failed captures) are returned as tool errors.
//
// # Usage
//
// The MCP server is typically started as a subprocess by AI assistants that support
// MCP integration:
//
//	compkit mcp
//
// The server reads JSON-RPC requests from stdin and writes responses to stdout
// until it receives EOF or is terminated. Logs never go to stdout.
//
// # References
//
// - MCP Specification: https://modelcontextprotocol.io/specification
// - mcp-go Library: https://github.com/mark3labs/mcp-go
package mcp
