// Package mcpserver exposes the runner's run/filter/summarize operation
// set as a single MCP tool (mcp.NewTool + server.MCPServer.AddTool),
// served over stdio.
package mcpserver
