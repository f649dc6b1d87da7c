// Package mcp implements the Model Context Protocol surface of the image
// generator: a JSON-RPC 2.0 loop over line-delimited JSON (stdin/stdout by
// default), a static tool catalog, and the tools/call handler that adapts
// tool-invocation envelopes onto [imagine.Generator].
//
// Every inbound request produces a structurally valid response carrying the
// request's ID; no failure path escapes the handler as a fault.
package mcp

// JSON-RPC 2.0 error codes used by the server.
const (
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeInternalError  = -32603
)

const (
	protocolVersion = "2024-11-05"
	serverName      = "imagine"
	serverVersion   = "0.1.0"
)

// ToolGenerateImage is the name of the single supported tool.
const ToolGenerateImage = "generate_image"

// ImagePathPrefix is the URL namespace under which artifacts are served.
// The imageUrl in a tool result is relative to the serving root.
const ImagePathPrefix = "/images"
