// Package server implements the MCP (Model Context Protocol) server for
// content-aware image resizing.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Seam Carving:
//   - image_seam_carve: Resize to an absolute width and/or height and save
//     the result
//   - image_energy_map: Render the energy field as a base64 PNG, optionally
//     with the next seam drawn over it
//
// # Image Caching
//
// Decoded images are cached by path for the lifetime of the process. A
// resize whose output overwrites a cached path evicts that entry, so later
// calls see the new file.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.New(version)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
