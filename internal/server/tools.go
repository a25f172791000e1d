package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and whether a resized copy can be written in the same format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Seam Carving
		{
			Name: "image_seam_carve",
			Description: "Resize an image to an exact size by removing or inserting low-energy seams, " +
				"keeping important content undistorted. Sizes are absolute; an omitted size is kept. " +
				"The result is written to output_path, by default <stem>-resized.<ext> beside the input.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Target width in pixels (> 0). Default: current width",
						"minimum":     1,
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Target height in pixels (> 0). Default: current height",
						"minimum":     1,
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Where to write the result. The extension selects the format (png, jpg, gif, tif, bmp)",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name: "image_energy_map",
			Description: "Render the dual-gradient energy of an image as a base64-encoded PNG. " +
				"Bright areas are expensive to carve; optionally draws the seam that would be removed next.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"palette": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"gray", "heat"},
						"description": "Rendering palette. Default from settings (gray)",
					},
					"show_seam": map[string]interface{}{
						"type":        "boolean",
						"description": "Draw the lowest-energy vertical seam. Default false",
						"default":     false,
					},
					"seam_color": map[string]interface{}{
						"type":        "string",
						"description": "Seam color as #RRGGBB or #RRGGBBAA. Default #FF0000",
						"default":     "#FF0000",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
