package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ironsheep/image-seam-carver/internal/carving"
	"github.com/ironsheep/image-seam-carver/internal/imaging"
)

// errMissingPath is returned by tools called without a path argument.
var errMissingPath = errors.New("path is required")

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_seam_carve").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.debug {
			log.Printf("Tool %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Seam Carving
	case "image_seam_carve":
		return s.handleImageSeamCarve(args)
	case "image_energy_map":
		return s.handleImageEnergyMap(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errMissingPath
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errMissingPath
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Seam Carving Handlers ===

type imageSeamCarveArgs struct {
	Path       string `json:"path"`
	Width      *int   `json:"width"`
	Height     *int   `json:"height"`
	OutputPath string `json:"output_path"`
}

// SeamCarveResult describes a finished resize.
type SeamCarveResult struct {
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	OutputPath    string `json:"output_path"`
	SeamsRemoved  int    `json:"seams_removed"`
	SeamsInserted int    `json:"seams_inserted"`
	ElapsedMs     int64  `json:"elapsed_ms"`
}

func (s *Server) handleImageSeamCarve(args json.RawMessage) (interface{}, error) {
	var a imageSeamCarveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errMissingPath
	}

	var width, height int
	if a.Width != nil {
		if *a.Width <= 0 {
			return nil, fmt.Errorf("width must be greater than zero, got %d", *a.Width)
		}
		width = *a.Width
	}
	if a.Height != nil {
		if *a.Height <= 0 {
			return nil, fmt.Errorf("height must be greater than zero, got %d", *a.Height)
		}
		height = *a.Height
	}

	if a.OutputPath == "" {
		a.OutputPath = imaging.DefaultOutputPath(a.Path)
	}
	if err := imaging.CheckOutputPath(a.OutputPath); err != nil {
		return nil, fmt.Errorf("output path: %w", err)
	}

	start := time.Now()
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	carver, err := carving.NewCarver(img)
	if err != nil {
		return nil, err
	}
	if err := carver.ResizeTo(width, height); err != nil {
		return nil, err
	}

	opts := imaging.SaveOptions{JPEGQuality: s.settings.Output.JPEGQuality}
	if err := imaging.Save(carver.Image(), a.OutputPath, opts); err != nil {
		return nil, err
	}
	// The output may overwrite a file that was loaded earlier.
	s.cache.Evict(a.OutputPath)

	result := &SeamCarveResult{
		Width:         carver.Width(),
		Height:        carver.Height(),
		OutputPath:    a.OutputPath,
		SeamsRemoved:  carver.SeamsRemoved(),
		SeamsInserted: carver.SeamsInserted(),
		ElapsedMs:     time.Since(start).Milliseconds(),
	}
	if s.debug {
		log.Printf("Carved %s to %dx%d (-%d/+%d seams) in %dms",
			a.Path, result.Width, result.Height, result.SeamsRemoved, result.SeamsInserted, result.ElapsedMs)
	}
	return result, nil
}

type imageEnergyMapArgs struct {
	Path      string `json:"path"`
	Palette   string `json:"palette"`
	ShowSeam  bool   `json:"show_seam"`
	SeamColor string `json:"seam_color"`
}

// EnergyMapResult is a rendered energy map, with the next seam when requested.
type EnergyMapResult struct {
	*imaging.EncodedImage

	Palette string `json:"palette"`

	// Seam holds the column of the next seam in each row, top to bottom.
	Seam []int `json:"seam,omitempty"`

	// SeamEnergy is the total energy along Seam.
	SeamEnergy float64 `json:"seam_energy,omitempty"`
}

func (s *Server) handleImageEnergyMap(args json.RawMessage) (interface{}, error) {
	var a imageEnergyMapArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errMissingPath
	}

	name := a.Palette
	if name == "" {
		name = s.settings.Debug.Palette
	}
	switch strings.ToLower(name) {
	case "gray", "heat":
	default:
		return nil, fmt.Errorf("unknown palette %q (use gray or heat)", a.Palette)
	}
	palette := carving.ParsePalette(name)

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	grid, err := carving.FromImage(img)
	if err != nil {
		return nil, err
	}

	result := &EnergyMapResult{Palette: palette.String()}
	rendered := grid.EnergyImage(palette)

	if a.ShowSeam {
		seam, cost, err := grid.FindPath()
		if err != nil {
			return nil, err
		}
		color := a.SeamColor
		if color == "" {
			color = imaging.DefaultSeamColor
		}
		overlaid, err := imaging.OverlayPath(rendered, seam, color)
		if err != nil {
			return nil, err
		}
		rendered = overlaid
		result.Seam = seam.Columns()
		result.SeamEnergy = cost
	}

	encoded, err := imaging.EncodePNG(rendered)
	if err != nil {
		return nil, err
	}
	result.EncodedImage = encoded
	return result, nil
}
