package server

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/ironsheep/seam-carve-mcp/internal/detection"
	"github.com/ironsheep/seam-carve-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_carve").
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
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads the image from cache
//  4. Calls the appropriate imaging/detection function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Carving
	case "image_carve":
		return s.handleImageCarve(args)
	case "image_resize_compare":
		return s.handleImageResizeCompare(args)

	// Diagnostics
	case "image_energy_map":
		return s.handleImageEnergyMap(args)
	case "image_seam_preview":
		return s.handleImageSeamPreview(args)
	case "image_detect_text_regions":
		return s.handleImageDetectTextRegions(args)

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

// regionArg is one rectangular region in tool arguments.
type regionArg struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

func (r regionArg) rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
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
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Carving Handlers ===

type imageCarveArgs struct {
	Path        string      `json:"path"`
	Seams       int         `json:"seams"`
	Protect     []regionArg `json:"protect"`
	ProtectText bool        `json:"protect_text"`
}

func (s *Server) handleImageCarve(args json.RawMessage) (interface{}, error) {
	var a imageCarveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	protect := make([]image.Rectangle, 0, len(a.Protect))
	for _, r := range a.Protect {
		protect = append(protect, r.rect())
	}
	if a.ProtectText {
		found, err := detection.TextRegions(img, 0.3)
		if err != nil {
			return nil, fmt.Errorf("text detection: %w", err)
		}
		for _, r := range found.Regions {
			protect = append(protect, r.Rect())
		}
	}

	return imaging.CarveWidth(img, a.Seams, protect)
}

type imageResizeCompareArgs struct {
	Path        string `json:"path"`
	TargetWidth int    `json:"target_width"`
}

func (s *Server) handleImageResizeCompare(args json.RawMessage) (interface{}, error) {
	var a imageResizeCompareArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.ResizeCompare(img, a.TargetWidth)
}

// === Diagnostic Handlers ===

type imageEnergyMapArgs struct {
	Path       string  `json:"path"`
	BlurRadius float64 `json:"blur_radius"`
}

func (s *Server) handleImageEnergyMap(args json.RawMessage) (interface{}, error) {
	var a imageEnergyMapArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.EnergyMap(img, a.BlurRadius)
}

type imageSeamPreviewArgs struct {
	Path    string      `json:"path"`
	Seams   int         `json:"seams"`
	Protect []regionArg `json:"protect"`
}

func (s *Server) handleImageSeamPreview(args json.RawMessage) (interface{}, error) {
	var a imageSeamPreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Seams == 0 {
		a.Seams = 1
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	protect := make([]image.Rectangle, 0, len(a.Protect))
	for _, r := range a.Protect {
		protect = append(protect, r.rect())
	}
	return imaging.SeamPreview(img, a.Seams, protect)
}

type imageDetectTextRegionsArgs struct {
	Path          string  `json:"path"`
	MinConfidence float64 `json:"min_confidence"`
}

func (s *Server) handleImageDetectTextRegions(args json.RawMessage) (interface{}, error) {
	var a imageDetectTextRegionsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.MinConfidence == 0 {
		a.MinConfidence = 0.3
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return detection.TextRegions(img, a.MinConfidence)
}
