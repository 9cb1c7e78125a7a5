package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// regionSchema describes one rectangular region argument, reused by every
// tool that accepts protection rectangles.
func regionSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"x1": map[string]interface{}{"type": "integer", "description": "Left edge (inclusive)"},
			"y1": map[string]interface{}{"type": "integer", "description": "Top edge (inclusive)"},
			"x2": map[string]interface{}{"type": "integer", "description": "Right edge (exclusive)"},
			"y2": map[string]interface{}{"type": "integer", "description": "Bottom edge (exclusive)"},
		},
		"required": []string{"x1", "y1", "x2", "y2"},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, and the maximum number of seams that can be carved from it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file (PNG, JPEG, GIF, or PPM)",
					},
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
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Carving
		{
			Name:        "image_carve",
			Description: "Reduce image width by removing N minimum-energy vertical seams (content-aware narrowing). Returns the carved image as base64 PNG. Optionally protect regions so seams route around them.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"seams": map[string]interface{}{
						"type":        "integer",
						"description": "Number of vertical seams to remove. Must leave at least one column.",
					},
					"protect": map[string]interface{}{
						"type":        "array",
						"items":       regionSchema(),
						"description": "Optional regions seams must avoid when possible",
					},
					"protect_text": map[string]interface{}{
						"type":        "boolean",
						"description": "Automatically detect and protect likely text regions. Default false.",
						"default":     false,
					},
				},
				"required": []string{"path", "seams"},
			},
		},
		{
			Name:        "image_resize_compare",
			Description: "Reduce an image to a target width twice, by seam carving and by Lanczos resampling, and return both results for side-by-side comparison.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"target_width": map[string]interface{}{
						"type":        "integer",
						"description": "Output width in pixels, between 1 and the source width",
					},
				},
				"required": []string{"path", "target_width"},
			},
		},

		// Diagnostics
		{
			Name:        "image_energy_map",
			Description: "Render the per-pixel gradient energy as a grayscale image: bright pixels resist carving, dark pixels attract seams.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"blur_radius": map[string]interface{}{
						"type":        "number",
						"description": "Optional Gaussian pre-blur radius to suppress noise. Default 0 (no blur).",
						"default":     0,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_seam_preview",
			Description: "Draw the next N seams a carve would remove, color-ramped from red (first) to yellow (last), without removing anything.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"seams": map[string]interface{}{
						"type":        "integer",
						"description": "Number of seams to draw. Default 1.",
						"default":     1,
					},
					"protect": map[string]interface{}{
						"type":        "array",
						"items":       regionSchema(),
						"description": "Optional regions seams must avoid when possible",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_detect_text_regions",
			Description: "Find regions likely to contain text, as candidates for carve protection.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"min_confidence": map[string]interface{}{
						"type":        "number",
						"description": "Minimum confidence threshold (0.0-1.0). Default 0.3.",
						"default":     0.3,
					},
				},
				"required": []string{"path"},
			},
		},
	}
}
