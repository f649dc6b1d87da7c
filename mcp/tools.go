package mcp

// Tool is an MCP tool descriptor: name, description, and a JSON Schema for
// its arguments.
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// Tools returns the static tool catalog. Pure: successive calls yield
// identical content.
func Tools() []Tool {
	return []Tool{
		{
			Name:        ToolGenerateImage,
			Description: "Generate an image from a text prompt. Returns a URL under which the generated image can be retrieved.",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"prompt": map[string]any{
						"type":        "string",
						"description": "Text description of the image to generate",
					},
					"temperature": map[string]any{
						"type":        "number",
						"description": "Sampling temperature in [0, 1]. Default 1.0",
						"default":     1.0,
					},
					"topP": map[string]any{
						"type":        "number",
						"description": "Nucleus sampling threshold in [0, 1]. Default 0.95",
						"default":     0.95,
					},
					"topK": map[string]any{
						"type":        "integer",
						"description": "Top-k sampling cutoff, positive. Default 40",
						"default":     40,
					},
					"maxOutputTokens": map[string]any{
						"type":        "integer",
						"description": "Output token budget, positive. Default 8192",
						"default":     8192,
					},
				},
				"required": []string{"prompt"},
			},
		},
	}
}
