package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/imagine"
	"go.uber.org/zap"
)

// toolCallParams is the params object of a tools/call request.
type toolCallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// generateArgs are the arguments of the generate_image tool. Absent
// optional fields keep the provider defaults.
type generateArgs struct {
	Prompt          string   `json:"prompt"`
	Temperature     *float64 `json:"temperature"`
	TopP            *float64 `json:"topP"`
	TopK            *int     `json:"topK"`
	MaxOutputTokens *int     `json:"maxOutputTokens"`
}

// contentItem is one element of a tool result's content list.
type contentItem struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// handleToolsCall validates a tool-call envelope, delegates to the
// generator, and maps the outcome onto a response. No fault escapes: a
// panic anywhere below is converted to an internal error carrying the
// request's ID.
func (s *Server) handleToolsCall(ctx context.Context, req *Request) (resp *Response) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic in tools/call", zap.Any("panic", r))
			resp = errorResponse(req.ID, codeInternalError, "Internal error",
				fmt.Sprintf("unexpected fault: %v", r))
		}
	}()

	var params toolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}
	if params.Name != ToolGenerateImage {
		return errorResponse(req.ID, codeMethodNotFound, "Method not found",
			fmt.Sprintf("unknown tool: %s", params.Name))
	}

	var args generateArgs
	if len(params.Arguments) > 0 {
		if err := json.Unmarshal(params.Arguments, &args); err != nil {
			return errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
		}
	}
	if args.Prompt == "" {
		return errorResponse(req.ID, codeInvalidParams, "Invalid params", "prompt is required")
	}

	gr := imagine.Request{
		Prompt:          args.Prompt,
		Temperature:     args.Temperature,
		TopP:            args.TopP,
		TopK:            args.TopK,
		MaxOutputTokens: args.MaxOutputTokens,
	}
	// Statically detectable range violations are rejected here, before any
	// provider round trip.
	if err := gr.Validate(); err != nil {
		return errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	out := s.gen.Generate(ctx, gr)
	if out.Failed() {
		return errorResponse(req.ID, codeInternalError, "Internal error", out.Reason)
	}

	url, ok := s.imageURL(out)
	if !ok {
		// Defensive: the generator contract makes this unreachable, but a
		// malformed success must still terminate in a well-formed error.
		return errorResponse(req.ID, codeInternalError, "Internal error", "no image was produced")
	}

	return &Response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]any{
			"content": []contentItem{
				{Type: "image", ImageURL: url},
				{Type: "text", Text: fmt.Sprintf("Image generated successfully: %s", url)},
			},
		},
	}
}

// imageURL derives the servable reference for an artifact: its path
// relative to the output directory, rooted under /images. Paths that do
// not resolve under the output directory are rejected.
func (s *Server) imageURL(out imagine.Outcome) (string, bool) {
	if !out.Valid() || out.Path == "" {
		return "", false
	}
	rel, err := filepath.Rel(s.gen.OutputDir(), out.Path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return path.Join(ImagePathPrefix, filepath.ToSlash(rel)), true
}
