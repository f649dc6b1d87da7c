package gemini

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fwojciec/imagine"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const defaultTimeout = 2 * time.Minute

// Interface compliance check.
var _ imagine.Generator = (*Client)(nil)

// Client implements [imagine.Generator] for the Google Gemini API.
//
// A single Client is shared by all concurrent calls. The only mutable state
// is the output directory, guarded by an RWMutex; everything else is set at
// construction.
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger

	mu        sync.RWMutex
	outputDir string
}

// Option configures a [Client].
type Option func(*Client)

// WithModel sets the model ID. Default is gemini-2.5-flash-image-preview.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// WithOutputDir sets the artifact directory. Default is an "imagine"
// directory under the OS temp directory.
func WithOutputDir(dir string) Option {
	return func(c *Client) { c.outputDir = dir }
}

// WithTimeout bounds each provider round trip. Default is 2 minutes.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger sets the logger. Default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a new Gemini [Client] with the given API key and options.
// The output directory is created if absent; construction fails if it
// cannot be.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key must not be empty: %w", imagine.ErrConfiguration)
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	c := &Client{
		client:  gc,
		model:   defaultModel,
		timeout: defaultTimeout,
		logger:  zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	if c.outputDir == "" {
		c.outputDir = filepath.Join(os.TempDir(), "imagine")
	}
	if err := os.MkdirAll(c.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("gemini: create output directory %q: %v: %w", c.outputDir, err, imagine.ErrStorage)
	}
	return c, nil
}

// Generate performs one provider round trip and writes the returned image
// under the output directory. It never returns an error: every failure mode
// is normalized into the outcome's failure branch. No retries are made.
func (c *Client) Generate(ctx context.Context, req imagine.Request) (out imagine.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = imagine.Failure(fmt.Sprintf("panic during generation: %v", r))
		}
	}()

	if err := req.Validate(); err != nil {
		return imagine.Failure(err.Error())
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(req.Prompt), buildConfig(req))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return imagine.Failure("timeout waiting for provider")
		}
		c.logger.Warn("provider call failed", zap.Error(err))
		return imagine.Failure(err.Error())
	}

	blob, err := ExtractImage(resp)
	if err != nil {
		return imagine.Failure(err.Error())
	}

	path, err := saveArtifact(c.OutputDir(), blob)
	if err != nil {
		return imagine.Failure(err.Error())
	}
	c.logger.Info("artifact written",
		zap.String("path", path),
		zap.String("mime_type", blob.MIMEType),
		zap.Int("bytes", len(blob.Data)))
	return imagine.Success(path, blob.Data)
}

// OutputDir returns the current artifact directory.
func (c *Client) OutputDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.outputDir
}

// SetOutputDir replaces the artifact directory. The new location is created
// before it is accepted; on failure the previous value is kept.
func (c *Client) SetOutputDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("gemini: output directory must not be empty: %w", imagine.ErrValidation)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("gemini: create output directory %q: %v: %w", dir, err, imagine.ErrStorage)
	}
	c.outputDir = dir
	return nil
}

// buildConfig merges the request's tunables over the documented defaults.
func buildConfig(req imagine.Request) *genai.GenerateContentConfig {
	temperature := float32(imagine.DefaultTemperature)
	if req.Temperature != nil {
		temperature = float32(*req.Temperature)
	}
	topP := float32(imagine.DefaultTopP)
	if req.TopP != nil {
		topP = float32(*req.TopP)
	}
	topK := float32(imagine.DefaultTopK)
	if req.TopK != nil {
		topK = float32(*req.TopK)
	}
	maxTokens := int32(imagine.DefaultMaxOutputTokens)
	if req.MaxOutputTokens != nil {
		maxTokens = int32(*req.MaxOutputTokens)
	}
	return &genai.GenerateContentConfig{
		Temperature:        &temperature,
		TopP:               &topP,
		TopK:               &topK,
		MaxOutputTokens:    maxTokens,
		ResponseModalities: []string{"TEXT", "IMAGE"},
	}
}

// ExtractImage validates a provider reply and returns its first inline
// image blob. The reply is untrusted: presence of each nested field is
// checked before use, and any shape mismatch yields an error.
func ExtractImage(resp *genai.GenerateContentResponse) (*genai.Blob, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, errors.New("no image produced")
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil {
		return nil, errors.New("no image produced")
	}
	for _, part := range cand.Content.Parts {
		if part == nil || part.InlineData == nil {
			continue
		}
		if len(part.InlineData.Data) == 0 {
			continue
		}
		return part.InlineData, nil
	}
	return nil, errors.New("no image produced")
}
