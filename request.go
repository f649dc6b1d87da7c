package imagine

import "fmt"

// Default generation tunables, applied by the provider when the
// corresponding Request field is nil.
const (
	DefaultTemperature     = 1.0
	DefaultTopP            = 0.95
	DefaultTopK            = 40
	DefaultMaxOutputTokens = 8192
)

// Request carries a generation prompt and optional tunables.
// Nil tunables mean "use the documented default". A Request is a value:
// construct it once and do not mutate it afterwards.
type Request struct {
	Prompt          string
	Temperature     *float64 // nil = DefaultTemperature
	TopP            *float64 // nil = DefaultTopP
	TopK            *int     // nil = DefaultTopK
	MaxOutputTokens *int     // nil = DefaultMaxOutputTokens
}

// Validate checks universal constraints on Request. Out-of-range tunables
// are rejected, never clamped; conditions only the provider can detect are
// left to the provider's own error signaling.
func (r Request) Validate() error {
	if r.Prompt == "" {
		return fmt.Errorf("prompt must not be empty: %w", ErrValidation)
	}
	if r.Temperature != nil {
		if *r.Temperature < 0 || *r.Temperature > 1 {
			return fmt.Errorf("temperature must be in [0, 1], got %g: %w", *r.Temperature, ErrValidation)
		}
	}
	if r.TopP != nil {
		if *r.TopP < 0 || *r.TopP > 1 {
			return fmt.Errorf("top_p must be in [0, 1], got %g: %w", *r.TopP, ErrValidation)
		}
	}
	if r.TopK != nil && *r.TopK <= 0 {
		return fmt.Errorf("top_k must be positive, got %d: %w", *r.TopK, ErrValidation)
	}
	if r.MaxOutputTokens != nil && *r.MaxOutputTokens <= 0 {
		return fmt.Errorf("max_output_tokens must be positive, got %d: %w", *r.MaxOutputTokens, ErrValidation)
	}
	return nil
}
