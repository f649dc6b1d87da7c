// Package imagine defines the domain types for a text-to-image generation
// service: generation requests, their outcomes, and the Generator interface
// implemented by provider clients.
package imagine

import "context"

// Generator is a strategy pattern interface for image-generation providers.
//
// Generate performs a single provider round trip. It never returns an error
// and never panics: every failure mode (validation, transport, malformed
// reply, storage, deadline expiry) is normalized into the Outcome's failure
// branch. Cancellation flows through ctx.
//
// OutputDir and SetOutputDir expose the directory artifacts are written
// under. SetOutputDir must create the directory before accepting it.
type Generator interface {
	Generate(ctx context.Context, req Request) Outcome
	OutputDir() string
	SetOutputDir(dir string) error
}
