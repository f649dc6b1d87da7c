// Package mock provides test doubles for imagine interfaces using function
// fields.
package mock

import (
	"context"

	"github.com/fwojciec/imagine"
)

// Interface compliance check.
var _ imagine.Generator = (*Generator)(nil)

// Generator is a test double for imagine.Generator.
// Set the function fields for the methods you need.
type Generator struct {
	GenerateFn     func(ctx context.Context, req imagine.Request) imagine.Outcome
	OutputDirFn    func() string
	SetOutputDirFn func(dir string) error
}

// Generate delegates to GenerateFn.
func (g *Generator) Generate(ctx context.Context, req imagine.Request) imagine.Outcome {
	return g.GenerateFn(ctx, req)
}

// OutputDir delegates to OutputDirFn.
func (g *Generator) OutputDir() string {
	return g.OutputDirFn()
}

// SetOutputDir delegates to SetOutputDirFn.
func (g *Generator) SetOutputDir(dir string) error {
	return g.SetOutputDirFn(dir)
}
