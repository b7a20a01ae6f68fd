// Package base provides common functionality for ep command components.
package base

import (
	"fmt"

	"github.com/lerenn/edit-path/pkg/access"
	"github.com/lerenn/edit-path/pkg/address"
	"github.com/lerenn/edit-path/pkg/config"
	"github.com/lerenn/edit-path/pkg/convention"
	"github.com/lerenn/edit-path/pkg/lister"
	"github.com/lerenn/edit-path/pkg/logger"
	"github.com/lerenn/edit-path/pkg/resolver"
	"github.com/lerenn/edit-path/pkg/resource"
)

// Base provides common functionality for ep command components.
type Base struct {
	Accessor access.Accessor
	Resolver *resolver.Resolver
	Lister   *lister.Lister
	Config   *config.Config
	Logger   logger.Logger
	verbose  bool
}

// NewBaseParams contains parameters for creating a new Base instance.
type NewBaseParams struct {
	Accessor access.Accessor
	Resolver *resolver.Resolver
	Lister   *lister.Lister
	Config   *config.Config
	Logger   logger.Logger
	Verbose  bool
}

// NewBase creates a new Base instance.
func NewBase(params NewBaseParams) *Base {
	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}
	cfg := params.Config
	if cfg == nil {
		cfg = &config.Config{PseudoEntries: true}
	}
	r := params.Resolver
	if r == nil {
		r = resolver.NewResolver(resolver.NewResolverParams{Logger: l})
	}
	ls := params.Lister
	if ls == nil {
		detector := r.Detector()
		ls = lister.NewLister(lister.NewListerParams{
			Accessor: params.Accessor,
			Detector: &detector,
			Logger:   l,
		})
	}

	return &Base{
		Accessor: params.Accessor,
		Resolver: r,
		Lister:   ls,
		Config:   cfg,
		Logger:   l,
		verbose:  params.Verbose,
	}
}

// VerbosePrint prints a formatted message only in verbose mode.
func (b *Base) VerbosePrint(msg string, args ...interface{}) {
	if b.verbose {
		b.Logger.Logf(msg, args...)
	}
}

// Locate turns a resolved path string into a handle usable with the accessor.
func (b *Base) Locate(p string, conv convention.Convention, ref resource.Handle) (resource.Handle, error) {
	b.VerbosePrint("Locating %s (%s) relative to %s", p, conv, ref)

	h, err := address.ToResourceHandle(p, conv, ref)
	if err != nil {
		b.VerbosePrint("Error: %v", err)
		return resource.Handle{}, fmt.Errorf("%w: %w", ErrInvalidLocation, err)
	}

	return h, nil
}
