package opener

import (
	"context"
	"fmt"

	"github.com/lerenn/edit-path/pkg/access"
	"github.com/lerenn/edit-path/pkg/address"
	"github.com/lerenn/edit-path/pkg/resolver"
)

// Open resolves raw against c and returns the existing resource it names.
// A missing resource is created empty when opts.Create is set. Nothing is
// written when the resolved location is invalid or cannot be checked.
func (o *Opener) Open(ctx context.Context, raw string, c resolver.Context, opts OpenOptions) (Result, error) {
	rp := o.Resolver.Resolve(raw, c)
	o.VerbosePrint("Resolved %q to %s", raw, rp.FullPath)

	h, err := o.Locate(rp.FullPath, rp.Convention, c.Handle)
	if err != nil {
		o.Logger.Logf("cannot open %q: %v", raw, err)
		return Result{}, err
	}
	result := Result{Handle: h, Path: address.PathStringFor(h, rp.Convention)}

	exists, err := o.Accessor.Stat(ctx, h)
	if err != nil {
		o.Logger.Logf("cannot check %s: %v", result.Path, err)
		return Result{}, fmt.Errorf("%w: %w", ErrStatFailed, err)
	}
	if exists {
		return result, nil
	}

	if !opts.Create {
		return Result{}, fmt.Errorf("%w: %s", ErrNotFound, result.Path)
	}

	o.VerbosePrint("Creating %s", result.Path)
	if err := o.Accessor.WriteFile(ctx, h, []byte{}, access.WriteOptions{Create: true}); err != nil {
		o.Logger.Logf("cannot create %s: %v", result.Path, err)
		return Result{}, fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}

	result.Created = true
	return result, nil
}
