package access

import (
	"context"
	"fmt"

	"github.com/lerenn/edit-path/pkg/resource"
)

// Router dispatches each call to the accessor registered for the handle's scheme kind.
type Router struct {
	routes map[resource.Kind]Accessor
}

// NewRouter creates a Router from routes.
func NewRouter(routes map[resource.Kind]Accessor) *Router {
	r := &Router{routes: make(map[resource.Kind]Accessor, len(routes))}
	for kind, a := range routes {
		r.routes[kind] = a
	}
	return r
}

func (r *Router) route(h resource.Handle) (Accessor, error) {
	a, ok := r.routes[h.Scheme().Kind()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, h.Scheme())
	}
	return a, nil
}

// Stat implements Accessor.
func (r *Router) Stat(ctx context.Context, h resource.Handle) (bool, error) {
	a, err := r.route(h)
	if err != nil {
		return false, err
	}
	return a.Stat(ctx, h)
}

// ReadDirectory implements Accessor.
func (r *Router) ReadDirectory(ctx context.Context, h resource.Handle) ([]Entry, error) {
	a, err := r.route(h)
	if err != nil {
		return nil, err
	}
	return a.ReadDirectory(ctx, h)
}

// WriteFile implements Accessor.
func (r *Router) WriteFile(ctx context.Context, h resource.Handle, data []byte, opts WriteOptions) error {
	a, err := r.route(h)
	if err != nil {
		return err
	}
	return a.WriteFile(ctx, h, data, opts)
}
