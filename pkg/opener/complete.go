package opener

import (
	"context"
	"strings"

	"github.com/lerenn/edit-path/pkg/resolver"
)

// Complete returns the candidates for raw: entries of the directory raw
// points into whose name starts with the typed base name, prefixed with the
// directory part exactly as typed.
func (o *Opener) Complete(ctx context.Context, raw string, c resolver.Context) []string {
	rp := o.Resolver.Resolve(raw, c)

	dir, err := o.Locate(rp.FullDirectory, rp.Convention, c.Handle)
	if err != nil {
		return []string{}
	}

	typedDir, _ := resolver.Split(rp.NormalizedInput, rp.Convention.Separator())

	candidates := []string{}
	for _, entry := range o.Lister.List(ctx, dir, o.Config.PseudoEntries) {
		if strings.HasPrefix(entry.DisplayName, rp.BaseName) {
			candidates = append(candidates, typedDir+entry.DisplayName)
		}
	}
	return candidates
}
