package resolver

import (
	"strings"

	"github.com/lerenn/edit-path/pkg/address"
	"github.com/lerenn/edit-path/pkg/convention"
	"github.com/lerenn/edit-path/pkg/logger"
	"github.com/lerenn/edit-path/pkg/resource"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=resolve.go -destination=mocks/resolve.gen.go -package=mocks

// HomeDirProvider looks up the home directory of the local user.
type HomeDirProvider interface {
	GetHomeDir() (string, error)
}

// ResolvedPath is the outcome of one resolution.
// FullPath always equals Convention.Join(FullDirectory, BaseName).
type ResolvedPath struct {
	FullPath        string
	FullDirectory   string
	DirectoryPart   string
	BaseName        string
	NormalizedInput string
	Convention      convention.Convention
}

// Resolver resolves partial paths against a Context.
type Resolver struct {
	detector Detector
	home     HomeDirProvider
	logger   logger.Logger
}

// NewResolverParams contains parameters for creating a new Resolver.
type NewResolverParams struct {
	Detector *Detector
	Home     HomeDirProvider
	Logger   logger.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(params NewResolverParams) *Resolver {
	detector := NewDetector()
	if params.Detector != nil {
		detector = *params.Detector
	}
	l := params.Logger
	if l == nil {
		l = logger.NewNoopLogger()
	}

	return &Resolver{
		detector: detector,
		home:     params.Home,
		logger:   l,
	}
}

// Detector returns the convention detector used by the resolver.
func (r *Resolver) Detector() Detector {
	return r.detector
}

// Resolve resolves partial against c. It never fails: malformed input
// produces a best-effort join that address.ToResourceHandle rejects later.
func (r *Resolver) Resolve(partial string, c Context) ResolvedPath {
	conv := r.detector.Detect(c)
	sep := conv.Separator()

	normalized := partial
	if conv.IsWindows() {
		normalized = strings.ReplaceAll(normalized, "/", `\`)
	}

	expanded := normalized
	if r.canExpandHome(c) && strings.HasPrefix(expanded, "~"+string(sep)) {
		if home, ok := r.homeDir(conv); ok {
			expanded = strings.TrimRight(home, string(sep)) + string(sep) + expanded[2:]
		}
	}

	dirName, baseName := Split(expanded, sep)

	var fullDir string
	if conv.IsAbsolute(dirName) {
		fullDir = conv.Clean(dirName)
	} else {
		fullDir = conv.Join(r.baseDirectory(c, conv), dirName)
	}

	return ResolvedPath{
		FullPath:        conv.Join(fullDir, baseName),
		FullDirectory:   fullDir,
		DirectoryPart:   dirName,
		BaseName:        baseName,
		NormalizedInput: normalized,
		Convention:      conv,
	}
}

// canExpandHome refuses remote contexts: the remote home directory is unknown here.
func (r *Resolver) canExpandHome(c Context) bool {
	switch c.Handle.Scheme().Kind() {
	case resource.KindLocalFile:
		return true
	case resource.KindUnsavedBuffer:
		return !c.Remote
	case resource.KindRemoteFile, resource.KindOther:
		return false
	}
	return false
}

func (r *Resolver) homeDir(conv convention.Convention) (string, bool) {
	if r.home == nil {
		return "", false
	}
	home, err := r.home.GetHomeDir()
	if err != nil || home == "" {
		r.logger.Logf("cannot expand home directory: %v", err)
		return "", false
	}
	return conv.FromSlash(home), true
}

// baseDirectory is the directory containing the context resource, or a
// fallback when the resource has no location under conv.
func (r *Resolver) baseDirectory(c Context, conv convention.Convention) string {
	if !c.Handle.IsZero() && c.Handle.Scheme().Kind() != resource.KindUnsavedBuffer {
		own := address.PathStringFor(c.Handle, conv)
		if conv.IsAbsolute(own) {
			if dir, _ := Split(own, conv.Separator()); dir != "" {
				return dir
			}
		}
	}

	if wd := conv.FromSlash(c.WorkingDirectory); conv.IsAbsolute(wd) {
		return wd
	}
	if r.canExpandHome(c) {
		if home, ok := r.homeDir(conv); ok && conv.IsAbsolute(home) {
			return home
		}
	}
	return conv.Root()
}
