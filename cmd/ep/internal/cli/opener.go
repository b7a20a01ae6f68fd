package cli

import (
	"io"
	"os"

	"github.com/lerenn/edit-path/internal/base"
	"github.com/lerenn/edit-path/pkg/access"
	"github.com/lerenn/edit-path/pkg/config"
	"github.com/lerenn/edit-path/pkg/fs"
	"github.com/lerenn/edit-path/pkg/logger"
	"github.com/lerenn/edit-path/pkg/opener"
	"github.com/lerenn/edit-path/pkg/resolver"
	"github.com/lerenn/edit-path/pkg/resource"
	"github.com/rs/zerolog"
)

// NewLogger creates the zerolog-backed logger used by every component.
func NewLogger(cfg config.Config, out io.Writer) logger.Logger {
	level := cfg.Level()
	if Verbose {
		level = zerolog.DebugLevel
	}

	zl := zerolog.New(zerolog.ConsoleWriter{Out: out}).Level(level).With().Timestamp().Logger()
	return logger.NewZerologLogger(zl)
}

// NewAccessor creates the accessor serving local files from the host file system.
func NewAccessor(f fs.FS) access.Accessor {
	return access.NewRouter(map[resource.Kind]access.Accessor{
		resource.KindLocalFile: access.NewLocal(f),
	})
}

// NewOpener wires an Opener on the host file system.
func NewOpener(cfg config.Config) *opener.Opener {
	f := fs.NewFS()
	l := NewLogger(cfg, os.Stderr)

	return opener.NewOpener(base.NewBase(base.NewBaseParams{
		Accessor: NewAccessor(f),
		Resolver: resolver.NewResolver(resolver.NewResolverParams{
			Home:   f,
			Logger: l,
		}),
		Config:  &cfg,
		Logger:  l,
		Verbose: Verbose,
	}))
}
