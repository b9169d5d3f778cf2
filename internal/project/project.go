// Package project writes a generated Spring Boot skeleton to disk under a
// freshly numbered directory.
package project

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/thellimist/apigen/internal/apispec"
	"github.com/thellimist/apigen/internal/apperr"
	"github.com/thellimist/apigen/internal/codegen"
	"github.com/thellimist/apigen/internal/logx"
	"github.com/thellimist/apigen/internal/nameutil"
)

// DefaultMaxAttempts bounds how many serials Generate tries when another
// writer claims the resolved directory first.
const DefaultMaxAttempts = 16

// Result describes a generated project.
type Result struct {
	RunID     string   `json:"runId"`
	Path      string   `json:"path"`        // Absolute path of the project root
	Name      string   `json:"projectName"` // Directory name, base_serial
	Serial    int      `json:"serial"`
	Files     []string `json:"files"` // Written files, slash-separated, relative to Path
	Endpoints int      `json:"endpoints"`
	Warnings  []string `json:"warnings,omitempty"` // Spec lint findings; generation still succeeded
}

// Message is the human-readable summary printed by the CLI and returned by
// the API.
func (r *Result) Message() string {
	return "Generated project at: " + r.Path
}

// Generator creates projects under a root directory. It holds no mutable
// state of its own and is safe for concurrent use as long as its Reporter
// is too. The default reporter is.
type Generator struct {
	root        string
	lister      nameutil.DirLister
	reporter    Reporter
	maxAttempts int
	logger      *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithRoot sets the directory new projects are created in. Defaults to the
// working directory.
func WithRoot(dir string) Option {
	return func(g *Generator) {
		if dir != "" {
			g.root = dir
		}
	}
}

// WithLister replaces the directory listing used to resolve serials.
func WithLister(l nameutil.DirLister) Option {
	return func(g *Generator) {
		if l != nil {
			g.lister = l
		}
	}
}

// WithReporter receives progress as files are written. Concurrent Generate
// calls share r, so it must be safe for concurrent use or the Generator
// must be used by one goroutine at a time.
func WithReporter(r Reporter) Option {
	return func(g *Generator) {
		if r != nil {
			g.reporter = r
		}
	}
}

// WithMaxAttempts bounds the directory-creation retries.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithLogger sets the logger. Defaults to logx.Default().
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		root:        ".",
		lister:      nameutil.OSLister{},
		reporter:    nopReporter{},
		maxAttempts: DefaultMaxAttempts,
		logger:      logx.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate renders specs into a new project directory named after baseName
// and returns where it was written.
//
// An empty spec list or an unusable base name fails with
// apperr.ErrInvalidInput before anything touches disk. Directory and file
// failures abort immediately with apperr.ErrFilesystem and leave whatever
// was already written in place.
func (g *Generator) Generate(ctx context.Context, specs []apispec.EndpointSpec, baseName string) (*Result, error) {
	if len(specs) == 0 {
		return nil, apperr.InvalidInput("no API specs provided")
	}
	base := nameutil.NormalizeBase(baseName)
	if err := validateBase(base); err != nil {
		return nil, err
	}

	endpoints := apispec.Normalize(specs)
	warnings := apispec.Lint(specs)
	files, err := codegen.RenderAll(endpoints)
	if err != nil {
		return nil, err
	}

	root, err := filepath.Abs(g.root)
	if err != nil {
		return nil, apperr.Filesystem("resolve output directory", err)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, apperr.Filesystem("create output directory", err)
	}

	runID := uuid.NewString()
	log := g.logger.With("run_id", runID)

	name, serial, err := g.claimDir(ctx, log, root, base)
	if err != nil {
		return nil, err
	}
	projectDir := filepath.Join(root, name)
	log.Info("creating project", "project", name, "serial", serial, "endpoints", len(endpoints))

	result := &Result{
		RunID:     runID,
		Path:      projectDir,
		Name:      name,
		Serial:    serial,
		Endpoints: len(endpoints),
	}
	for _, w := range warnings {
		log.Warn("spec warning", "index", w.Index, "endpoint", w.Endpoint, "warning", w.Message)
		result.Warnings = append(result.Warnings, w.String())
	}

	g.reporter.Begin(len(files))
	defer g.reporter.Finish()

	for _, f := range files {
		if err := writeFile(filepath.Join(projectDir, filepath.FromSlash(f.Path)), f.Content); err != nil {
			log.Error("write failed", "file", f.Path, "error", err)
			return nil, apperr.Filesystem("write "+f.Path, err)
		}
		result.Files = append(result.Files, f.Path)
		g.reporter.Step(f.Path)
		log.Debug("wrote file", "file", f.Path, "bytes", len(f.Content))
	}

	log.Info("project generated", "path", projectDir, "files", len(result.Files))
	return result, nil
}

// claimDir resolves the next serial and creates that directory exclusively.
// If another writer got there first, the listing is re-read and the next
// serial tried.
func (g *Generator) claimDir(ctx context.Context, log *slog.Logger, root, base string) (string, int, error) {
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", 0, err
		}

		existing, err := g.lister.List(root)
		if err != nil {
			return "", 0, apperr.Filesystem("list "+root, err)
		}
		serial := nameutil.MaxSerial(base, existing) + 1
		name := nameutil.ProjectName(base, serial)

		err = os.Mkdir(filepath.Join(root, name), 0o755)
		if err == nil {
			return name, serial, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", 0, apperr.Filesystem("create project directory", err)
		}
		log.Debug("project directory taken, rescanning", "project", name, "attempt", attempt)
	}
	return "", 0, apperr.Filesystem("create project directory",
		fmt.Errorf("no free serial for %q after %d attempts", base, g.maxAttempts))
}

func validateBase(base string) error {
	if base == "." || base == ".." || strings.ContainsAny(base, `/\`+"\x00") {
		return apperr.InvalidInput("base name %q must be a single directory name", base)
	}
	return nil
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
