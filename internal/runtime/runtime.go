package runtime

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/risor-io/risor"
	"github.com/risor-io/risor/importer"
	"github.com/risor-io/risor/object"
)

// Runtime embeds a Risor VM and exposes shape construction, parsing and
// comparison to scripts.
type Runtime struct {
	logger *slog.Logger
	fsys   fs.FS
}

// RuntimeOption configures a Runtime.
type RuntimeOption func(*Runtime)

// WithRuntimeFS lets scripts import .risor modules from fsys.
func WithRuntimeFS(fsys fs.FS) RuntimeOption {
	return func(r *Runtime) {
		r.fsys = fsys
	}
}

// WithLogger routes the script "log" global to logger.
func WithLogger(logger *slog.Logger) RuntimeOption {
	return func(r *Runtime) {
		r.logger = logger
	}
}

// NewRuntime creates a Runtime. Without WithLogger, slog.Default is used.
func NewRuntime(opts ...RuntimeOption) *Runtime {
	r := &Runtime{}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Eval executes Risor source with the shape globals plus any extra globals
// and returns the value of the final expression.
func (r *Runtime) Eval(ctx context.Context, source string, extraGlobals map[string]any) (object.Object, error) {
	globals := r.buildGlobals(extraGlobals)

	var opts []risor.Option
	for name, val := range globals {
		opts = append(opts, risor.WithGlobal(name, val))
	}

	if imp := r.buildImporter(globals); imp != nil {
		opts = append(opts, risor.WithImporter(imp))
	}

	r.logger.Debug("evaluating script", "bytes", len(source), "globals", len(globals))
	result, err := risor.Eval(ctx, source, opts...)
	if err != nil {
		return nil, fmt.Errorf("runtime: eval: %w", err)
	}
	return result, nil
}

// buildImporter returns an importer over the configured fs.FS, or nil when
// none is set. Global names are passed through so imported modules can use
// the shape globals too.
func (r *Runtime) buildImporter(globals map[string]any) importer.Importer {
	if r.fsys == nil {
		return nil
	}
	globalNames := make([]string, 0, len(globals))
	for name := range globals {
		globalNames = append(globalNames, name)
	}
	return importer.NewFSImporter(importer.FSImporterOptions{
		GlobalNames: globalNames,
		SourceFS:    r.fsys,
		Extensions:  []string{".risor"},
	})
}

// buildGlobals constructs the full set of globals exposed to scripts.
func (r *Runtime) buildGlobals(extra map[string]any) map[string]any {
	globals := map[string]any{
		"rect":      makeRectFn(),
		"circle":    makeCircleFn(),
		"triangle":  makeTriangleFn(),
		"parse":     makeParseFn(),
		"area":      makeMeasureFn("area"),
		"perimeter": makeMeasureFn("perimeter"),
		"metric":    makeMetricFn(),
		"compare":   makeCompareFn(),
		"equal":     makeEqualFn(),
		"log":       mustProxy(&logObject{logger: r.logger}),
	}
	for k, v := range extra {
		globals[k] = v
	}
	return globals
}

func mustProxy(v any) object.Object {
	p, err := object.NewProxy(v)
	if err != nil {
		panic(fmt.Sprintf("runtime: proxy error: %v", err))
	}
	return p
}

// logObject provides log.Info/Warn/Error methods for scripts.
type logObject struct {
	logger *slog.Logger
}

func (l *logObject) Info(msg string) {
	l.logger.Info(msg, "source", "script")
}

func (l *logObject) Warn(msg string) {
	l.logger.Warn(msg, "source", "script")
}

func (l *logObject) Error(msg string) {
	l.logger.Error(msg, "source", "script")
}
