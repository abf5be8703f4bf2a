package filter

import (
	"log/slog"

	"github.com/gogpu/paintkit"
	"github.com/gogpu/paintkit/internal/parallel"
)

// Engine applies filters with a reusable snapshot buffer, optionally
// splitting each sweep into row bands run on a worker pool.
//
// Results are identical to [Apply]: every band reads the same frozen
// snapshot and writes a disjoint set of rows.
//
// An Engine must not be used from several goroutines at once.
type Engine struct {
	pool     *parallel.WorkerPool
	bands    int
	snapshot *paintkit.Raster
	logger   *slog.Logger
}

// Option configures an Engine during creation.
type Option func(*engineOptions)

type engineOptions struct {
	workers int
	logger  *slog.Logger
}

// WithWorkers sets the number of sweep goroutines.
// Values <= 1 sweep on the calling goroutine; that is the default.
func WithWorkers(n int) Option {
	return func(o *engineOptions) {
		o.workers = n
	}
}

// WithLogger sets the engine logger. The default is paintkit.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(o *engineOptions) {
		o.logger = l
	}
}

// NewEngine creates a filter engine.
//
// Example:
//
//	e := filter.NewEngine(filter.WithWorkers(runtime.GOMAXPROCS(0)))
//	defer e.Close()
//	e.Run(canvas, filter.PresetBlur5Emboss)
func NewEngine(opts ...Option) *Engine {
	o := engineOptions{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = paintkit.Logger()
	}

	e := &Engine{bands: 1, logger: o.logger}
	if o.workers > 1 {
		e.pool = parallel.NewWorkerPool(o.workers)
		// A few bands per worker keeps everyone busy when rows cost differently.
		e.bands = o.workers * 4
	}
	return e
}

// Workers returns the number of sweep goroutines (1 when sequential).
func (e *Engine) Workers() int {
	if e.pool == nil {
		return 1
	}
	return e.pool.Workers()
}

// Apply runs filter f over r in place. Undefined filters are a no-op.
func (e *Engine) Apply(r *paintkit.Raster, f Filter) {
	k, ok := f.Kernel()
	if !ok {
		e.logger.Debug("filter: ignoring undefined filter", "filter", uint8(f))
		return
	}
	if !hasInterior(r) {
		return
	}
	e.takeSnapshot(r)
	e.sweep(r, e.snapshot, k)
	e.logger.Debug("filter applied", "filter", f.String(),
		"width", r.Width(), "height", r.Height(), "workers", e.Workers())
}

// Convolve is the engine counterpart of the package-level [Convolve].
func (e *Engine) Convolve(dst, src *paintkit.Raster, k Kernel) {
	if !sameSize(dst, src) {
		e.logger.Warn("filter: raster size mismatch",
			"dst", [2]int{dst.Width(), dst.Height()},
			"src", [2]int{src.Width(), src.Height()})
		return
	}
	if dst == src {
		e.takeSnapshot(src)
		src = e.snapshot
	}
	e.sweep(dst, src, k)
}

// Run applies every pass of preset p to r.
func (e *Engine) Run(r *paintkit.Raster, p Preset) {
	for _, f := range p.Passes() {
		e.Apply(r, f)
	}
}

// Close stops the engine's workers. The engine keeps working sequentially
// after Close.
func (e *Engine) Close() {
	if e.pool != nil {
		e.pool.Close()
	}
}

// takeSnapshot copies r into the reusable snapshot buffer.
func (e *Engine) takeSnapshot(r *paintkit.Raster) {
	if e.snapshot == nil || !e.snapshot.CopyFrom(r) {
		e.snapshot = r.Clone()
	}
}

func (e *Engine) sweep(dst, src *paintkit.Raster, k Kernel) {
	if e.pool == nil {
		convolveRows(dst, src, k, 0, src.Height())
		return
	}
	bands := parallel.SplitBands(1, src.Height()-1, e.bands)
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() {
			convolveRows(dst, src, k, b.Start, b.End)
		}
	}
	e.pool.ExecuteAll(work)
}
