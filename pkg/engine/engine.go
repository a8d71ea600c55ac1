// Package engine drives the frame loop for a widget tree rendered to a
// text canvas.
package engine

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/go-drift/memodemo/pkg/core"
	"github.com/go-drift/memodemo/pkg/diagnostics"
	"github.com/go-drift/memodemo/pkg/errors"
	"github.com/go-drift/memodemo/pkg/graphics"
	"github.com/go-drift/memodemo/pkg/layout"
)

// Options configure an Engine.
type Options struct {
	// Width is the surface width in logical pixels.
	Width float64
	// Output receives every painted frame. Nil discards frames.
	Output io.Writer
	// Logger is injected into the tree with a diagnostics.Scope and used
	// for engine traces. Nil uses the process-wide logger.
	Logger *zap.Logger
	// Metrics measures text. Nil uses graphics.DefaultTextMetrics.
	Metrics *graphics.TextMetrics
}

// Engine owns one widget tree and produces frames for it.
//
// Frame, Tap and Run must be called from a single goroutine, the UI
// thread. Dispatch is safe from any goroutine.
type Engine struct {
	queueMu sync.Mutex
	queue   []func()
	wake    chan struct{}

	owner      *core.BuildOwner
	root       core.Element
	rootRender layout.RenderObject
	width      float64
	metrics    *graphics.TextMetrics
	out        io.Writer
	logger     *zap.Logger

	frames    int
	paints    int
	lastFrame string
	timings   *FrameTimingBuffer
}

// New mounts root and returns an engine ready to produce its first frame.
func New(root core.Widget, opts Options) *Engine {
	e := &Engine{
		wake:    make(chan struct{}, 1),
		owner:   core.NewBuildOwner(),
		width:   opts.Width,
		metrics: opts.Metrics,
		out:     opts.Output,
		logger:  opts.Logger,
		timings: NewFrameTimingBuffer(60),
	}
	if e.metrics == nil {
		e.metrics = graphics.DefaultTextMetrics()
	}
	if e.logger == nil {
		e.logger = diagnostics.L()
	}
	if e.width <= 0 {
		e.width = 60 * e.metrics.CellSize().Width
	}
	e.owner.OnNeedsFrame = e.requestFrame

	e.root = core.MountRoot(diagnostics.Scope{Logger: e.logger, Child: root}, e.owner)
	e.attachRootRender()
	return e
}

// Dispatch queues fn to run on the UI thread before the next frame.
func (e *Engine) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	e.queueMu.Lock()
	e.queue = append(e.queue, fn)
	e.queueMu.Unlock()
	e.requestFrame()
}

func (e *Engine) requestFrame() {
	select {
	case e.wake <- struct{}{}:
	default:
	}
}

func (e *Engine) drainDispatchQueue() []func() {
	e.queueMu.Lock()
	defer e.queueMu.Unlock()
	queue := e.queue
	e.queue = nil
	return queue
}

// attachRootRender picks up the tree's root render object and schedules a
// full pass when it changed.
func (e *Engine) attachRootRender() {
	ro := renderObjectOf(e.root)
	if ro == e.rootRender {
		return
	}
	e.rootRender = ro
	if ro != nil {
		pipeline := e.owner.Pipeline()
		pipeline.ScheduleLayout(ro)
		pipeline.SchedulePaint(ro)
	}
}

// Frame runs one frame: queued dispatches, build, layout and paint. A
// frame is written to the output only when paint ran. It reports whether
// a frame was painted.
func (e *Engine) Frame() (painted bool, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			panicErr := &errors.PanicError{
				Op:         "engine.Frame",
				Value:      r,
				StackTrace: errors.CaptureStack(),
			}
			errors.ReportPanic(panicErr)
			painted, err = false, panicErr
		}
	}()

	for _, fn := range e.drainDispatchQueue() {
		fn()
	}

	e.owner.FlushBuild()
	e.attachRootRender()
	e.frames++
	if e.rootRender == nil {
		return false, nil
	}

	pipeline := e.owner.Pipeline()
	pipeline.FlushLayoutForRoot(e.rootRender, layout.Constraints{MaxWidth: e.width})

	canvas := graphics.NewTextCanvas(graphics.Size{Width: e.width, Height: e.rootRender.Size().Height}, e.metrics)
	if !pipeline.FlushPaint(e.rootRender, &layout.PaintContext{Canvas: canvas, Metrics: e.metrics}) {
		return false, nil
	}
	e.paints++
	e.lastFrame = canvas.String()
	e.timings.Add(time.Since(start))
	e.logger.Debug("frame painted",
		zap.Int("frame", e.frames),
		zap.Duration("duration", time.Since(start)),
	)

	if e.out != nil {
		if _, err := fmt.Fprintf(e.out, "%s\n\n", e.lastFrame); err != nil {
			return true, &errors.DriftError{Op: "engine.Frame", Kind: errors.KindRender, Err: err}
		}
	}
	return true, nil
}

// Run produces frames until ctx is done or events is closed. Each event is
// applied on the loop goroutine and followed by a frame; dispatched work
// wakes the loop as well. Failed events are reported and do not stop the
// loop.
func (e *Engine) Run(ctx context.Context, events <-chan Event) error {
	if _, err := e.Frame(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				_, err := e.Frame()
				return err
			}
			if err := e.apply(ev); err != nil {
				errors.Report(&errors.DriftError{Op: "engine.Run", Kind: errors.KindEvent, Err: err})
			}
		case <-e.wake:
		}
		if _, err := e.Frame(); err != nil {
			return err
		}
	}
}

func (e *Engine) apply(ev Event) error {
	if ev.Do != nil {
		ev.Do()
	}
	if len(ev.Tap) > 0 {
		return e.Tap(ev.Tap...)
	}
	return nil
}

// Root returns the root element, the diagnostics scope around the
// mounted widget.
func (e *Engine) Root() core.Element {
	return e.root
}

// LastFrame returns the most recently painted frame.
func (e *Engine) LastFrame() string {
	return e.lastFrame
}

// Stats returns build statistics for the tree.
func (e *Engine) Stats() core.BuildStats {
	return e.owner.Stats()
}

// FrameStats summarises the frames produced so far.
type FrameStats struct {
	Frames  int
	Paints  int
	Average time.Duration
}

// FrameStats returns frame counters and the average painted frame time
// over the recent window.
func (e *Engine) FrameStats() FrameStats {
	return FrameStats{Frames: e.frames, Paints: e.paints, Average: e.timings.Average()}
}

// Close unmounts the tree, disposing every state.
func (e *Engine) Close() {
	if e.root != nil {
		e.root.Unmount()
		e.root = nil
		e.rootRender = nil
	}
}

func renderObjectOf(element core.Element) layout.RenderObject {
	if element == nil {
		return nil
	}
	if ro, ok := element.(interface{ RenderObject() layout.RenderObject }); ok {
		return ro.RenderObject()
	}
	return nil
}
