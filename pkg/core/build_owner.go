package core

import (
	"maps"
	"slices"
	"sync"

	"github.com/go-drift/memodemo/pkg/layout"
)

// BuildStats counts builds and memo skips per widget, keyed by WidgetName.
type BuildStats struct {
	Builds map[string]int
	Skips  map[string]int
}

// BuildOwner tracks dirty elements that need rebuilding.
type BuildOwner struct {
	dirty    []Element
	dirtySet map[Element]bool
	pipeline *layout.PipelineOwner
	builds   map[string]int
	skips    map[string]int
	mu       sync.Mutex

	// OnNeedsFrame is called when a new element is scheduled for rebuild,
	// signalling the engine that a frame should be produced.
	OnNeedsFrame func()
}

// NewBuildOwner creates a new BuildOwner.
func NewBuildOwner() *BuildOwner {
	return &BuildOwner{
		pipeline: &layout.PipelineOwner{},
		builds:   make(map[string]int),
		skips:    make(map[string]int),
	}
}

// Pipeline returns the PipelineOwner for render object scheduling.
func (b *BuildOwner) Pipeline() *layout.PipelineOwner {
	return b.pipeline
}

// ScheduleBuild marks an element as needing rebuild.
func (b *BuildOwner) ScheduleBuild(element Element) {
	added := func() bool {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.dirtySet[element] {
			return false
		}
		if b.dirtySet == nil {
			b.dirtySet = make(map[Element]bool)
		}
		b.dirtySet[element] = true
		b.dirty = append(b.dirty, element)
		return true
	}()

	if added && b.OnNeedsFrame != nil {
		b.OnNeedsFrame()
	}
}

// NeedsWork returns true if there are dirty elements or pending layout/paint.
func (b *BuildOwner) NeedsWork() bool {
	b.mu.Lock()
	hasDirty := len(b.dirty) > 0
	b.mu.Unlock()
	if hasDirty {
		return true
	}
	return b.pipeline.NeedsLayout() || b.pipeline.NeedsPaint()
}

// FlushBuild rebuilds all dirty elements in depth order. Elements dirtied
// while flushing are picked up by the next round.
func (b *BuildOwner) FlushBuild() {
	for {
		b.mu.Lock()
		if len(b.dirty) == 0 {
			b.mu.Unlock()
			return
		}

		slices.SortFunc(b.dirty, func(a, b Element) int {
			return a.Depth() - b.Depth()
		})

		dirty := b.dirty
		b.dirty = nil
		clear(b.dirtySet)
		b.mu.Unlock()

		for _, element := range dirty {
			if mountable, ok := element.(interface{ isMounted() bool }); ok && !mountable.isMounted() {
				continue
			}
			element.RebuildIfNeeded()
		}
	}
}

func (b *BuildOwner) recordBuild(w Widget) {
	b.mu.Lock()
	b.builds[WidgetName(w)]++
	b.mu.Unlock()
}

func (b *BuildOwner) recordSkip(w Widget) {
	b.mu.Lock()
	b.skips[WidgetName(w)]++
	b.mu.Unlock()
}

// Stats returns a copy of the build counters.
func (b *BuildOwner) Stats() BuildStats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return BuildStats{
		Builds: maps.Clone(b.builds),
		Skips:  maps.Clone(b.skips),
	}
}

// ResetStats zeroes the build counters.
func (b *BuildOwner) ResetStats() {
	b.mu.Lock()
	defer b.mu.Unlock()
	clear(b.builds)
	clear(b.skips)
}
