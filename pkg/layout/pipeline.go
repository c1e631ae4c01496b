package layout

import (
	"github.com/go-drift/pagecontrol/pkg/errors"
)

// PendingUpdater is implemented by objects that defer recomputation until
// the next frame. ProcessPendingUpdates must be a harmless no-op when
// nothing is pending.
type PendingUpdater interface {
	ProcessPendingUpdates()
}

// PipelineOwner collects objects with pending updates and flushes them once
// per frame.
//
// Setters on a widget never recompute synchronously: they mark the widget
// dirty and schedule it here. Scheduling is deduplicated, so a burst of
// mutations costs one flush. The host drives Flush from its render-scheduling
// hook; OnNeedsFlush lets the host learn that a frame is wanted.
type PipelineOwner struct {
	dirty    []PendingUpdater        // processed in scheduling order
	dirtySet map[PendingUpdater]bool // O(1) dedup check
	flushing bool

	// OnNeedsFlush is called when the owner goes from clean to dirty.
	OnNeedsFlush func()
}

// Schedule queues object for the next Flush. Repeated calls before the
// flush are ignored.
func (p *PipelineOwner) Schedule(object PendingUpdater) {
	if object == nil {
		return
	}
	if p.dirtySet == nil {
		p.dirtySet = make(map[PendingUpdater]bool)
	}
	if p.dirtySet[object] {
		return
	}
	wasClean := len(p.dirty) == 0
	p.dirtySet[object] = true
	p.dirty = append(p.dirty, object)
	if wasClean && !p.flushing && p.OnNeedsFlush != nil {
		p.OnNeedsFlush()
	}
}

// NeedsFlush reports whether any object is waiting for a flush.
func (p *PipelineOwner) NeedsFlush() bool {
	return len(p.dirty) > 0
}

// Flush processes every scheduled object and returns how many were
// processed. Objects scheduled while flushing are processed in the same
// call. A panic in one object is reported and does not stop the others.
func (p *PipelineOwner) Flush() int {
	if p.flushing {
		return 0
	}
	p.flushing = true
	defer func() { p.flushing = false }()

	processed := 0
	for len(p.dirty) > 0 {
		batch := p.dirty
		p.dirty = nil
		for _, object := range batch {
			delete(p.dirtySet, object)
			processObject(object)
			processed++
		}
	}
	p.dirtySet = nil
	return processed
}

func processObject(object PendingUpdater) {
	defer errors.Recover("layout.Flush")
	object.ProcessPendingUpdates()
}
