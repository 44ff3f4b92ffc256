package filter

import (
	"github.com/titusjan/cmlib/pkg/cmap"
)

// View is the filtered window onto a library. It caches the accepted rows
// and recomputes them lazily when the engine has been mutated since the
// last read.
type View struct {
	library *cmap.Library
	engine  *Engine

	rows     []*cmap.ColorMap
	revision uint64
	valid    bool
}

// NewView creates a view of the library driven by the given engine.
func NewView(library *cmap.Library, engine *Engine) *View {
	return &View{library: library, engine: engine}
}

// Engine returns the engine that decides row visibility.
func (v *View) Engine() *Engine {
	return v.engine
}

// Invalidate discards the cached row set. Needed after the library itself
// changed; engine mutations are detected automatically.
func (v *View) Invalidate() {
	v.valid = false
}

// Rows returns the accepted color maps in library order, recomputing the
// cached set if a filter clause was toggled since the previous call.
func (v *View) Rows() []*cmap.ColorMap {
	if !v.valid || v.revision != v.engine.Revision() {
		v.recompute()
	}
	return v.rows
}

func (v *View) recompute() {
	v.rows = v.rows[:0]
	for _, cm := range v.library.ColorMaps() {
		if v.engine.Accepts(cm) {
			v.rows = append(v.rows, cm)
		}
	}
	v.revision = v.engine.Revision()
	v.valid = true
}
