package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/titusjan/cmlib/pkg/cmap"
)

func testLibrary() *cmap.Library {
	lib := cmap.NewLibrary()
	for _, cm := range testMaps() {
		lib.Add(cm)
	}
	return lib
}

func TestView_RecomputesAfterToggle(t *testing.T) {
	lib := testLibrary()
	engine := NewEngine()
	view := NewView(lib, engine)

	assert.Len(t, view.Rows(), lib.Len())

	engine.SelectCatalog("CET")
	assert.Len(t, view.Rows(), 2, "toggling a clause invalidates the view")

	engine.SelectCatalog(All)
	assert.Len(t, view.Rows(), lib.Len())
}

func TestView_CachesBetweenReads(t *testing.T) {
	lib := testLibrary()
	engine := NewEngine()
	view := NewView(lib, engine)

	first := view.Rows()
	second := view.Rows()
	assert.Equal(t, len(first), len(second))
	if len(first) > 0 {
		assert.Same(t, first[0], second[0])
	}
}

func TestView_InvalidateAfterLibraryChange(t *testing.T) {
	lib := testLibrary()
	engine := NewEngine()
	view := NewView(lib, engine)

	before := len(view.Rows())
	lib.Add(testMap("CET", "isoluminant_cgo_70", cmap.CategorySequential))

	// Library mutations are not tracked automatically.
	assert.Len(t, view.Rows(), before)

	view.Invalidate()
	assert.Len(t, view.Rows(), before+1)
}
