// Package filter decides which color maps are visible in a browsable view.
//
// Two kinds of filter dimensions exist. Exclusive dimensions (catalog,
// category) hold at most one active selection; a row passes when its value
// equals the selection or the dimension is set to the All sentinel.
// Inclusive dimensions (quality flags, tags) hold a set of clauses that must
// all match; an empty clause set accepts every row. A row is visible only
// when all four dimensions accept it.
package filter

import (
	"fmt"

	"github.com/titusjan/cmlib/pkg/cmap"
)

// All is the sentinel selection that makes an exclusive dimension accept
// every row.
const All = "all"

// QualityAttr identifies a filterable boolean quality flag.
type QualityAttr string

const (
	AttrFavorite            QualityAttr = "favorite"
	AttrRecommended         QualityAttr = "recommended"
	AttrPerceptuallyUniform QualityAttr = "perceptually_uniform"
	AttrBlackWhiteFriendly  QualityAttr = "black_white_friendly"
	AttrColorBlindFriendly  QualityAttr = "color_blind_friendly"
	AttrIsoluminant         QualityAttr = "isoluminant"
)

// qualityPredicates maps every filterable attribute to an explicit accessor.
// A lookup table of closures avoids resolving attributes by name with
// reflection.
var qualityPredicates = map[QualityAttr]func(*cmap.CmMetaData) bool{
	AttrFavorite:            (*cmap.CmMetaData).IsFavorite,
	AttrRecommended:         func(md *cmap.CmMetaData) bool { return md.Recommended },
	AttrPerceptuallyUniform: func(md *cmap.CmMetaData) bool { return md.PerceptuallyUniform },
	AttrBlackWhiteFriendly:  func(md *cmap.CmMetaData) bool { return md.BlackWhiteFriendly },
	AttrColorBlindFriendly:  func(md *cmap.CmMetaData) bool { return md.ColorBlindFriendly },
	AttrIsoluminant:         func(md *cmap.CmMetaData) bool { return md.Isoluminant },
}

// QualityAttrs returns all filterable quality attributes in display order.
func QualityAttrs() []QualityAttr {
	return []QualityAttr{
		AttrFavorite, AttrRecommended, AttrPerceptuallyUniform,
		AttrBlackWhiteFriendly, AttrColorBlindFriendly, AttrIsoluminant,
	}
}

type qualityClause struct {
	attr QualityAttr
	want bool
}

// Engine holds the active filter clauses. Every mutation bumps a revision
// counter so that views can detect that their cached row set is stale.
//
// The engine is meant to be driven by single-threaded UI event handlers and
// does no locking.
type Engine struct {
	catalog  string
	category string
	quality  []qualityClause
	tags     []string
	revision uint64
}

// NewEngine creates an engine that accepts every row: both exclusive
// dimensions start at the All sentinel and no inclusive clauses are active.
func NewEngine() *Engine {
	return &Engine{catalog: All, category: All}
}

// Revision returns the current mutation counter.
func (e *Engine) Revision() uint64 {
	return e.revision
}

// Reset restores the initial accept-everything state.
func (e *Engine) Reset() {
	e.catalog = All
	e.category = All
	e.quality = nil
	e.tags = nil
	e.revision++
}

// SelectCatalog sets the exclusive catalog selection. Pass All to accept
// maps from every catalog.
func (e *Engine) SelectCatalog(key string) {
	e.catalog = key
	e.revision++
}

// Catalog returns the active catalog selection.
func (e *Engine) Catalog() string {
	return e.catalog
}

// SelectCategory sets the exclusive category selection by name. Pass All to
// accept maps of every category.
func (e *Engine) SelectCategory(name string) {
	e.category = name
	e.revision++
}

// Category returns the active category selection.
func (e *Engine) Category() string {
	return e.category
}

// ToggleQuality activates or deactivates the clause that requires the given
// attribute to have the given value. All active quality clauses must match
// for a row to pass (AND composition).
//
// Deactivating a clause that is not active is a programming error and
// panics, as does an unknown attribute.
func (e *Engine) ToggleQuality(attr QualityAttr, want bool, active bool) {
	if _, ok := qualityPredicates[attr]; !ok {
		panic(fmt.Sprintf("unknown quality attribute: %q", attr))
	}

	clause := qualityClause{attr: attr, want: want}
	if active {
		e.quality = append(e.quality, clause)
		e.revision++
		return
	}

	for i, c := range e.quality {
		if c == clause {
			e.quality = append(e.quality[:i], e.quality[i+1:]...)
			e.revision++
			return
		}
	}
	panic(fmt.Sprintf("quality clause not active: %s=%v", attr, want))
}

// ToggleTag activates or deactivates the clause that requires the given tag
// to be present. All active tag clauses must match (AND composition).
//
// Deactivating a tag that is not active is a programming error and panics.
func (e *Engine) ToggleTag(tag string, active bool) {
	if active {
		e.tags = append(e.tags, tag)
		e.revision++
		return
	}

	for i, t := range e.tags {
		if t == tag {
			e.tags = append(e.tags[:i], e.tags[i+1:]...)
			e.revision++
			return
		}
	}
	panic(fmt.Sprintf("tag clause not active: %q", tag))
}

// Accepts reports whether the color map passes all four filter dimensions.
func (e *Engine) Accepts(cm *cmap.ColorMap) bool {
	return e.acceptsCatalog(cm) &&
		e.acceptsCategory(cm) &&
		e.acceptsQuality(cm) &&
		e.acceptsTags(cm)
}

func (e *Engine) acceptsCatalog(cm *cmap.ColorMap) bool {
	return e.catalog == All || cm.CatalogMetaData().Key == e.catalog
}

func (e *Engine) acceptsCategory(cm *cmap.ColorMap) bool {
	return e.category == All || cm.MetaData().Category.String() == e.category
}

func (e *Engine) acceptsQuality(cm *cmap.ColorMap) bool {
	md := cm.MetaData()
	for _, c := range e.quality {
		if qualityPredicates[c.attr](md) != c.want {
			return false
		}
	}
	return true
}

func (e *Engine) acceptsTags(cm *cmap.ColorMap) bool {
	for _, tag := range e.tags {
		if !hasTag(cm.MetaData().Tags, tag) {
			return false
		}
	}
	return true
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
