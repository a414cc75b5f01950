package component

import (
	"dungeoncore/internal/ecs"
	"dungeoncore/internal/gamemap"

	"github.com/zyedidia/generic/mapset"
)

const CViewshed ecs.ComponentType = 3

// Viewshed is what an entity can see from where it stands.
// When Dirty is false, VisibleTiles is exactly the field of view from the
// position it was last computed at.
type Viewshed struct {
	VisibleTiles mapset.Set[gamemap.Point]
	Range        int
	Dirty        bool
}

// NewViewshed returns an empty viewshed that needs computing.
func NewViewshed(rangeTiles int) Viewshed {
	return Viewshed{
		VisibleTiles: mapset.New[gamemap.Point](),
		Range:        rangeTiles,
		Dirty:        true,
	}
}

func (Viewshed) Type() ecs.ComponentType { return CViewshed }

// CanSee reports whether p was in view at the last recompute.
func (v Viewshed) CanSee(p gamemap.Point) bool {
	return v.VisibleTiles.Has(p)
}
