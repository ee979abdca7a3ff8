package arbor

import "strings"

// ComponentDirt is a bitset of pending update reasons on a component.
type ComponentDirt uint16

const (
	DirtDependents ComponentDirt = 1 << iota
	DirtComponents                // set on the artboard when any component is dirty
	DirtDrawOrder                 // draw list must be rebuilt
	DirtPath                      // path geometry changed
	DirtVertices
	DirtTransform      // local transform inputs changed
	DirtWorldTransform // an ancestor's world transform changed
	DirtRenderOpacity
	DirtPaint
	DirtStops // gradient stops need re-sorting
)

// DirtNone is the clean state.
const DirtNone ComponentDirt = 0

var dirtNames = []string{
	"Dependents", "Components", "DrawOrder", "Path", "Vertices",
	"Transform", "WorldTransform", "RenderOpacity", "Paint", "Stops",
}

// Has reports whether every bit of flag is set.
func (d ComponentDirt) Has(flag ComponentDirt) bool { return d&flag == flag }

// Any reports whether at least one bit of flags is set.
func (d ComponentDirt) Any(flags ComponentDirt) bool { return d&flags != 0 }

func (d ComponentDirt) String() string {
	if d == DirtNone {
		return "None"
	}
	var parts []string
	for i, name := range dirtNames {
		if d&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}
