package arbor

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugStats holds per-frame timing and update metrics.
// Only populated when Artboard.debug is true.
type debugStats struct {
	advanceTime    time.Duration
	updateTime     time.Duration
	sortTime       time.Duration
	drawTime       time.Duration
	elapsed        float32
	passes         int
	updated        int
	drawablesDrawn int
}

// debugOut is where debug mode writes. Tests redirect it.
var debugOut io.Writer = os.Stderr

// SetDebugMode enables or disables debug mode. When enabled, per-frame
// timing and counters are printed to stderr after every Draw and deep or
// cyclic hierarchies are reported at Initialize.
func (ab *Artboard) SetDebugMode(enabled bool) {
	ab.debug = enabled
}

// DebugMode reports whether debug mode is on.
func (ab *Artboard) DebugMode() bool { return ab.debug }

// debugLog prints timing and update stats and resets them for the next frame.
func (ab *Artboard) debugLog() {
	if !ab.debug {
		return
	}
	s := ab.frame
	_, _ = fmt.Fprintf(debugOut,
		"[arbor] elapsed: %.4fs | advance: %v | update: %v | sort: %v | draw: %v\n",
		s.elapsed, s.advanceTime, s.updateTime, s.sortTime, s.drawTime)
	_, _ = fmt.Fprintf(debugOut,
		"[arbor] passes: %d | updated: %d | drawn: %d\n",
		s.passes, s.updated, s.drawablesDrawn)
	ab.frame = debugStats{}
}

// debugMaxTreeDepth is the ancestor count above which Initialize warns.
const debugMaxTreeDepth = 32

// debugCheckHierarchy warns about components nested deeper than
// debugMaxTreeDepth and about components the dependency sort left out.
func (ab *Artboard) debugCheckHierarchy() {
	if !ab.debug {
		return
	}
	for id, o := range ab.objects {
		c := AsComponent(o)
		if c == nil {
			continue
		}
		if depth := len(c.Parents()); depth > debugMaxTreeDepth {
			_, _ = fmt.Fprintf(debugOut, "[arbor] warning: tree depth %d exceeds %d (%s #%d %q)\n",
				depth, debugMaxTreeDepth, TypeName(o), id, c.name)
		}
	}
	if u := ab.sorter.Unsorted(); len(u) > 0 {
		_, _ = fmt.Fprintf(debugOut, "[arbor] warning: %d components on dependency cycles: %v\n", len(u), u)
	}
}
