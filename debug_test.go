package arbor

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func captureDebug(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := debugOut
	debugOut = &buf
	t.Cleanup(func() { debugOut = old })
	return &buf
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestDebugModeLogsFrames(t *testing.T) {
	buf := captureDebug(t)
	ab := NewArtboard()
	addRectShape(ab, 0, 0, 0, 4, 4, 0xffffffff)
	ab.SetDebugMode(true)
	mustInit(t, ab)
	ab.Advance(0.016)
	ab.Draw(&Recorder{}, IdentityMat)

	out := buf.String()
	for _, want := range []string{"[arbor] elapsed: 0.0160s", "passes: 1", "drawn: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("debug output missing %q:\n%s", want, out)
		}
	}
}

func TestDebugModeOffIsQuiet(t *testing.T) {
	buf := captureDebug(t)
	ab := NewArtboard()
	addNode(ab, 0, 0, 0)
	mustInit(t, ab)
	ab.Advance(0.016)
	ab.Draw(&Recorder{}, IdentityMat)
	if buf.Len() != 0 {
		t.Errorf("debug output with debug mode off:\n%s", buf.String())
	}
}

func TestDebugWarnsDeepHierarchy(t *testing.T) {
	buf := captureDebug(t)
	ab := NewArtboard()
	parent := uint32(0)
	for range debugMaxTreeDepth + 2 {
		_, parent = addNode(ab, parent, 0, 0)
	}
	ab.SetDebugMode(true)
	mustInit(t, ab)
	if !strings.Contains(buf.String(), "tree depth") {
		t.Errorf("no depth warning:\n%s", buf.String())
	}
}

// tangled is a node that also depends on another component, which lets a
// test close a dependency cycle through its own child.
type tangled struct {
	Node
	also uint32
}

func (n *tangled) BuildDependencies() {
	n.Node.BuildDependencies()
	if o := AsComponent(n.artboard.Resolve(n.also)); o != nil {
		o.AddDependent(n.id)
	}
}

func TestDebugWarnsCycle(t *testing.T) {
	buf := captureDebug(t)
	ab := NewArtboard()
	a := &tangled{Node: Node{TransformComponent: newTransformComponent()}}
	aID := ab.AddObject(a)
	_, bID := addNode(ab, aID, 0, 0)
	a.also = bID
	ab.SetDebugMode(true)
	mustInit(t, ab)

	if !strings.Contains(buf.String(), "dependency cycles") {
		t.Errorf("no cycle warning:\n%s", buf.String())
	}
	if n := len(ab.DependencyOrder()); n != 1 {
		t.Errorf("len(DependencyOrder) = %d, want only the artboard", n)
	}
}

func TestLoggerReceivesLifecycle(t *testing.T) {
	buf := captureLog(t)
	ab := NewArtboard()
	ab.SetName("logged")
	mustInit(t, ab)
	out := buf.String()
	if !strings.Contains(out, "artboard initialized") || !strings.Contains(out, "logged") {
		t.Errorf("log output missing initialization:\n%s", out)
	}
}

func TestSetLoggerNilSilences(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}
