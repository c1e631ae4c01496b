package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/pagecontrol/pkg/graphics"
	"github.com/go-drift/pagecontrol/pkg/rendering"
)

// UpdateSnapshotsEnv names the environment variable that switches
// MatchesFile to rewriting golden files.
const UpdateSnapshotsEnv = "PAGECONTROL_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures a committed surface frame and the canvas operations it
// paints.
type Snapshot struct {
	Frame      *FrameNode  `json:"frame"`
	DisplayOps []DisplayOp `json:"displayOps,omitempty"`
}

// FrameNode is a serialized rendering.Frame.
type FrameNode struct {
	Bounds [4]float64  `json:"bounds"`
	Hidden bool        `json:"hidden,omitempty"`
	Layers []LayerNode `json:"layers,omitempty"`
}

// LayerNode is a serialized layer state.
type LayerNode struct {
	ID        string      `json:"id"`
	Frame     [4]float64  `json:"frame"`
	Shape     string      `json:"shape"`
	Fill      string      `json:"fill,omitempty"`
	Stroke    string      `json:"stroke,omitempty"`
	Opacity   float64     `json:"opacity"`
	Transform *[6]float64 `json:"transform,omitempty"`
	Image     *[2]float64 `json:"image,omitempty"`
}

// CaptureSurface captures the last frame committed to s, and the canvas
// operations that paint it.
func CaptureSurface(s *rendering.Surface) *Snapshot {
	frame := s.Snapshot()
	node := &FrameNode{
		Bounds: serializeRect(frame.Bounds),
		Hidden: frame.Hidden,
	}
	for i, l := range frame.Layers {
		node.Layers = append(node.Layers, captureLayer(i, l))
	}

	recorder := &graphics.PictureRecorder{}
	canvas := recorder.BeginRecording(frame.Bounds.Size())
	rendering.PaintFrame(canvas, frame)
	return &Snapshot{
		Frame:      node,
		DisplayOps: serializeDisplayList(recorder.EndRecording()),
	}
}

// CaptureSnapshot captures the control's surface.
func (t *ControlTester) CaptureSnapshot() *Snapshot {
	return CaptureSurface(t.Control.Surface())
}

func captureLayer(index int, l rendering.LayerState) LayerNode {
	node := LayerNode{
		ID:      fmt.Sprintf("indicator#%d", index),
		Frame:   serializeRect(l.Frame),
		Shape:   l.Shape.Kind.String(),
		Fill:    serializeColorF(l.Fill),
		Stroke:  serializeColorF(l.Stroke),
		Opacity: round2(l.Opacity),
	}
	if !l.Transform.IsIdentity() {
		m := serializeTransform(l.Transform)
		node.Transform = &m
	}
	if l.Image != nil {
		size := graphics.ImageSize(l.Image)
		node.Image = &[2]float64{size.Width, size.Height}
	}
	return node
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// PAGECONTROL_UPDATE_SNAPSHOTS=1 is set, the file is silently updated
// instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other. Returns
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i := range max(len(expectedLines), len(actualLines)) {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e == a {
			continue
		}
		if i < len(expectedLines) {
			fmt.Fprintf(&buf, "-%s\n", e)
		}
		if i < len(actualLines) {
			fmt.Fprintf(&buf, "+%s\n", a)
		}
	}

	return buf.String()
}
