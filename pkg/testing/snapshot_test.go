package testing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/pagecontrol/pkg/graphics"
	"github.com/go-drift/pagecontrol/pkg/pagecontrol"
)

func TestCaptureSnapshot_FrameStructure(t *testing.T) {
	tester := NewControlTesterWithT(t, 5)
	snap := tester.CaptureSnapshot()

	if snap.Frame == nil {
		t.Fatal("expected frame")
	}
	if got := len(snap.Frame.Layers); got != 5 {
		t.Fatalf("layers = %d, want 5", got)
	}
	first := snap.Frame.Layers[0]
	if first.ID != "indicator#0" || first.Shape != "rrect" {
		t.Errorf("first layer = %+v", first)
	}
	if first.Fill != "0xFFFFFFFF" {
		t.Errorf("selected fill = %s, want opaque white", first.Fill)
	}
	if first.Transform != nil || first.Image != nil {
		t.Errorf("plain indicator serialized extras: %+v", first)
	}
	if got := len(snap.DisplayOps); got != 15 {
		t.Errorf("display ops = %d, want 15", got)
	}
	if snap.DisplayOps[1].Op != "drawRRect" {
		t.Errorf("second op = %s, want drawRRect", snap.DisplayOps[1].Op)
	}
}

func TestCaptureSnapshot_HiddenDrawsNothing(t *testing.T) {
	tester := NewControlTesterWithT(t, 1)
	tester.Control.SetHidesForSinglePage(true)
	tester.Pump()

	snap := tester.CaptureSnapshot()
	if !snap.Frame.Hidden {
		t.Error("expected hidden frame")
	}
	if len(snap.DisplayOps) != 0 {
		t.Errorf("hidden frame painted %d ops", len(snap.DisplayOps))
	}
}

func TestCaptureSnapshot_Extras(t *testing.T) {
	tester := NewControlTesterWithT(t, 2)
	tester.Control.SetAlpha(0.5, pagecontrol.StateNormal)
	tester.Control.SetTransform(graphics.ScaleTransform(2, 2), pagecontrol.StateSelected)
	tester.Control.SetStrokeColor(graphics.RGBF(0, 0, 0, 1), pagecontrol.StateNormal)
	tester.Pump()

	snap := tester.CaptureSnapshot()
	if snap.Frame.Layers[0].Transform == nil {
		t.Error("selected transform not serialized")
	}
	normal := snap.Frame.Layers[1]
	if normal.Opacity != 0.5 || normal.Stroke != "0xFF000000" || normal.Fill != "" {
		t.Errorf("normal layer = %+v", normal)
	}

	var ops []string
	for _, op := range snap.DisplayOps {
		ops = append(ops, op.Op)
	}
	joined := strings.Join(ops, ",")
	if !strings.Contains(joined, "concat") || !strings.Contains(joined, "saveLayerAlpha") {
		t.Errorf("ops = %s", joined)
	}
}

func TestSnapshot_Diff(t *testing.T) {
	tester := NewControlTesterWithT(t, 3)
	a := tester.CaptureSnapshot()
	b := tester.CaptureSnapshot()
	if diff := a.Diff(b); diff != "" {
		t.Errorf("expected no diff for identical snapshots, got:\n%s", diff)
	}

	tester.Control.SetCurrentPage(2)
	tester.Pump()
	c := tester.CaptureSnapshot()
	diff := a.Diff(c)
	if diff == "" {
		t.Fatal("expected diff after page change")
	}
	if !strings.HasPrefix(diff, "--- expected\n+++ actual\n") {
		t.Errorf("diff header missing:\n%s", diff)
	}
}

func TestSnapshot_UpdateAndMatch(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	tester := NewControlTesterWithT(t, 4)
	snap := tester.CaptureSnapshot()

	path := filepath.Join(t.TempDir(), "testdata", "four.snapshot.json")
	if err := snap.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile failed: %v", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("snapshot file should exist after UpdateFile")
	}

	snap.MatchesFile(t, path)
}

func TestSnapshot_MatchesFile_MissingFile(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	snap := NewControlTesterWithT(t, 2).CaptureSnapshot()

	failed := false
	sub := &fatalRecorder{name: t.Name(), onFatal: func() { failed = true }}
	snap.MatchesFile(sub, filepath.Join(t.TempDir(), "missing.json"))

	if !failed {
		t.Error("expected MatchesFile to fail for missing file")
	}
}

func TestSnapshot_MatchesFile_Mismatch(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "")
	tester := NewControlTesterWithT(t, 3)
	path := filepath.Join(t.TempDir(), "snap.json")
	if err := tester.CaptureSnapshot().UpdateFile(path); err != nil {
		t.Fatal(err)
	}

	tester.Control.SetFillColor(graphics.RGBF(0, 0, 1, 1), pagecontrol.StateSelected)
	tester.Pump()

	errored := false
	sub := &errorRecorder{name: t.Name(), onError: func() { errored = true }}
	tester.CaptureSnapshot().MatchesFile(sub, path)

	if !errored {
		t.Error("expected MatchesFile to report error for mismatch")
	}
}

func TestSnapshot_UpdateMode(t *testing.T) {
	snap := NewControlTesterWithT(t, 2).CaptureSnapshot()
	path := filepath.Join(t.TempDir(), "update.snapshot.json")

	t.Setenv(UpdateSnapshotsEnv, "1")
	snap.MatchesFile(t, path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("snapshot file should be created in update mode")
	}
}

// fatalRecorder intercepts Fatalf calls for testing MatchesFile failures.
type fatalRecorder struct {
	name    string
	onFatal func()
}

func (r *fatalRecorder) Fatalf(format string, args ...any) { r.onFatal() }
func (r *fatalRecorder) Errorf(format string, args ...any) {}
func (r *fatalRecorder) Helper()                           {}
func (r *fatalRecorder) Name() string                      { return r.name }

// errorRecorder intercepts Errorf calls for testing MatchesFile mismatches.
type errorRecorder struct {
	name    string
	onError func()
}

func (r *errorRecorder) Fatalf(format string, args ...any) {}
func (r *errorRecorder) Errorf(format string, args ...any) { r.onError() }
func (r *errorRecorder) Helper()                           {}
func (r *errorRecorder) Name() string                      { return r.name }
