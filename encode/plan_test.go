package encode

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kidreel/render"
)

func TestBuildConcatPlan(t *testing.T) {
	frames := []render.RenderedFrame{
		{ImagePath: "a.png", FrameIndex: 0, DurationSeconds: 3},
		{ImagePath: "b.png", FrameIndex: 1, DurationSeconds: 1},
		{ImagePath: "c.png", FrameIndex: 2, DurationSeconds: 2},
	}

	plan := BuildConcatPlan(frames)

	// sum of durations plus the trailing reference
	if len(plan) != 3+1+2+1 {
		t.Fatalf("plan length = %d; want %d", len(plan), 7)
	}

	for i, e := range plan[:len(plan)-1] {
		if e.DurationSeconds != 1 {
			t.Fatalf("entry %d duration = %d; want 1", i, e.DurationSeconds)
		}
	}

	// trailing entry references the last image with no duration
	last := plan[len(plan)-1]
	if last.ImagePath != "c.png" || last.DurationSeconds != 0 {
		t.Fatalf("trailing entry = %+v; want c.png with zero duration", last)
	}

	if plan[0].ImagePath != "a.png" || plan[3].ImagePath != "b.png" || plan[4].ImagePath != "c.png" {
		t.Fatalf("plan order wrong: %+v", plan)
	}
}

func TestBuildConcatPlanMinimumRepetition(t *testing.T) {
	frames := []render.RenderedFrame{{ImagePath: "a.png", DurationSeconds: 0}}
	plan := BuildConcatPlan(frames)
	// one repetition plus the trailing reference
	if len(plan) != 2 {
		t.Fatalf("plan length = %d; want 2", len(plan))
	}
}

func TestBuildConcatPlanEmpty(t *testing.T) {
	if plan := BuildConcatPlan(nil); len(plan) != 0 {
		t.Fatalf("plan = %+v; want empty", plan)
	}
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "frame_0000.png")

	plan := BuildConcatPlan([]render.RenderedFrame{
		{ImagePath: img, DurationSeconds: 2},
	})

	manifest := filepath.Join(dir, "concat.txt")
	if err := WriteManifest(plan, manifest); err != nil {
		t.Fatalf("WriteManifest error: %v", err)
	}

	data, err := os.ReadFile(manifest)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")

	// two repetitions with durations, then the bare trailing reference
	want := []string{
		"file '" + img + "'",
		"duration 1",
		"file '" + img + "'",
		"duration 1",
		"file '" + img + "'",
	}
	if len(lines) != len(want) {
		t.Fatalf("manifest has %d lines; want %d:\n%s", len(lines), len(want), string(data))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q; want %q", i, lines[i], want[i])
		}
	}
}
