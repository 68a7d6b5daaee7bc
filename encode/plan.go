package encode

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"kidreel/render"
)

// ConcatEntry is one line pair of the encoder-facing concatenation plan.
// A zero DurationSeconds marks the trailing reference to the final image,
// which the concat grammar requires so the last frame is not dropped.
type ConcatEntry struct {
	ImagePath       string
	DurationSeconds int
}

// BuildConcatPlan expands timed frames into the concatenation plan: each
// image appears once per whole second of display (minimum one repetition),
// each tagged with a fixed 1-second unit, plus the trailing reference.
// Integer-second granularity is deliberate.
func BuildConcatPlan(frames []render.RenderedFrame) []ConcatEntry {
	var plan []ConcatEntry
	for _, f := range frames {
		reps := f.DurationSeconds
		if reps < 1 {
			reps = 1
		}
		for i := 0; i < reps; i++ {
			plan = append(plan, ConcatEntry{ImagePath: f.ImagePath, DurationSeconds: 1})
		}
	}
	if len(plan) > 0 {
		plan = append(plan, ConcatEntry{ImagePath: plan[len(plan)-1].ImagePath})
	}
	return plan
}

// WriteManifest persists the plan in ffmpeg concat-demuxer syntax.
func WriteManifest(plan []ConcatEntry, path string) error {
	var b strings.Builder
	for _, e := range plan {
		abs, err := filepath.Abs(e.ImagePath)
		if err != nil {
			abs = e.ImagePath
		}
		fmt.Fprintf(&b, "file '%s'\n", abs)
		if e.DurationSeconds > 0 {
			fmt.Fprintf(&b, "duration %d\n", e.DurationSeconds)
		}
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
