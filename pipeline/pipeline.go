package pipeline

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"kidreel/encode"
	"kidreel/render"
	"kidreel/script"
	"kidreel/timing"
	"kidreel/types"
)

// Pipeline runs one content record through normalize -> time -> render ->
// encode as a single blocking call. Jobs may run concurrently; each gets a
// uuid-namespaced scratch directory so overlapping jobs never share files.
type Pipeline struct {
	ScratchRoot string
	OutputDir   string
}

func New(scratchRoot, outputDir string) *Pipeline {
	return &Pipeline{ScratchRoot: scratchRoot, OutputDir: outputDir}
}

// Run executes the whole job and returns the finished video path. Any fatal
// failure surfaces as a single error; the tracker is updated along the way.
// No partial video is ever produced.
func (p *Pipeline) Run(content types.Content, tr *Tracker) (string, error) {
	jobID := uuid.NewString()
	scratch := filepath.Join(p.ScratchRoot, jobID)
	if err := os.MkdirAll(scratch, 0o755); err != nil {
		return "", fmt.Errorf("create scratch dir: %w", err)
	}
	if err := os.MkdirAll(p.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	tr.SetState(types.JobNormalizing)
	tr.AddLog("Normalizing script")
	blocks := script.Normalize(script.Parse(content.ScriptContent), content.Title)

	tr.SetState(types.JobTiming)
	frames := timing.AssignDurations(blocks)
	tr.AddLog(fmt.Sprintf("Planned %d frames, %ds of video", len(frames), timing.TotalSeconds(frames)))

	tr.SetState(types.JobRendering)
	tr.SetFrames(0, len(frames))
	renderer, err := render.NewRenderer(scratch)
	if err != nil {
		tr.SetError(err)
		return "", err
	}

	rendered := make([]render.RenderedFrame, 0, len(frames))
	for _, f := range frames {
		path, err := renderer.RenderFrame(f.Block, f.FrameIndex, content.Title, content.Subject, f.TotalFrames)
		if err != nil {
			err = fmt.Errorf("render frame %d: %w", f.FrameIndex, err)
			tr.SetError(err)
			return "", err
		}
		rendered = append(rendered, render.RenderedFrame{
			ImagePath:       path,
			FrameIndex:      f.FrameIndex,
			DurationSeconds: f.DurationSeconds,
		})
		tr.SetFrames(f.FrameIndex+1, f.TotalFrames)
	}
	log.Printf("Job %s: rendered %d frames", jobID, len(rendered))

	tr.SetState(types.JobEncoding)
	tr.AddLog("Encoding video")
	outputPath := filepath.Join(p.OutputDir, OutputFileName(content.Subject, content.Title))
	enc := &encode.Encoder{}
	finalPath, err := enc.Encode(rendered, scratch, outputPath)
	if err != nil {
		tr.SetError(err)
		return "", err
	}

	// scratch dir is empty after cleanup; removal failure is non-fatal
	if err := os.Remove(scratch); err != nil {
		log.Printf("Job %s: could not remove scratch dir: %v", jobID, err)
	}
	return finalPath, nil
}

var unsafeNameRe = regexp.MustCompile(`[^a-z0-9]+`)

// OutputFileName builds the {subject}_{sanitized-title}_{timestamp}.mp4
// artifact name.
func OutputFileName(subject, title string) string {
	return fmt.Sprintf("%s_%s_%d.mp4", sanitize(subject), sanitize(title), time.Now().Unix())
}

func sanitize(s string) string {
	s = unsafeNameRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return "untitled"
	}
	return s
}
