package encode

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"kidreel/config"
	"kidreel/render"
)

// Encoder drives the external ffmpeg process over a concatenation plan.
type Encoder struct{}

// Encode concatenates rendered frames into an MP4 at outputPath. On success
// every intermediate frame and the manifest are deleted (deletion errors are
// logged, not fatal). On encoder failure the intermediates are left in place
// for diagnosis and the error propagates.
func (e *Encoder) Encode(frames []render.RenderedFrame, scratchDir, outputPath string) (string, error) {
	if len(frames) == 0 {
		return "", errors.New("no frames to encode")
	}

	plan := BuildConcatPlan(frames)
	manifestPath := filepath.Join(scratchDir, "concat.txt")
	if err := WriteManifest(plan, manifestPath); err != nil {
		return "", fmt.Errorf("write concat manifest: %w", err)
	}

	log.Printf("Encoding %d frames (%d concat entries) -> %s", len(frames), len(plan), outputPath)

	err := ffmpeg.Input(manifestPath, ffmpeg.KwArgs{"f": "concat", "safe": "0"}).
		Output(outputPath, ffmpeg.KwArgs{
			"c:v":      config.VideoCodec,
			"pix_fmt":  config.PixelFormat,
			"preset":   config.VideoPreset,
			"vf":       config.ScalePadFilter,
			"movflags": config.MovFlags,
		}).
		OverWriteOutput().Run()
	if err != nil {
		// keep the frames and manifest around for inspection
		return "", fmt.Errorf("ffmpeg failed (intermediates kept in %s): %w", scratchDir, err)
	}

	cleanup(frames, manifestPath)
	return outputPath, nil
}

func cleanup(frames []render.RenderedFrame, manifestPath string) {
	for _, f := range frames {
		if err := os.Remove(f.ImagePath); err != nil {
			log.Printf("cleanup: failed to remove %s: %v", f.ImagePath, err)
		}
	}
	if err := os.Remove(manifestPath); err != nil {
		log.Printf("cleanup: failed to remove %s: %v", manifestPath, err)
	}
}
