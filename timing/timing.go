package timing

import (
	"unicode/utf8"

	"kidreel/config"
	"kidreel/script"
)

// TimedFrame is one block annotated with its frame index and display
// duration. TotalFrames is the same on every element of a sequence and is
// used only for progress-fraction computation, never for timing math.
type TimedFrame struct {
	Block           script.TextBlock `json:"block"`
	FrameIndex      int              `json:"frame_index"`
	DurationSeconds int              `json:"duration_seconds"`
	TotalFrames     int              `json:"total_frames"`
}

// AssignDurations annotates each block with a display duration and a dense
// 0-based frame index in enumeration order.
func AssignDurations(blocks []script.TextBlock) []TimedFrame {
	frames := make([]TimedFrame, 0, len(blocks))
	for i, b := range blocks {
		frames = append(frames, TimedFrame{
			Block:           b,
			FrameIndex:      i,
			DurationSeconds: blockDuration(b),
			TotalFrames:     len(blocks),
		})
	}
	return frames
}

func blockDuration(b script.TextBlock) int {
	var d int
	switch b.Kind {
	case script.KindOpening:
		d = config.OpeningDuration
	case script.KindConclusion:
		d = config.ConclusionDuration
	case script.KindInteractive:
		d = config.InteractiveDuration
	case script.KindSection, script.KindSimple, script.KindContent:
		d = config.SectionDuration + lengthBonus(b.DisplayText)
	case script.KindRaw:
		if b.ObjectDump {
			d = config.ObjectDumpDuration
		} else {
			d = config.RawDuration
		}
	default:
		d = config.RawDuration
	}
	if d < config.MinFrameDuration {
		d = config.MinFrameDuration
	}
	return d
}

// lengthBonus grants longer content-bearing blocks proportionally more screen
// time, capped so one block cannot dominate the runtime. Length is the rune
// count of the markup-stripped text.
func lengthBonus(displayText string) int {
	n := utf8.RuneCountInString(script.StripTags(displayText))
	bonus := n / config.BonusCharsPerSecond
	if bonus > config.MaxLengthBonus {
		bonus = config.MaxLengthBonus
	}
	return bonus
}

// TotalSeconds returns the summed display duration of a sequence.
func TotalSeconds(frames []TimedFrame) int {
	total := 0
	for _, f := range frames {
		total += f.DurationSeconds
	}
	return total
}
