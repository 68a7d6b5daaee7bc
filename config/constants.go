package config

// Video Output Constants
const (
	// VideoWidth is the output video width (16:9 landscape)
	VideoWidth = 1280

	// VideoHeight is the output video height (16:9 landscape)
	VideoHeight = 720

	// VideoCodec is the video encoding codec
	VideoCodec = "libx264"

	// VideoPreset is the ffmpeg encoding speed preset
	VideoPreset = "fast"

	// PixelFormat keeps the output playable on common playback stacks
	PixelFormat = "yuv420p"

	// MovFlags enables early-start playback on the MP4 container
	MovFlags = "+faststart"
)

// ScalePadFilter letterboxes any frame not already at the target resolution
// onto the canonical canvas, center-aligned with black padding.
const ScalePadFilter = "scale=1280:720:force_original_aspect_ratio=decrease," +
	"pad=1280:720:(ow-iw)/2:(oh-ih)/2:color=black"

// Frame Timing Constants (seconds per frame, by block kind)
const (
	OpeningDuration     = 6
	ConclusionDuration  = 6
	InteractiveDuration = 5
	SectionDuration     = 7
	RawDuration         = 5

	// ObjectDumpDuration applies to a raw block carrying a full
	// pretty-printed payload, which takes longer to read
	ObjectDumpDuration = 10

	// BonusCharsPerSecond grants one extra second of screen time per this
	// many characters of body text on content-bearing blocks
	BonusCharsPerSecond = 150

	// MaxLengthBonus caps the extra seconds so no single block dominates
	MaxLengthBonus = 5

	// MinFrameDuration is the floor for any frame
	MinFrameDuration = 1
)

// Directory Constants
const (
	// DefaultScratchDir holds per-job intermediate frames and manifests
	DefaultScratchDir = "scratch"

	// DefaultPublicDir is the web-servable root for finished videos
	DefaultPublicDir = "public"

	// VideosSubdir is the subdirectory of the public root holding MP4s
	VideosSubdir = "videos"
)
