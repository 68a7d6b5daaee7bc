package render

import (
	"fmt"
	"math/rand"
	"path/filepath"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"kidreel/config"
	"kidreel/script"
)

// RenderedFrame is one rasterized frame awaiting encoding.
type RenderedFrame struct {
	ImagePath       string `json:"image_path"`
	FrameIndex      int    `json:"frame_index"`
	DurationSeconds int    `json:"duration_seconds"`
}

// Renderer rasterizes text blocks into still frames inside one job's
// scratch directory. Apart from decorative background shapes, output is a
// pure function of the inputs.
type Renderer struct {
	dir    string
	width  int
	height int

	titleFace   font.Face
	headingFace font.Face
	bodyFace    font.Face
	smallFace   font.Face
}

// NewRenderer prepares font faces and targets the given scratch directory.
func NewRenderer(dir string) (*Renderer, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}

	face := func(f *opentype.Font, size float64) (font.Face, error) {
		return opentype.NewFace(f, &opentype.FaceOptions{
			Size: size, DPI: 72, Hinting: font.HintingFull,
		})
	}

	r := &Renderer{dir: dir, width: config.VideoWidth, height: config.VideoHeight}
	if r.titleFace, err = face(bold, 52); err != nil {
		return nil, err
	}
	if r.headingFace, err = face(bold, 36); err != nil {
		return nil, err
	}
	if r.bodyFace, err = face(regular, 28); err != nil {
		return nil, err
	}
	if r.smallFace, err = face(regular, 20); err != nil {
		return nil, err
	}
	return r, nil
}

// RenderFrame rasterizes one block into a frame-number-padded PNG and
// returns its path. A drawing or write failure propagates: a missing frame
// would desynchronize the concatenation plan.
func (r *Renderer) RenderFrame(block script.TextBlock, frameIndex int, title, subject string, totalFrames int) (string, error) {
	theme := ThemeFor(subject)
	dc := gg.NewContext(r.width, r.height)

	switch block.Kind {
	case script.KindOpening, script.KindConclusion:
		r.drawFullBleed(dc, theme, block, title)
	case script.KindInteractive:
		r.drawCallout(dc, theme, block)
	default:
		r.drawContentPanel(dc, theme, block)
	}

	r.drawProgress(dc, theme, frameIndex, totalFrames)

	path := filepath.Join(r.dir, fmt.Sprintf("frame_%04d.png", frameIndex))
	if err := dc.SavePNG(path); err != nil {
		return "", fmt.Errorf("write frame %d: %w", frameIndex, err)
	}
	return path, nil
}

// drawFullBleed renders opening and conclusion frames: a full accent
// background, decorative icon badge, label, and the block text centered.
func (r *Renderer) drawFullBleed(dc *gg.Context, theme Theme, block script.TextBlock, title string) {
	w, h := float64(r.width), float64(r.height)

	dc.SetHexColor(theme.Primary)
	dc.Clear()
	r.drawPattern(dc, theme, theme.Secondary)

	// icon badge
	dc.SetHexColor(theme.Secondary)
	dc.DrawCircle(w/2, 150, 56)
	dc.Fill()
	dc.SetHexColor("#FFFFFF")
	dc.SetFontFace(r.titleFace)
	dc.DrawStringAnchored(theme.Icon, w/2, 150, 0.5, 0.5)

	label := "Introduction"
	if block.Kind == script.KindConclusion {
		label = "Wrap-Up"
	}
	dc.SetFontFace(r.smallFace)
	dc.DrawStringAnchored(label, w/2, 236, 0.5, 0.5)

	dc.SetFontFace(r.titleFace)
	dc.DrawStringAnchored(title, w/2, 310, 0.5, 0.5)

	_, body := script.SplitHeading(block.DisplayText)
	dc.SetFontFace(r.bodyFace)
	r.drawWrapped(dc, body, 200, 380, w-400, h-480, "#FFFFFF")
}

// drawCallout renders interactive blocks with an emphasized band.
func (r *Renderer) drawCallout(dc *gg.Context, theme Theme, block script.TextBlock) {
	w, h := float64(r.width), float64(r.height)

	dc.SetHexColor(theme.Background)
	dc.Clear()
	r.drawPattern(dc, theme, theme.Secondary)

	bandY, bandH := 160.0, h-320.0
	dc.SetHexColor(theme.Secondary)
	dc.DrawRoundedRectangle(80, bandY, w-160, bandH, 24)
	dc.Fill()
	dc.SetHexColor(theme.Primary)
	dc.DrawRoundedRectangle(80, bandY, w-160, 72, 24)
	dc.Fill()

	dc.SetHexColor("#FFFFFF")
	dc.SetFontFace(r.headingFace)
	dc.DrawStringAnchored("Try This!", w/2, bandY+36, 0.5, 0.5)

	_, body := script.SplitHeading(block.DisplayText)
	dc.SetFontFace(r.bodyFace)
	r.drawWrapped(dc, body, 130, bandY+110, w-260, bandH-150, "#FFFFFF")
}

// drawContentPanel renders the standard layout shared by section, simple,
// content and raw blocks: a white panel with an optional accent heading.
func (r *Renderer) drawContentPanel(dc *gg.Context, theme Theme, block script.TextBlock) {
	w, h := float64(r.width), float64(r.height)

	dc.SetHexColor(theme.Background)
	dc.Clear()
	r.drawPattern(dc, theme, theme.Secondary)

	panelX, panelY := 70.0, 60.0
	panelW, panelH := w-140.0, h-170.0
	dc.SetHexColor("#FFFFFF")
	dc.DrawRoundedRectangle(panelX, panelY, panelW, panelH, 20)
	dc.Fill()
	dc.SetHexColor(theme.Primary)
	dc.DrawRectangle(panelX, panelY, 10, panelH)
	dc.Fill()

	heading, body := script.SplitHeading(block.DisplayText)
	textX := panelX + 50
	textY := panelY + 70
	textW := panelW - 100

	if heading != "" {
		dc.SetHexColor(theme.Primary)
		dc.SetFontFace(r.headingFace)
		dc.DrawString(heading, textX, textY)
		textY += 56
	}

	dc.SetFontFace(r.bodyFace)
	r.drawWrapped(dc, body, textX, textY, textW, panelY+panelH-40-textY, "#2B2B2B")
}

// drawWrapped word-wraps text into the given box, truncating with an
// ellipsis instead of overflowing the frame boundary.
func (r *Renderer) drawWrapped(dc *gg.Context, text string, x, y, width, height float64, hexColor string) {
	if text == "" || height <= 0 {
		return
	}
	dc.SetHexColor(hexColor)

	const lineHeight = 42.0
	lines := dc.WordWrap(text, width)
	maxLines := int(height / lineHeight)
	if maxLines < 1 {
		maxLines = 1
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		lines[maxLines-1] += " …"
	}
	for i, line := range lines {
		dc.DrawString(line, x, y+float64(i)*lineHeight)
	}
}

// drawPattern scatters decorative shapes. Positions are random on purpose:
// the pattern is cosmetic noise, never a correctness signal.
func (r *Renderer) drawPattern(dc *gg.Context, theme Theme, hexColor string) {
	w, h := float64(r.width), float64(r.height)
	dc.SetHexColor(hexColor)

	for i := 0; i < 24; i++ {
		x := rand.Float64() * w
		y := rand.Float64() * h
		size := 4 + rand.Float64()*10
		switch theme.Pattern {
		case PatternRings:
			dc.DrawCircle(x, y, size)
			dc.SetLineWidth(2)
			dc.Stroke()
		case PatternTriangles:
			dc.MoveTo(x, y)
			dc.LineTo(x+size, y+size*1.6)
			dc.LineTo(x-size, y+size*1.6)
			dc.ClosePath()
			dc.Fill()
		default:
			dc.DrawCircle(x, y, size/2)
			dc.Fill()
		}
	}
}

// drawProgress draws the playback-position indicator along the bottom edge.
func (r *Renderer) drawProgress(dc *gg.Context, theme Theme, frameIndex, totalFrames int) {
	w, h := float64(r.width), float64(r.height)

	fraction := 0.0
	if totalFrames > 0 {
		fraction = float64(frameIndex+1) / float64(totalFrames)
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	barX, barY := 70.0, h-60.0
	barW := w - 140.0
	dc.SetHexColor("#D9D9D9")
	dc.DrawRoundedRectangle(barX, barY, barW, 14, 7)
	dc.Fill()
	dc.SetHexColor(theme.Primary)
	dc.DrawRoundedRectangle(barX, barY, barW*fraction, 14, 7)
	dc.Fill()

	dc.SetFontFace(r.smallFace)
	dc.SetHexColor(theme.Primary)
	dc.DrawStringAnchored(fmt.Sprintf("%d / %d", frameIndex+1, totalFrames), w-80, barY-18, 1, 0.5)
}
