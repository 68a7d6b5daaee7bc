package publish

import (
	"context"
	"log"
	"path/filepath"
	"strings"
	"time"

	"kidreel/types"
)

// Publisher resolves finished videos to servable URLs and optionally pushes
// them to S3 and YouTube when those targets are configured.
type Publisher struct {
	publicRoot string
	s3         *s3Uploader
	youtube    *youtubeUploader
}

// NewFromEnv builds a publisher rooted at the web-servable public directory.
// S3 and YouTube are enabled only when their env configuration is present;
// initialization failures disable the target with a warning.
func NewFromEnv(publicRoot string) *Publisher {
	p := &Publisher{publicRoot: publicRoot}

	s3u, err := newS3FromEnv(context.Background())
	if err != nil {
		log.Printf("Warning: S3 uploads disabled: %v", err)
	} else if s3u != nil {
		p.s3 = s3u
	}

	ytu, err := newYouTubeFromEnv()
	if err != nil {
		log.Printf("Warning: YouTube uploads disabled: %v", err)
	} else if ytu != nil {
		p.youtube = ytu
	}

	return p
}

// VideoURL maps an absolute output path to a web-servable relative path by
// stripping the public-root prefix.
func (p *Publisher) VideoURL(outputPath string) string {
	rel, err := filepath.Rel(p.publicRoot, outputPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "/" + filepath.ToSlash(filepath.Base(outputPath))
	}
	return "/" + filepath.ToSlash(rel)
}

// Publish returns the video's servable URL, uploading to the configured
// targets first. An S3 upload replaces the local URL with the object URL;
// a YouTube upload is logged only. Upload failures are non-fatal — the
// local artifact already exists and stays playable.
func (p *Publisher) Publish(outputPath string, c types.Content) string {
	url := p.VideoURL(outputPath)

	if p.s3 != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		s3URL, err := p.s3.UploadVideo(ctx, outputPath)
		cancel()
		if err != nil {
			log.Printf("Content %d: S3 upload failed: %v", c.ID, err)
		} else {
			url = s3URL
		}
	}

	if p.youtube != nil {
		videoID, err := p.youtube.Upload(outputPath, c)
		if err != nil {
			log.Printf("Content %d: YouTube upload failed: %v", c.ID, err)
		} else {
			log.Printf("Content %d: uploaded to YouTube as %s", c.ID, videoID)
		}
	}

	return url
}
