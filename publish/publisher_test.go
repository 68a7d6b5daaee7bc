package publish

import (
	"path/filepath"
	"testing"
)

func TestVideoURL(t *testing.T) {
	root := t.TempDir()
	p := &Publisher{publicRoot: root}

	cases := []struct {
		name string
		path string
		want string
	}{
		{"under root", filepath.Join(root, "videos", "a.mp4"), "/videos/a.mp4"},
		{"at root", filepath.Join(root, "a.mp4"), "/a.mp4"},
		{"outside root", "/elsewhere/b.mp4", "/b.mp4"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := p.VideoURL(c.path); got != c.want {
				t.Fatalf("VideoURL(%q) = %q; want %q", c.path, got, c.want)
			}
		})
	}
}

func TestNewFromEnvWithoutTargets(t *testing.T) {
	t.Setenv("S3_BUCKET", "")
	t.Setenv("YOUTUBE_SERVICE_ACCOUNT", "")

	p := NewFromEnv(t.TempDir())
	if p.s3 != nil || p.youtube != nil {
		t.Fatal("upload targets enabled without configuration")
	}
}
