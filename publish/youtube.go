package publish

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"kidreel/types"
)

// youtubeCategoryEducation is the YouTube category id for Education.
const youtubeCategoryEducation = "27"

// youtubeUploader publishes finished videos to a YouTube channel via a
// service account.
type youtubeUploader struct {
	service *youtube.Service
	privacy string
}

// newYouTubeFromEnv returns an uploader when YOUTUBE_SERVICE_ACCOUNT points
// at a credentials file, nil when YouTube publishing is not configured.
func newYouTubeFromEnv() (*youtubeUploader, error) {
	credsFile := strings.TrimSpace(os.Getenv("YOUTUBE_SERVICE_ACCOUNT"))
	if credsFile == "" {
		return nil, nil
	}

	data, err := os.ReadFile(credsFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read service account file: %w", err)
	}

	ctx := context.Background()
	jwtConfig, err := google.JWTConfigFromJSON(data, youtube.YoutubeUploadScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account: %w", err)
	}

	service, err := youtube.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("unable to create YouTube service: %w", err)
	}

	privacy := os.Getenv("YOUTUBE_PRIVACY")
	if privacy == "" {
		privacy = "unlisted"
	}
	return &youtubeUploader{service: service, privacy: privacy}, nil
}

// Upload pushes the video with metadata built from the content record and
// returns the YouTube video id.
func (u *youtubeUploader) Upload(videoPath string, c types.Content) (string, error) {
	file, err := os.Open(videoPath)
	if err != nil {
		return "", fmt.Errorf("failed to open video file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat video file: %w", err)
	}
	log.Printf("Uploading to YouTube: %s (%.2f MB)", videoPath, float64(info.Size())/(1024*1024))

	video := &youtube.Video{
		Snippet: &youtube.VideoSnippet{
			Title:       videoTitle(c),
			Description: videoDescription(c),
			Tags:        videoTags(c),
			CategoryId:  youtubeCategoryEducation,
		},
		Status: &youtube.VideoStatus{
			PrivacyStatus:           u.privacy,
			SelfDeclaredMadeForKids: true,
		},
	}

	call := u.service.Videos.Insert([]string{"snippet", "status"}, video).Media(file)
	resp, err := call.Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload video: %w", err)
	}
	return resp.Id, nil
}

func videoTitle(c types.Content) string {
	title := c.Title
	if c.Subject != "" {
		title = fmt.Sprintf("%s | %s", c.Title, c.Subject)
	}
	if len(title) > 100 {
		title = title[:97] + "..."
	}
	return title
}

func videoDescription(c types.Content) string {
	var b strings.Builder
	fmt.Fprintf(&b, "A short %s lesson for kids", strings.ToLower(c.Subject))
	if c.AgeGroup != "" {
		fmt.Fprintf(&b, " (ages %s)", c.AgeGroup)
	}
	b.WriteString(".\n")
	if len(c.LearningObjectives) > 0 {
		b.WriteString("\nYou will learn:\n")
		for _, obj := range c.LearningObjectives {
			fmt.Fprintf(&b, "- %s\n", obj)
		}
	}
	return b.String()
}

func videoTags(c types.Content) []string {
	tags := []string{"education", "kids", "learning"}
	if c.Subject != "" {
		tags = append(tags, strings.ToLower(c.Subject))
	}
	if c.AgeGroup != "" {
		tags = append(tags, "ages "+c.AgeGroup)
	}
	return tags
}
