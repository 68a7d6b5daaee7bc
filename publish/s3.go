package publish

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// s3Uploader pushes finished MP4s to an S3 bucket.
type s3Uploader struct {
	client *s3.Client
	bucket string
	prefix string
	region string
}

// newS3FromEnv returns an uploader when S3_BUCKET is set, nil when S3 is not
// configured. Optional: S3_REGION, S3_PROFILE, S3_PREFIX, S3_USE_PATH_STYLE.
func newS3FromEnv(ctx context.Context) (*s3Uploader, error) {
	bucket := strings.TrimSpace(os.Getenv("S3_BUCKET"))
	if bucket == "" {
		return nil, nil
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	region := strings.TrimSpace(os.Getenv("S3_REGION"))
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}
	if profile := strings.TrimSpace(os.Getenv("S3_PROFILE")); profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(profile))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	if region == "" {
		region = awsCfg.Region
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = strings.EqualFold(strings.TrimSpace(os.Getenv("S3_USE_PATH_STYLE")), "true")
	})

	prefix := strings.Trim(strings.TrimSpace(os.Getenv("S3_PREFIX")), "/")
	if prefix != "" {
		prefix += "/"
	}

	return &s3Uploader{client: client, bucket: bucket, prefix: prefix, region: region}, nil
}

// UploadVideo puts the MP4 under {prefix}videos/{basename} and returns the
// object URL. Re-publishing an existing key is skipped, not overwritten.
func (u *s3Uploader) UploadVideo(ctx context.Context, localPath string) (string, error) {
	key := u.prefix + "videos/" + filepath.Base(localPath)

	exists, err := u.exists(ctx, key)
	if err != nil {
		return "", err
	}
	if !exists {
		f, err := os.Open(localPath)
		if err != nil {
			return "", fmt.Errorf("open video: %w", err)
		}
		defer f.Close()

		_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(u.bucket),
			Key:         aws.String(key),
			Body:        f,
			ContentType: aws.String("video/mp4"),
		})
		if err != nil {
			return "", fmt.Errorf("put s3 object: %w", err)
		}
	}

	if u.region != "" {
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", u.bucket, key), nil
}

func (u *s3Uploader) exists(ctx context.Context, key string) (bool, error) {
	_, err := u.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	})
	if err == nil {
		return true, nil
	}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) && respErr.HTTPStatusCode() == 404 {
		return false, nil
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NotFound" {
		return false, nil
	}
	return false, err
}
