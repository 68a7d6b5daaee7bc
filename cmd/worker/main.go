package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"kidreel/config"
	"kidreel/kafka"
	"kidreel/pipeline"
	"kidreel/publish"
	"kidreel/store"
	"kidreel/types"
)

// The worker consumes generation requests from Kafka and runs the video
// pipeline out of process. The request carries the full content record, so
// the worker only needs a shared store when results must be visible to the
// API server (set CONTENT_STORE=redis on both sides for that).
func main() {
	_ = godotenv.Load()

	brokers := kafka.Brokers()
	if brokers == nil {
		log.Fatal("KAFKA_BOOTSTRAP_SERVERS is required for the worker")
	}

	st, err := store.NewFromEnv()
	if err != nil {
		log.Fatalf("store init error: %v", err)
	}

	publicDir := envDir("PUBLIC_DIR", config.DefaultPublicDir)
	scratchDir := envDir("SCRATCH_DIR", config.DefaultScratchDir)
	videosDir := filepath.Join(publicDir, config.VideosSubdir)
	if err := os.MkdirAll(videosDir, 0o755); err != nil {
		log.Fatalf("create %s: %v", videosDir, err)
	}

	publisher := publish.NewFromEnv(publicDir)
	service := pipeline.NewService(pipeline.New(scratchDir, videosDir), st, publisher)

	handler := kafka.JSONHandler[types.GenerationRequest](func(ctx context.Context, req *types.GenerationRequest) error {
		log.Printf("Processing generation request for content %d (%s)", req.Content.ID, req.Content.Title)
		return service.Process(req.Content)
	})

	consumer, err := kafka.NewConsumer(brokers, kafka.Topic(), kafka.GroupID(), handler)
	if err != nil {
		log.Fatalf("kafka consumer error: %v", err)
	}

	log.Printf("Worker consuming topic %q as group %q", kafka.Topic(), kafka.GroupID())
	if err := consumer.RunWithShutdown(); err != nil {
		log.Fatalf("worker error: %v", err)
	}
}

func envDir(key, fallback string) string {
	dir := os.Getenv(key)
	if dir == "" {
		dir = fallback
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatalf("create %s: %v", dir, err)
	}
	return dir
}
