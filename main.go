package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"kidreel/api"
	"kidreel/config"
	"kidreel/kafka"
	"kidreel/llm"
	"kidreel/pipeline"
	"kidreel/publish"
	"kidreel/store"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	st, err := store.NewFromEnv()
	if err != nil {
		log.Fatalf("store init error: %v", err)
	}

	provider := llm.NewDefaultProvider()
	if provider == nil {
		log.Println("No language-model provider configured; script generation disabled")
	} else {
		log.Printf("Language-model provider ready (model: %s)", provider.ModelName())
	}

	publicDir := envDir("PUBLIC_DIR", config.DefaultPublicDir)
	scratchDir := envDir("SCRATCH_DIR", config.DefaultScratchDir)
	videosDir := filepath.Join(publicDir, config.VideosSubdir)

	publisher := publish.NewFromEnv(publicDir)
	service := pipeline.NewService(pipeline.New(scratchDir, videosDir), st, publisher)

	var producer *kafka.Producer
	if brokers := kafka.Brokers(); brokers != nil {
		producer, err = kafka.NewProducer(brokers, kafka.Topic())
		if err != nil {
			log.Fatalf("kafka producer error: %v", err)
		}
		defer producer.Close()
		log.Printf("Dispatching generation jobs to Kafka topic %q", kafka.Topic())
	}

	r := api.NewRouter(&api.Deps{
		Store:           st,
		Provider:        provider,
		Service:         service,
		Producer:        producer,
		PublicVideosDir: videosDir,
	})

	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET    /api/health")
	log.Println("  POST   /api/contents")
	log.Println("  GET    /api/contents")
	log.Println("  GET    /api/contents/:id")
	log.Println("  PUT    /api/contents/:id")
	log.Println("  DELETE /api/contents/:id")
	log.Println("  POST   /api/contents/:id/script")
	log.Println("  POST   /api/contents/:id/video")
	log.Println("  GET    /api/contents/:id/status")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// envDir reads a directory from env (with default) and creates it.
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
