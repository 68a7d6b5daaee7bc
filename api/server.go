package api

import (
	"github.com/gin-gonic/gin"

	"kidreel/kafka"
	"kidreel/llm"
	"kidreel/pipeline"
	"kidreel/store"
)

// Deps carries the collaborators the controllers need.
type Deps struct {
	Store    store.Store
	Provider llm.Provider
	Service  *pipeline.Service
	// Producer dispatches generation jobs to Kafka workers; nil means the
	// job runs in-process.
	Producer        *kafka.Producer
	PublicVideosDir string
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(d *Deps) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	RegisterHealthRoutes(r)
	RegisterContentRoutes(r, d)
	RegisterVideoRoutes(r, d)

	// finished videos are served straight from the public root
	r.Static("/videos", d.PublicVideosDir)
	return r
}
