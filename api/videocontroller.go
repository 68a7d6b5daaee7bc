package api

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kidreel/types"
)

// RegisterVideoRoutes registers video-generation routes.
func RegisterVideoRoutes(r *gin.Engine, d *Deps) {
	g := r.Group("/api/contents")
	g.POST("/:id/video", handleGenerateVideo(d))
	g.GET("/:id/status", handleJobStatus(d))
}

// handleGenerateVideo kicks off the script-to-video pipeline for a record.
// Generation is fire-and-forget: the request returns 202 immediately and the
// job later settles the record into completed or error.
func handleGenerateVideo(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		content, ok := lookupContent(c, d)
		if !ok {
			return
		}

		content.Status = types.StatusProcessing
		content.ErrorMessage = ""
		if err := d.Store.Update(content); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if d.Producer != nil {
			err := d.Producer.Publish(strconv.Itoa(content.ID), types.GenerationRequest{Content: content})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("dispatch job: %v", err)})
				return
			}
		} else {
			go func(content types.Content) {
				if err := d.Service.Process(content); err != nil {
					log.Printf("Content %d: video generation failed: %v", content.ID, err)
				}
			}(content)
		}

		c.JSON(http.StatusAccepted, gin.H{"status": "processing", "content_id": content.ID})
	}
}

// handleJobStatus reports the generation job's progress for a record.
func handleJobStatus(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		content, ok := lookupContent(c, d)
		if !ok {
			return
		}

		if tr, found := d.Service.Jobs.Get(content.ID); found {
			status := tr.Status()
			if status.VideoURL == "" {
				status.VideoURL = content.VideoURL
			}
			c.JSON(http.StatusOK, status)
			return
		}

		// no job has run in this process; report the stored record state
		c.JSON(http.StatusOK, types.JobStatus{
			ContentID: content.ID,
			State:     stateFromContent(content.Status),
			VideoURL:  content.VideoURL,
			Error:     content.ErrorMessage,
			Logs:      []types.LogEntry{},
		})
	}
}

func stateFromContent(status types.ContentStatus) types.JobState {
	switch status {
	case types.StatusProcessing:
		return types.JobPending
	case types.StatusCompleted:
		return types.JobCompleted
	case types.StatusError:
		return types.JobFailed
	default:
		return types.JobPending
	}
}
