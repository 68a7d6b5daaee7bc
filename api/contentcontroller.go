package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kidreel/llm"
	"kidreel/script"
	"kidreel/store"
	"kidreel/types"
)

// RegisterContentRoutes registers CRUD and script-generation routes for
// content records.
func RegisterContentRoutes(r *gin.Engine, d *Deps) {
	g := r.Group("/api/contents")
	g.POST("", handleCreateContent(d))
	g.GET("", handleListContents(d))
	g.GET("/:id", handleGetContent(d))
	g.PUT("/:id", handleUpdateContent(d))
	g.DELETE("/:id", handleDeleteContent(d))
	g.POST("/:id/script", handleGenerateScript(d))
}

// CreateContentRequest is the payload for creating a content record.
type CreateContentRequest struct {
	Title           string `json:"title" binding:"required"`
	Subject         string `json:"subject"`
	AgeGroup        string `json:"age_group"`
	DifficultyLevel string `json:"difficulty_level"`
	ContentFormat   string `json:"content_format"`
	Duration        int    `json:"duration"`
	Instructions    string `json:"instructions"`
	// GenerateScript asks for an immediate script-generation pass
	GenerateScript bool `json:"generate_script"`
}

func handleCreateContent(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateContentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		content, err := d.Store.Create(types.Content{
			Title:           req.Title,
			Subject:         req.Subject,
			AgeGroup:        req.AgeGroup,
			DifficultyLevel: req.DifficultyLevel,
			ContentFormat:   req.ContentFormat,
			Duration:        req.Duration,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if req.GenerateScript {
			content = generateScript(c, d, content, req.Instructions)
		}
		c.JSON(http.StatusCreated, content)
	}
}

func handleListContents(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		contents, err := d.Store.List()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, contents)
	}
}

func handleGetContent(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		content, ok := lookupContent(c, d)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, content)
	}
}

func handleUpdateContent(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		existing, ok := lookupContent(c, d)
		if !ok {
			return
		}

		var updated types.Content
		if err := c.ShouldBindJSON(&updated); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		updated.ID = existing.ID
		updated.CreatedAt = existing.CreatedAt
		if updated.Status == "" {
			updated.Status = existing.Status
		}

		if err := d.Store.Update(updated); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func handleDeleteContent(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := contentID(c)
		if !ok {
			return
		}
		if err := d.Store.Delete(id); err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "content not found"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}

// handleGenerateScript asks the configured language-model provider for a
// script and stores the raw response on the record.
func handleGenerateScript(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d.Provider == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no language-model provider configured"})
			return
		}
		content, ok := lookupContent(c, d)
		if !ok {
			return
		}

		var req struct {
			Instructions string `json:"instructions"`
		}
		_ = c.ShouldBindJSON(&req) // body optional

		content = generateScript(c, d, content, req.Instructions)
		c.JSON(http.StatusOK, content)
	}
}

// generateScript runs the provider and updates the record. The response is
// stored as-is; learning objectives and materials are pulled out best-effort.
func generateScript(c *gin.Context, d *Deps, content types.Content, instructions string) types.Content {
	raw, err := d.Provider.GenerateScript(c.Request.Context(), llm.Request{
		Title:           content.Title,
		Subject:         content.Subject,
		AgeGroup:        content.AgeGroup,
		DifficultyLevel: content.DifficultyLevel,
		ContentFormat:   content.ContentFormat,
		DurationMinutes: content.Duration,
		Instructions:    instructions,
	})
	if err != nil {
		log.Printf("Content %d: script generation failed: %v", content.ID, err)
		content.Status = types.StatusError
		content.ErrorMessage = err.Error()
	} else {
		content.ScriptContent = raw
		content.AIModel = d.Provider.ModelName()
		content.Status = types.StatusDraft
		content.ErrorMessage = ""

		payload := script.Parse(raw)
		if objs := script.ExtractStringList(payload, "learningObjectives"); objs != nil {
			content.LearningObjectives = objs
		}
		if mats := script.ExtractStringList(payload, "materials"); mats != nil {
			content.Materials = mats
		}
	}

	if uerr := d.Store.Update(content); uerr != nil {
		log.Printf("Content %d: update after script generation failed: %v", content.ID, uerr)
	}
	return content
}

func contentID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid content id"})
		return 0, false
	}
	return id, true
}

func lookupContent(c *gin.Context, d *Deps) (types.Content, bool) {
	id, ok := contentID(c)
	if !ok {
		return types.Content{}, false
	}
	content, err := d.Store.Get(id)
	if err == store.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "content not found"})
		return types.Content{}, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return types.Content{}, false
	}
	return content, true
}
