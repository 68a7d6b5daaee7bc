package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"kidreel/pipeline"
	"kidreel/publish"
	"kidreel/store"
	"kidreel/types"
)

func newTestRouter(t *testing.T) (*gin.Engine, store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemory()
	svc := pipeline.NewService(pipeline.New(t.TempDir(), t.TempDir()), st, publish.NewFromEnv(t.TempDir()))
	r := NewRouter(&Deps{
		Store:           st,
		Provider:        nil,
		Service:         svc,
		PublicVideosDir: t.TempDir(),
	})
	return r, st
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health status = %d; want 200", w.Code)
	}
}

func TestContentCRUD(t *testing.T) {
	r, _ := newTestRouter(t)

	// create
	w := doJSON(t, r, http.MethodPost, "/api/contents", CreateContentRequest{
		Title:   "Volcanoes for Kids",
		Subject: "science",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}
	var created types.Content
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.ID != 1 || created.Status != types.StatusDraft {
		t.Fatalf("created = %+v", created)
	}

	// get
	w = doJSON(t, r, http.MethodGet, "/api/contents/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}

	// update preserves identity
	created.Title = "Volcanoes, Revised"
	created.ID = 999 // the path id wins
	w = doJSON(t, r, http.MethodPut, "/api/contents/1", created)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", w.Code, w.Body.String())
	}
	var updated types.Content
	_ = json.Unmarshal(w.Body.Bytes(), &updated)
	if updated.ID != 1 || updated.Title != "Volcanoes, Revised" {
		t.Fatalf("updated = %+v", updated)
	}

	// list
	w = doJSON(t, r, http.MethodGet, "/api/contents", nil)
	var list []types.Content
	_ = json.Unmarshal(w.Body.Bytes(), &list)
	if len(list) != 1 {
		t.Fatalf("list = %+v; want one record", list)
	}

	// delete
	w = doJSON(t, r, http.MethodDelete, "/api/contents/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/api/contents/1", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete = %d; want 404", w.Code)
	}
}

func TestCreateContentRequiresTitle(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/contents", map[string]any{"subject": "math"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}
}

func TestInvalidContentID(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/contents/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}
}

func TestGenerateScriptWithoutProvider(t *testing.T) {
	r, st := newTestRouter(t)
	if _, err := st.Create(types.Content{Title: "Oceans"}); err != nil {
		t.Fatalf("seed content: %v", err)
	}

	w := doJSON(t, r, http.MethodPost, "/api/contents/1/script", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d; want 503", w.Code)
	}
}

func TestGenerateVideoMissingContent(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/api/contents/42/video", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", w.Code)
	}
}

func TestJobStatusFallsBackToRecordState(t *testing.T) {
	r, st := newTestRouter(t)
	seeded, err := st.Create(types.Content{
		Title:    "Oceans",
		Status:   types.StatusCompleted,
		VideoURL: "/videos/oceans.mp4",
	})
	if err != nil {
		t.Fatalf("seed content: %v", err)
	}

	w := doJSON(t, r, http.MethodGet, "/api/contents/1/status", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	var status types.JobStatus
	if err := json.Unmarshal(w.Body.Bytes(), &status); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if status.ContentID != seeded.ID || status.State != types.JobCompleted {
		t.Fatalf("status = %+v", status)
	}
	if status.VideoURL != "/videos/oceans.mp4" {
		t.Fatalf("video url = %q", status.VideoURL)
	}
}
