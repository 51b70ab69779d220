package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/database"
	"portfolio/internal/domain/health"
	"portfolio/internal/domain/project"
	"portfolio/internal/domain/upload"
	"portfolio/internal/middleware"
)

const (
	adminUser = "admin"
	adminPass = "e2e-secret"
)

type fakeConverter struct {
	fail bool
}

func (f *fakeConverter) ToPDF(_ context.Context, inputPath, outDir string) error {
	if f.fail {
		return os.ErrPermission
	}
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return os.WriteFile(filepath.Join(outDir, base+".pdf"), []byte("%PDF-1.4"), 0o644)
}

func setupRouter(t *testing.T, conv upload.Converter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&project.Project{}))

	projectHandler := project.NewHandler(project.NewService(project.NewRepository(db)))
	uploadService := upload.NewService(t.TempDir(), "/uploads", upload.DefaultMaxBatch, conv)
	uploadHandler := upload.NewHandler(uploadService, "")
	healthHandler := health.NewHandler(db)

	r := gin.New()
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	api := r.Group("/api")
	healthHandler.RegisterRoutes(api)
	upload.RegisterRoutes(api, uploadHandler)

	admin := api.Group("/")
	admin.Use(middleware.RequireAdmin(adminUser, adminPass))
	project.RegisterRoutes(api, admin, projectHandler)

	uploads := r.Group("/uploads")
	uploads.Use(middleware.UploadHeaders())
	uploads.Static("/", uploadService.Dir())

	return r
}

func doJSON(r *gin.Engine, method, path string, body any, admin bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.Header.Set("x-admin-user", adminUser)
		req.Header.Set("x-admin-pass", adminPass)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := setupRouter(t, &fakeConverter{})

	w := doJSON(r, http.MethodGet, "/api/health", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"db":true}`, w.Body.String())
}

func TestProjectCRUDLifecycle(t *testing.T) {
	r := setupRouter(t, &fakeConverter{})

	// Create with legacy alias and native arrays.
	w := doJSON(r, http.MethodPost, "/api/projects", map[string]any{
		"title":  "First",
		"image":  "/uploads/legacy.png",
		"skills": []string{"go"},
		"docs":   []map[string]string{{"label": "Deck", "url": "/uploads/d.pdf", "type": "pdf"}},
	}, true)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := int64(created["id"].(float64))
	assert.Equal(t, "/uploads/legacy.png", created["image_url"])
	assert.Equal(t, `["go"]`, created["skills"])

	// Listing is public and newest-first.
	doJSON(r, http.MethodPost, "/api/projects", map[string]any{"title": "Second"}, true)
	w = doJSON(r, http.MethodGet, "/api/projects", nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, "Second", listed[0]["title"])
	assert.Equal(t, "First", listed[1]["title"])

	// Update replaces fields.
	w = doJSON(r, http.MethodPut, "/api/projects/"+itoa(id), map[string]any{"title": "Renamed"}, true)
	require.Equal(t, http.StatusOK, w.Code)
	var updated map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Renamed", updated["title"])
	assert.Equal(t, "[]", updated["skills"])

	// Updating an unknown id serves literal null.
	w = doJSON(r, http.MethodPut, "/api/projects/99999", map[string]any{"title": "ghost"}, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", strings.TrimSpace(w.Body.String()))

	// Delete twice: both succeed.
	for range 2 {
		w = doJSON(r, http.MethodDelete, "/api/projects/"+itoa(id), nil, true)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	}
}

func TestMutationsRequireAdminGate(t *testing.T) {
	r := setupRouter(t, &fakeConverter{})

	w := doJSON(r, http.MethodPost, "/api/projects", map[string]any{"title": "x"}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())

	// Half-right pairs produce the identical response.
	req := httptest.NewRequest(http.MethodDelete, "/api/projects/1", nil)
	req.Header.Set("x-admin-user", adminUser)
	req.Header.Set("x-admin-pass", "wrong")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())

	// And the read surface stays open.
	w = doJSON(r, http.MethodGet, "/api/projects", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
}

func uploadRequest(t *testing.T, names ...string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, name := range names {
		part, err := mw.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write([]byte("payload for " + name))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadBatch_WithConversion(t *testing.T) {
	r := setupRouter(t, &fakeConverter{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "Pitch Deck.docx", "logo.png"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		OK    bool `json:"ok"`
		Files []struct {
			Name        string `json:"name"`
			OriginalURL string `json:"originalUrl"`
			PreviewURL  string `json:"previewUrl"`
			SizeBytes   int64  `json:"sizeBytes"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	require.Len(t, resp.Files, 2)

	docx, png := resp.Files[0], resp.Files[1]
	assert.NotEqual(t, docx.OriginalURL, docx.PreviewURL)
	assert.True(t, strings.HasSuffix(docx.PreviewURL, ".pdf"))
	assert.Equal(t, png.OriginalURL, png.PreviewURL)

	// The stored original is served with permissive headers.
	path := strings.TrimPrefix(png.OriginalURL, "http://example.com")
	req := httptest.NewRequest(http.MethodGet, path, nil)
	got := httptest.NewRecorder()
	r.ServeHTTP(got, req)
	assert.Equal(t, http.StatusOK, got.Code)
	assert.Equal(t, "*", got.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "cross-origin", got.Header().Get("Cross-Origin-Resource-Policy"))
}

func TestUploadBatch_ConverterFailureDoesNotFailRequest(t *testing.T) {
	r := setupRouter(t, &fakeConverter{fail: true})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "report.xlsx"))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Files []struct {
			OriginalURL string `json:"originalUrl"`
			PreviewURL  string `json:"previewUrl"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Files, 1)
	assert.Equal(t, resp.Files[0].OriginalURL, resp.Files[0].PreviewURL)
}

func itoa(id int64) string {
	data, _ := json.Marshal(id)
	return string(data)
}
