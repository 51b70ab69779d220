// Package client is the Go counterpart of the admin/gallery frontend:
// an HTTP API client, a cached project store with an explicit
// connectivity status, a session-scoped admin login, and the file
// preview classifier.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// OfflineError marks a transport-level failure: the request never
// produced an HTTP response (connection refused, DNS, timeout).
type OfflineError struct {
	Err error
}

func (e *OfflineError) Error() string { return "api offline: " + e.Err.Error() }
func (e *OfflineError) Unwrap() error { return e.Err }

// APIError marks a response with a non-2xx status.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("request failed (%d): %s", e.Status, e.Message)
}

// API talks to the portfolio backend. Admin credentials ride along as
// headers on every mutation.
type API struct {
	baseURL    string
	adminUser  string
	adminPass  string
	httpClient *http.Client
}

func NewAPI(baseURL, adminUser, adminPass string) *API {
	return &API{
		baseURL:    strings.TrimRight(baseURL, "/"),
		adminUser:  adminUser,
		adminPass:  adminPass,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Doc is one attached document reference on a project.
type Doc struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Type  string `json:"type"`
}

// Project is the client-side, fully decoded record shape.
type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	ImageURL    string    `json:"image_url"`
	Client      string    `json:"client"`
	Services    string    `json:"services"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	Skills      []string  `json:"skills"`
	Video       string    `json:"video"`
	Docs        []Doc     `json:"docs"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProjectPayload is what mutations send. Skills and Docs go over the
// wire as native arrays; the server serializes them for storage.
type ProjectPayload struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Image       string   `json:"image,omitempty"`
	ImageURL    string   `json:"image_url"`
	Client      string   `json:"client"`
	Services    string   `json:"services"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Video       string   `json:"video"`
	Docs        []Doc    `json:"docs"`
}

// UploadedFile mirrors the upload endpoint's descriptor.
type UploadedFile struct {
	Name        string `json:"name"`
	MimeType    string `json:"mimeType"`
	SizeBytes   int64  `json:"sizeBytes"`
	OriginalURL string `json:"originalUrl"`
	PreviewURL  string `json:"previewUrl"`
}

// projectRow is the wire form: skills and docs arrive as the stored
// JSON text, image_url is the only image field the server knows.
type projectRow struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	ImageURL    string    `json:"image_url"`
	Client      string    `json:"client"`
	Services    string    `json:"services"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	Skills      string    `json:"skills"`
	Video       string    `json:"video"`
	Docs        string    `json:"docs"`
	CreatedAt   time.Time `json:"created_at"`
}

func (a *API) ListProjects(ctx context.Context) ([]Project, error) {
	var rows []projectRow
	if err := a.do(ctx, http.MethodGet, "/api/projects", nil, false, &rows); err != nil {
		return nil, err
	}
	items := make([]Project, 0, len(rows))
	for _, row := range rows {
		items = append(items, normalizeRow(row))
	}
	return items, nil
}

func (a *API) CreateProject(ctx context.Context, payload ProjectPayload) (Project, error) {
	var row projectRow
	if err := a.do(ctx, http.MethodPost, "/api/projects", payload, true, &row); err != nil {
		return Project{}, err
	}
	return normalizeRow(row), nil
}

// UpdateProject returns (nil, nil) when the server reports an unknown
// id with its literal null body.
func (a *API) UpdateProject(ctx context.Context, id int64, payload ProjectPayload) (*Project, error) {
	var row *projectRow
	if err := a.do(ctx, http.MethodPut, fmt.Sprintf("/api/projects/%d", id), payload, true, &row); err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	p := normalizeRow(*row)
	return &p, nil
}

func (a *API) DeleteProject(ctx context.Context, id int64) error {
	return a.do(ctx, http.MethodDelete, fmt.Sprintf("/api/projects/%d", id), nil, true, nil)
}

// Health probes the backend.
func (a *API) Health(ctx context.Context) error {
	return a.do(ctx, http.MethodGet, "/api/health", nil, false, nil)
}

// NamedBlob is one in-memory file for UploadFiles.
type NamedBlob struct {
	Name    string
	Content []byte
}

// UploadFiles sends a multipart batch under field "files".
func (a *API) UploadFiles(ctx context.Context, blobs []NamedBlob) ([]UploadedFile, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, blob := range blobs {
		part, err := w.CreateFormFile("files", blob.Name)
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(blob.Content); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/api/upload", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var result struct {
		OK    bool           `json:"ok"`
		Files []UploadedFile `json:"files"`
	}
	if err := a.send(req, &result); err != nil {
		return nil, err
	}
	return result.Files, nil
}

func (a *API) do(ctx context.Context, method, path string, body any, admin bool, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.Header.Set("x-admin-user", a.adminUser)
		req.Header.Set("x-admin-pass", a.adminPass)
	}

	return a.send(req, out)
}

func (a *API) send(req *http.Request, out any) error {
	res, err := a.httpClient.Do(req)
	if err != nil {
		return &OfflineError{Err: err}
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return &OfflineError{Err: err}
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &APIError{Status: res.StatusCode, Message: serverMessage(res.StatusCode, data)}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &APIError{Status: res.StatusCode, Message: "malformed response: " + err.Error()}
	}
	return nil
}

func serverMessage(status int, body []byte) string {
	var parsed struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Error != "" {
			return parsed.Error
		}
		if parsed.Message != "" {
			return parsed.Message
		}
	}
	return http.StatusText(status)
}
