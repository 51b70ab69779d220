package upload

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const DefaultMaxBatch = 15

// Service stores uploaded files in a flat content directory and
// best-effort converts office documents to an embeddable PDF. Files in
// a batch are processed sequentially; only a filesystem write failure
// fails the request.
type Service struct {
	dir        string
	publicPath string // URL mount point for the content dir, e.g. "/uploads"
	maxBatch   int
	converter  Converter
	now        func() time.Time
}

func NewService(dir, publicPath string, maxBatch int, converter Converter) *Service {
	if maxBatch <= 0 {
		maxBatch = DefaultMaxBatch
	}
	return &Service{
		dir:        dir,
		publicPath: "/" + strings.Trim(publicPath, "/"),
		maxBatch:   maxBatch,
		converter:  converter,
		now:        time.Now,
	}
}

// Dir returns the content directory the service writes into.
func (s *Service) Dir() string { return s.dir }

// Store persists the batch and returns one descriptor per file.
// baseURL is the public origin the returned URLs are rooted at.
func (s *Service) Store(ctx context.Context, baseURL string, files []*multipart.FileHeader) ([]File, error) {
	if len(files) > s.maxBatch {
		return nil, ErrTooManyFiles
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	baseURL = strings.TrimRight(baseURL, "/")
	out := make([]File, 0, len(files))

	for _, fh := range files {
		stored, err := s.saveOne(fh)
		if err != nil {
			return nil, err
		}

		originalURL := fmt.Sprintf("%s%s/%s", baseURL, s.publicPath, stored)
		previewURL := originalURL

		ext := strings.ToLower(filepath.Ext(fh.Filename))
		if OfficeExts[ext] {
			storedPath := filepath.Join(s.dir, stored)
			if err := s.converter.ToPDF(ctx, storedPath, s.dir); err != nil {
				log.Printf("upload_convert file=%s error=%q", stored, err)
			}

			// The converter names its output after the input base,
			// whether or not the invocation above reported success.
			pdfName := strings.TrimSuffix(stored, ext) + ".pdf"
			if _, err := os.Stat(filepath.Join(s.dir, pdfName)); err == nil {
				previewURL = fmt.Sprintf("%s%s/%s", baseURL, s.publicPath, pdfName)
			}
		}

		mimeType := fh.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}

		out = append(out, File{
			Name:        fh.Filename,
			MimeType:    mimeType,
			SizeBytes:   fh.Size,
			OriginalURL: originalURL,
			PreviewURL:  previewURL,
		})
	}

	return out, nil
}

func (s *Service) saveOne(fh *multipart.FileHeader) (string, error) {
	stored := s.storedName(fh.Filename)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, stored))
	if err != nil {
		return "", fmt.Errorf("create %s: %w", stored, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(filepath.Join(s.dir, stored))
		return "", fmt.Errorf("write %s: %w", stored, err)
	}

	return stored, nil
}

// storedName derives `{unixMillis}-{slug}{ext}`. The timestamp prefix
// keeps concurrent uploads from colliding and the slug strips anything
// path-traversal-shaped from the original name.
func (s *Service) storedName(original string) string {
	base := filepath.Base(original)
	ext := strings.ToLower(filepath.Ext(base))
	return fmt.Sprintf("%d-%s%s", s.now().UnixMilli(), slugify(strings.TrimSuffix(base, filepath.Ext(base))), ext)
}

func slugify(name string) string {
	var b strings.Builder
	lastDash := true // suppress a leading dash
	for _, r := range strings.ToLower(name) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	slug := strings.TrimRight(b.String(), "-")
	if slug == "" {
		return "file"
	}
	return slug
}
