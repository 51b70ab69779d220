package project

import (
	"context"

	"portfolio/internal/pkg/jsontext"
)

// Service owns the normalization boundary: request payloads are folded
// into the canonical row shape exactly once, here, and nothing deeper
// in the call graph branches on payload shape again.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []Project{}
	}
	return projects, nil
}

func (s *Service) Create(ctx context.Context, req UpsertRequest) (*Project, error) {
	p := normalize(req)
	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	// Re-read so the caller sees store-assigned id and created_at.
	return s.repo.GetByID(ctx, p.ID)
}

// Update replaces every field of the row. A missing id yields
// (nil, nil), not an error.
func (s *Service) Update(ctx context.Context, id int64, req UpsertRequest) (*Project, error) {
	p := normalize(req)
	fields := map[string]any{
		"title":       p.Title,
		"category":    p.Category,
		"image_url":   p.ImageURL,
		"client":      p.Client,
		"services":    p.Services,
		"url":         p.URL,
		"description": p.Description,
		"skills":      p.Skills,
		"video":       p.Video,
		"docs":        p.Docs,
	}
	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err == ErrNotFound {
		return nil, nil
	}
	return updated, err
}

// Delete is idempotent: deleting an unknown id is still a success.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func normalize(req UpsertRequest) Project {
	imageURL := req.ImageURL
	if imageURL == "" {
		imageURL = req.Image
	}
	return Project{
		Title:       req.Title,
		Category:    req.Category,
		ImageURL:    imageURL,
		Client:      req.Client,
		Services:    req.Services,
		URL:         req.URL,
		Description: req.Description,
		Skills:      jsontext.EncodeSeq(req.Skills),
		Video:       req.Video,
		Docs:        jsontext.EncodeSeq(req.Docs),
	}
}
