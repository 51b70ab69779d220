package client

import "portfolio/internal/pkg/jsontext"

// normalizeRow is the single ingestion edge for records entering the
// client: image/image_url are cross-populated and the serialized skills
// and docs columns are decoded, with malformed text degrading to an
// empty sequence. Nothing past this function branches on wire shape.
func normalizeRow(row projectRow) Project {
	image := row.Image
	imageURL := row.ImageURL
	if image == "" {
		image = imageURL
	}
	if imageURL == "" {
		imageURL = image
	}

	docs := []Doc{}
	jsontext.Decode(row.Docs, &docs)
	if docs == nil {
		docs = []Doc{}
	}

	return Project{
		ID:          row.ID,
		Title:       row.Title,
		Category:    row.Category,
		Image:       image,
		ImageURL:    imageURL,
		Client:      row.Client,
		Services:    row.Services,
		URL:         row.URL,
		Description: row.Description,
		Skills:      jsontext.DecodeStrings(row.Skills),
		Video:       row.Video,
		Docs:        docs,
		CreatedAt:   row.CreatedAt,
	}
}
