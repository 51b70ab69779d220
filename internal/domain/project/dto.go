package project

import "encoding/json"

// UpsertRequest is the payload for create and update. Every field is
// optional and defaults to empty. Image is the legacy alias for
// ImageURL; Skills and Docs accept either an already-serialized JSON
// string or a native array.
type UpsertRequest struct {
	Title       string          `json:"title" binding:"max=255"`
	Category    string          `json:"category" binding:"max=255"`
	Image       string          `json:"image"`
	ImageURL    string          `json:"image_url"`
	Client      string          `json:"client" binding:"max=255"`
	Services    string          `json:"services" binding:"max=255"`
	URL         string          `json:"url"`
	Description string          `json:"description"`
	Skills      json.RawMessage `json:"skills"`
	Video       string          `json:"video"`
	Docs        json.RawMessage `json:"docs"`
}
