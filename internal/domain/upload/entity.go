package upload

// File describes one stored upload. It is transient — the admin UI
// folds it into a project's docs entry; nothing is persisted here.
type File struct {
	Name        string `json:"name"`
	MimeType    string `json:"mimeType"`
	SizeBytes   int64  `json:"sizeBytes"`
	OriginalURL string `json:"originalUrl"`
	PreviewURL  string `json:"previewUrl"`
}

// OfficeExts is the office-document family that gets a best-effort PDF
// preview conversion.
var OfficeExts = map[string]bool{
	".ppt":  true,
	".pptx": true,
	".doc":  true,
	".docx": true,
	".xls":  true,
	".xlsx": true,
}
