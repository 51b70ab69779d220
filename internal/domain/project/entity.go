package project

import "time"

// Project is a portfolio entry. Skills and Docs are stored as JSON
// array text (see internal/pkg/jsontext); the API serves them in that
// stored form and clients decode them at their edge.
type Project struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"column:title" json:"title"`
	Category    string    `gorm:"column:category" json:"category"`
	ImageURL    string    `gorm:"column:image_url" json:"image_url"`
	Client      string    `gorm:"column:client" json:"client"`
	Services    string    `gorm:"column:services" json:"services"`
	URL         string    `gorm:"column:url" json:"url"`
	Description string    `gorm:"column:description" json:"description"`
	Skills      string    `gorm:"column:skills" json:"skills"`
	Video       string    `gorm:"column:video" json:"video"`
	Docs        string    `gorm:"column:docs" json:"docs"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Project) TableName() string { return "projects" }
