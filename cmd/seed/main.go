package main

import (
	"log"

	"github.com/joho/godotenv"

	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/domain/project"
	"portfolio/internal/pkg/jsontext"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(&project.Project{}); err != nil {
		log.Fatal(err)
	}

	samples := []project.Project{
		{
			Title:       "Harbor Rebrand",
			Category:    "Branding",
			ImageURL:    "/uploads/sample-harbor.webp",
			Client:      "Harbor Logistics",
			Services:    "Identity, Guidelines",
			URL:         "https://example.com/harbor",
			Description: "Full visual identity refresh for a freight company.",
			Skills:      jsontext.EncodeStrings([]string{"Figma", "Illustrator"}),
			Video:       "https://youtu.be/dQw4w9WgXcQ",
			Docs:        `[{"label":"Brand Deck","url":"/uploads/sample-harbor-deck.pdf","type":"pdf"}]`,
		},
		{
			Title:       "Atlas Commerce Platform",
			Category:    "Web",
			ImageURL:    "/uploads/sample-atlas.png",
			Client:      "Atlas Retail",
			Services:    "Design, Frontend",
			Description: "Storefront redesign with a headless checkout.",
			Skills:      jsontext.EncodeStrings([]string{"React", "Go"}),
			Docs:        "[]",
		},
		{
			Title:    "Field Notes Documentary",
			Category: "Video",
			ImageURL: "/uploads/sample-field.jpg",
			Client:   "Field Notes Co",
			Services: "Production",
			Skills:   "[]",
			Video:    "/uploads/sample-field-teaser.mp4",
			Docs:     "[]",
		},
	}

	for _, p := range samples {
		var count int64
		db.Model(&project.Project{}).Where("title = ?", p.Title).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&p).Error; err != nil {
			log.Fatal("seed failed:", err)
		}
		log.Printf("seeded project %q (id=%d)", p.Title, p.ID)
	}

	log.Println("Seed complete.")
}
