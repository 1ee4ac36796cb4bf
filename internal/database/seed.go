package database

import (
	"fmt"

	"premium-store-bot/models"
)

// Seed inserts the demo product set once. A non-empty products table means
// the seed (or real data) is already there, so it is a no-op.
func (s *Store) Seed() error {
	var count int64
	if err := s.db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	demo := []models.Product{
		{
			Name:         "Spotify Premium 1 Bulan",
			Description:  "Akses unlimited musik tanpa iklan, download offline, kualitas audio terbaik",
			Price:        25000,
			Category:     "Music",
			ImageURL:     "https://via.placeholder.com/300x200?text=Spotify+Premium",
			DownloadLink: "https://example.com/spotify",
		},
		{
			Name:         "Netflix Premium 1 Bulan",
			Description:  "Streaming film dan series unlimited, 4K Ultra HD, 4 device bersamaan",
			Price:        65000,
			Category:     "Entertainment",
			ImageURL:     "https://via.placeholder.com/300x200?text=Netflix+Premium",
			DownloadLink: "https://example.com/netflix",
		},
		{
			Name:         "YouTube Premium 1 Bulan",
			Description:  "Tanpa iklan, background play, YouTube Music included",
			Price:        35000,
			Category:     "Entertainment",
			ImageURL:     "https://via.placeholder.com/300x200?text=YouTube+Premium",
			DownloadLink: "https://example.com/youtube",
		},
		{
			Name:         "Canva Pro 1 Bulan",
			Description:  "Design tool premium dengan template unlimited dan fitur advanced",
			Price:        45000,
			Category:     "Design",
			ImageURL:     "https://via.placeholder.com/300x200?text=Canva+Pro",
			DownloadLink: "https://example.com/canva",
		},
		{
			Name:         "Adobe Creative Suite",
			Description:  "Photoshop, Illustrator, Premiere Pro, After Effects - Full Package",
			Price:        150000,
			Category:     "Design",
			ImageURL:     "https://via.placeholder.com/300x200?text=Adobe+Suite",
			DownloadLink: "https://example.com/adobe",
		},
	}

	for i := range demo {
		demo[i].IsActive = true
		if err := s.db.Create(&demo[i]).Error; err != nil {
			return fmt.Errorf("seed product %q: %w", demo[i].Name, err)
		}
	}
	return nil
}
