// Package fixtures holds the demo dataset the dashboard is seeded with at
// startup. The store is purely in-memory, so this is the whole universe of
// data until users start mutating it.
package fixtures

import (
	"time"

	"github.com/photoalbums/studio-api/internal/core/domain"
)

// Bootstrap returns the admin account (login "admin", any password). It is
// always seeded; without it a fresh process would have nobody to log in as.
func Bootstrap() []domain.User {
	return []domain.User{
		{
			Name:     "Администратор",
			Email:    "admin",
			Role:     domain.RoleAdmin,
			Phone:    "+7 (999) 123-45-67",
			Telegram: "@admin",
		},
	}
}

// Users returns the demo studio staff.
func Users() []domain.User {
	joined := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	return []domain.User{
		{
			ID:         "1",
			Name:       "Анна Иванова",
			Email:      "anna@photoalbums.com",
			Role:       domain.RolePhotographer,
			Department: "Фотостудия",
			Position:   "Старший фотограф",
			Salary:     75000,
			Avatar:     "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg",
			CreatedAt:  joined(2024, time.January, 15),
		},
		{
			ID:         "2",
			Name:       "Михаил Петров",
			Email:      "mikhail@photoalbums.com",
			Role:       domain.RoleDesigner,
			Department: "Дизайн",
			Position:   "Ведущий дизайнер",
			Salary:     80000,
			Avatar:     "https://images.pexels.com/photos/1222271/pexels-photo-1222271.jpeg",
			CreatedAt:  joined(2024, time.January, 10),
		},
		{
			ID:         "3",
			Name:       "Елена Сидорова",
			Email:      "elena@photoalbums.com",
			Role:       domain.RoleAdmin,
			Department: "Администрация",
			Position:   "Администратор системы",
			Salary:     90000,
			Avatar:     "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg",
			CreatedAt:  joined(2024, time.January, 1),
		},
		{
			ID:         "4",
			Name:       "Дмитрий Козлов",
			Email:      "dmitry@photoalbums.com",
			Role:       domain.RolePhotographer,
			Department: "Фотостудия",
			Position:   "Фотограф",
			Salary:     60000,
			CreatedAt:  joined(2023, time.December, 1),
		},
	}
}

// Projects returns the seed album projects. Participant ids reference the
// seed users above.
func Projects() []domain.Project {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	manager := &domain.ParticipantRef{ID: "3", Name: "Елена Сидорова"}
	photographer := &domain.ParticipantRef{ID: "1", Name: "Анна Иванова"}
	designer := &domain.ParticipantRef{ID: "2", Name: "Михаил Петров"}

	seed := []domain.Project{
		{
			ID:           "p1",
			Title:        "Свадебный альбом \"Анна & Михаил\"",
			AlbumType:    "Свадебный альбом",
			Description:  "Создание премиального свадебного альбома со 150 фотографиями",
			Status:       domain.StatusInProgress,
			Manager:      manager,
			Photographer: photographer,
			Designer:     designer,
			Deadline:     date(2024, time.February, 15),
			CreatedAt:    date(2024, time.January, 10),
			Progress:     75,
			PhotosCount:  150,
			DesignsCount: 8,
		},
		{
			ID:           "p2",
			Title:        "Детская фотосессия \"Семья Петровых\"",
			AlbumType:    "Детский альбом",
			Description:  "Семейный альбом с детской фотосессией в студии",
			Status:       domain.StatusPlanning,
			Manager:      manager,
			Photographer: photographer,
			Deadline:     date(2024, time.February, 20),
			CreatedAt:    date(2024, time.January, 15),
			Progress:     25,
			PhotosCount:  89,
		},
		{
			ID:           "p3",
			Title:        "Корпоративный альбом \"ООО Рога и копыта\"",
			AlbumType:    "Корпоративный альбом",
			Description:  "Презентационный альбом для корпоративных клиентов",
			Status:       domain.StatusReview,
			Manager:      manager,
			Photographer: photographer,
			Designer:     designer,
			Deadline:     date(2024, time.February, 10),
			CreatedAt:    date(2024, time.January, 5),
			Progress:     90,
			PhotosCount:  45,
			DesignsCount: 12,
		},
		{
			ID:           "p4",
			Title:        "Выпускной альбом школы №15",
			AlbumType:    "Выпускной альбом",
			Description:  "Выпускной альбом для 11 класса с групповыми и индивидуальными фото",
			Status:       domain.StatusCompleted,
			Manager:      manager,
			Photographer: photographer,
			Designer:     designer,
			Deadline:     date(2024, time.January, 30),
			CreatedAt:    date(2023, time.December, 15),
			Progress:     100,
			PhotosCount:  200,
			DesignsCount: 15,
		},
	}

	for i := range seed {
		seed[i].UpdatedAt = seed[i].CreatedAt
		seed[i].StatusHistory = []domain.StatusHistoryEntry{
			{Status: seed[i].Status, Timestamp: seed[i].CreatedAt},
		}
	}
	return seed
}
