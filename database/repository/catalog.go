package repository

import (
	"errors"

	"serenity/models"
)

// ErrServiceNotFound is returned when a catalog lookup misses.
var ErrServiceNotFound = errors.New("service not found")

// ServiceRepository provides read-only access to the treatment catalog.
type ServiceRepository interface {
	GetAll() []models.Service
	GetByID(id int) (*models.Service, error)
}

// memoryServiceRepo serves the static catalog from process memory.
type memoryServiceRepo struct {
	services []models.Service
}

// NewMemoryServiceRepo returns a catalog repository seeded with the spa's
// treatment list.
func NewMemoryServiceRepo() ServiceRepository {
	return &memoryServiceRepo{services: seedServices()}
}

func (r *memoryServiceRepo) GetAll() []models.Service {
	out := make([]models.Service, len(r.services))
	copy(out, r.services)
	return out
}

func (r *memoryServiceRepo) GetByID(id int) (*models.Service, error) {
	for i := range r.services {
		if r.services[i].ID == id {
			svc := r.services[i]
			return &svc, nil
		}
	}
	return nil, ErrServiceNotFound
}

func seedServices() []models.Service {
	return []models.Service{
		{
			ID:          1,
			Title:       "Swedish Massage",
			Description: "Deeply relaxing full-body massage using gentle, flowing strokes to release tension and improve circulation.",
			Duration:    "60-90 min",
			Price:       120,
			Category:    "massage",
			Benefits:    []string{"Reduces muscle tension", "Improves circulation", "Promotes deep relaxation"},
		},
		{
			ID:          2,
			Title:       "Aromatherapy Treatment",
			Description: "Therapeutic treatment combining essential oils with gentle massage techniques for ultimate relaxation.",
			Duration:    "75 min",
			Price:       140,
			Category:    "aromatherapy",
			Benefits:    []string{"Balances mind and body", "Reduces stress", "Enhances mood"},
		},
		{
			ID:          3,
			Title:       "Nordic Facial",
			Description: "Purifying facial treatment inspired by Scandinavian skincare traditions using natural ingredients.",
			Duration:    "60 min",
			Price:       100,
			Category:    "facial",
			Benefits:    []string{"Deep cleansing", "Natural glow", "Anti-aging benefits"},
		},
		{
			ID:          4,
			Title:       "Hot Stone Therapy",
			Description: "Heated basalt stones are placed on key points of your body while warm stone massage melts away tension. A deeply grounding and warming experience.",
			Duration:    "90 min",
			Price:       160,
			Category:    "massage",
			Benefits:    []string{"Deep muscle relaxation", "Improved circulation", "Stress relief"},
		},
		{
			ID:          5,
			Title:       "Body Wrap Treatment",
			Description: "Nourishing body wrap using natural ingredients like seaweed or clay to detoxify, hydrate, and revitalize your skin from head to toe.",
			Duration:    "75 min",
			Price:       130,
			Category:    "body-treatment",
			Benefits:    []string{"Skin detoxification", "Deep hydration", "Improved skin texture"},
		},
		{
			ID:          6,
			Title:       "Couples Retreat",
			Description: "Share a peaceful spa experience together in our dedicated couples suite. Choose from any of our massage treatments in a serene, private setting.",
			Duration:    "90 min",
			Price:       280,
			Category:    "couples",
			Benefits:    []string{"Shared relaxation", "Private suite", "Bonding experience"},
		},
	}
}
