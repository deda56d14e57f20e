package repository

import "lawncare/entities"

// ProfileRepository stores the lawn profile, fertilizers and wages.
// Singleton getters return nil when the row has not been seeded.
type ProfileRepository interface {
	GetProfile() (*entities.LawnProfile, error)
	SaveProfile(p *entities.LawnProfile) error
	ListFertilizers() ([]entities.Fertilizer, error)
	FindFertilizer(id string) (*entities.Fertilizer, error)
	ActiveFertilizer() (*entities.Fertilizer, error)
	SaveFertilizer(f *entities.Fertilizer) error
	GetWages() (*entities.Wages, error)
	SaveWages(w *entities.Wages) error
}
