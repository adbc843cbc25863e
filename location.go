package hraccess

import (
	"context"

	"gorm.io/gorm"
)

// CreateLocation creates a new location.
func (s *Service) CreateLocation(ctx context.Context, actorID *uint, name string) (*Location, error) {
	if name == "" {
		return nil, ErrInvalidInput
	}

	loc := &Location{Name: name}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(loc).Error; err != nil {
			return err
		}
		return appendHistory(tx, EntityLocation, loc.ID, ActionCreate, nil, loc, actorID)
	})
	if err != nil {
		return nil, err
	}
	return loc, nil
}

// ListLocations retrieves all locations.
func (s *Service) ListLocations(ctx context.Context) ([]Location, error) {
	var locs []Location
	if err := s.db.WithContext(ctx).Find(&locs).Error; err != nil {
		return nil, err
	}
	return locs, nil
}
