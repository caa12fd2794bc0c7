package service

import (
	"errors"
	"log"
	"strings"

	"campus-canteen/internal/domain"

	"github.com/lib/pq"
)

// CreateLocationResult says what happened to a create request. Skipped
// outcomes are deliberate no-ops, not failures.
type CreateLocationResult int

const (
	LocationCreated CreateLocationResult = iota
	LocationSkippedBlankName
	LocationSkippedConstraint
)

type LocationService struct {
	repo LocationRepository
}

func NewLocationService(repo LocationRepository) *LocationService {
	return &LocationService{repo: repo}
}

// Create trims the inputs and inserts a new active location. A blank name is
// skipped, and integrity violations from the database are swallowed into an
// explicit skip result. Duplicate names are allowed.
func (s *LocationService) Create(name, shortCode string) (CreateLocationResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return LocationSkippedBlankName, nil
	}

	loc := &domain.Location{
		Name:      name,
		ShortCode: strings.TrimSpace(shortCode),
		IsActive:  true,
	}
	if err := s.repo.CreateLocation(loc); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Class() == "23" {
			log.Printf("[location-svc] skipped location %q: %v", name, err)
			return LocationSkippedConstraint, nil
		}
		return 0, err
	}
	return LocationCreated, nil
}

func (s *LocationService) ListActive() ([]domain.Location, error) {
	return s.repo.ListActiveLocations()
}

func (s *LocationService) ListAll() ([]domain.Location, error) {
	return s.repo.ListAllLocations()
}

// ToggleActive flips is_active in place; an unknown id updates zero rows.
func (s *LocationService) ToggleActive(id int) error {
	return s.repo.ToggleLocation(id)
}

// Delete removes the location. Orders keep their location_id as a dangling
// reference; there is no cascade.
func (s *LocationService) Delete(id int) error {
	return s.repo.DeleteLocation(id)
}
