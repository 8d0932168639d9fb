package service

import (
	"math/rand"
	"strings"

	"restaurant-digital/restaurant-svc/internal/domain"
)

const (
	SearchLocationID   = "search"
	searchLocationName = "Adresse recherchée"
	searchJitter       = 0.1
)

// searchBase is the point synthetic search results are scattered around.
var searchBase = domain.Coordinates{Lng: 1.2167, Lat: 6.1319}

var popularLocations = []domain.DeliveryLocation{
	{ID: "1", Name: "Centre-ville", Address: "Place de l'Indépendance, Lomé", Coordinates: domain.Coordinates{Lng: 1.2167, Lat: 6.1319}},
	{ID: "2", Name: "Université de Lomé", Address: "Campus universitaire, Lomé", Coordinates: domain.Coordinates{Lng: 1.2194, Lat: 6.1708}},
	{ID: "3", Name: "Marché de Lomé", Address: "Grand Marché, Lomé", Coordinates: domain.Coordinates{Lng: 1.2136, Lat: 6.1256}},
	{ID: "4", Name: "Aéroport", Address: "Aéroport International Gnassingbé Eyadéma", Coordinates: domain.Coordinates{Lng: 1.2531, Lat: 6.1656}},
}

// PopularLocations returns a copy of the fixed delivery candidates.
func PopularLocations() []domain.DeliveryLocation {
	return append([]domain.DeliveryLocation(nil), popularLocations...)
}

// Locator resolves candidates and fabricates search results. There is no
// geocoding behind it.
type Locator struct {
	rnd *rand.Rand
}

func NewLocator(rnd *rand.Rand) *Locator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Locator{rnd: rnd}
}

func (l *Locator) Lookup(id string) (domain.DeliveryLocation, error) {
	for _, location := range popularLocations {
		if location.ID == id {
			return location, nil
		}
	}
	return domain.DeliveryLocation{}, ErrUnknownLocation
}

// Search turns free text into a location near searchBase. Blank text yields
// false.
func (l *Locator) Search(text string) (domain.DeliveryLocation, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.DeliveryLocation{}, false
	}
	return domain.DeliveryLocation{
		ID:      SearchLocationID,
		Name:    searchLocationName,
		Address: text,
		Coordinates: domain.Coordinates{
			Lng: searchBase.Lng + l.rnd.Float64()*searchJitter,
			Lat: searchBase.Lat + l.rnd.Float64()*searchJitter,
		},
	}, true
}

// Selection is the state of one address-picking flow.
type Selection struct {
	locator  *Locator
	selected *domain.DeliveryLocation
}

func (l *Locator) NewSelection() *Selection {
	return &Selection{locator: l}
}

func (s *Selection) Select(id string) error {
	location, err := s.locator.Lookup(id)
	if err != nil {
		return err
	}
	s.selected = &location
	return nil
}

// Search replaces the current choice when text is not blank and leaves it
// untouched otherwise.
func (s *Selection) Search(text string) bool {
	location, ok := s.locator.Search(text)
	if ok {
		s.selected = &location
	}
	return ok
}

func (s *Selection) Selected() *domain.DeliveryLocation {
	if s.selected == nil {
		return nil
	}
	location := *s.selected
	return &location
}

func (s *Selection) Confirm() (domain.DeliveryLocation, error) {
	if s.selected == nil {
		return domain.DeliveryLocation{}, ErrNoDeliveryLocation
	}
	return *s.selected, nil
}
