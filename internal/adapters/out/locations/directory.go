// Package locations provides the static location directory.
//
// Locations are reference data maintained by the network planning team and
// change a few times a year at most, so they ship with the binary instead of
// living in the database.
package locations

import (
	"context"
	"sort"

	"fulfilment/internal/core/domain/model/location"
	"fulfilment/internal/pkg/errs"
)

type seed struct {
	identification        string
	maxNumberOfWarehouses int
	maxCapacity           int
}

var defaultSeeds = []seed{
	{"ZWOLLE-001", 1, 40},
	{"AMSTERDAM-001", 5, 100},
	{"TILBURG-001", 1, 40},
}

// Directory resolves location identifiers against an in-memory catalogue.
// It implements ports.LocationResolver.
type Directory struct {
	locations map[string]location.Location
}

// NewDirectory creates a directory with the built-in location catalogue.
func NewDirectory() (*Directory, error) {
	directory := &Directory{
		locations: make(map[string]location.Location, len(defaultSeeds)),
	}

	for _, s := range defaultSeeds {
		loc, err := location.NewLocation(s.identification, s.maxNumberOfWarehouses, s.maxCapacity)
		if err != nil {
			return nil, err
		}
		directory.locations[s.identification] = loc
	}

	return directory, nil
}

// Resolve returns the location behind the identifier, or
// errs.ObjectNotFoundError when the directory does not know it.
func (d *Directory) Resolve(_ context.Context, identifier string) (location.Location, error) {
	loc, ok := d.locations[identifier]
	if !ok {
		return location.Location{}, errs.NewObjectNotFoundError("identifier", identifier)
	}

	return loc, nil
}

// GetAll returns every location, sorted by identifier for stable output.
func (d *Directory) GetAll(_ context.Context) ([]location.Location, error) {
	all := make([]location.Location, 0, len(d.locations))
	for _, loc := range d.locations {
		all = append(all, loc)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].Identification() < all[j].Identification()
	})

	return all, nil
}
