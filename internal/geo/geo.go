package geo

import (
	"context"
	"errors"

	"github.com/avrillon/roomscout/pkg/domain"
)

// ErrPermissionDenied is returned by providers when the user has not
// granted access to a device position.
var ErrPermissionDenied = errors.New("geo: location permission denied")

// DefaultCoordinate is the fixed Paris reference point used when no
// device position is available.
var DefaultCoordinate = domain.Coordinate{Latitude: 48.866667, Longitude: 2.333333}

// Provider yields the current device position.
type Provider interface {
	Current(ctx context.Context) (domain.Coordinate, error)
}

// Static is a Provider pinned to one coordinate.
type Static struct {
	Coord domain.Coordinate
}

func (s Static) Current(context.Context) (domain.Coordinate, error) {
	return s.Coord, nil
}

// Denied is a Provider that always refuses, mirroring a user who
// declined the permission prompt.
type Denied struct{}

func (Denied) Current(context.Context) (domain.Coordinate, error) {
	return domain.Coordinate{}, ErrPermissionDenied
}

// FromConfig builds a provider from optionally configured coordinates.
// Unset coordinates behave like a denied permission prompt.
func FromConfig(lat, lon *float64) Provider {
	if lat == nil || lon == nil {
		return Denied{}
	}
	return Static{Coord: domain.Coordinate{Latitude: *lat, Longitude: *lon}}
}

// Resolve asks the provider for a position and reports whether one was
// granted. On denial or failure the fixed reference point is returned.
func Resolve(ctx context.Context, p Provider) (domain.Coordinate, bool) {
	if p == nil {
		return DefaultCoordinate, false
	}
	coord, err := p.Current(ctx)
	if err != nil {
		return DefaultCoordinate, false
	}
	return coord, true
}
