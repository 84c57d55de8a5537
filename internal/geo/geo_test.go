package geo

import (
	"context"
	"testing"

	"github.com/avrillon/roomscout/pkg/domain"
)

func TestResolveGrantedPosition(t *testing.T) {
	p := Static{Coord: domain.Coordinate{Latitude: 45.76, Longitude: 4.83}}
	coord, granted := Resolve(context.Background(), p)
	if !granted {
		t.Fatal("expected granted=true for a static provider")
	}
	if coord.Latitude != 45.76 || coord.Longitude != 4.83 {
		t.Errorf("unexpected coordinate: %+v", coord)
	}
}

func TestResolveDeniedFallsBackToParis(t *testing.T) {
	coord, granted := Resolve(context.Background(), Denied{})
	if granted {
		t.Fatal("expected granted=false when permission is denied")
	}
	if coord != DefaultCoordinate {
		t.Errorf("expected the Paris fallback, got %+v", coord)
	}
}

func TestResolveNilProvider(t *testing.T) {
	coord, granted := Resolve(context.Background(), nil)
	if granted || coord != DefaultCoordinate {
		t.Errorf("expected (Paris, false) for nil provider, got (%+v, %v)", coord, granted)
	}
}

func TestFromConfig(t *testing.T) {
	lat, lon := 48.85, 2.35

	if _, ok := FromConfig(&lat, &lon).(Static); !ok {
		t.Error("expected Static provider when both coordinates are set")
	}
	if _, ok := FromConfig(&lat, nil).(Denied); !ok {
		t.Error("expected Denied provider when longitude is unset")
	}
	if _, ok := FromConfig(nil, nil).(Denied); !ok {
		t.Error("expected Denied provider when both are unset")
	}
}
