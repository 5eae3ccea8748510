package directions

import (
	"context"
	"fmt"

	"fleet-dispatch-service/internal/domain"
	"fleet-dispatch-service/internal/ports"
)

type MockLeg struct {
	From, To domain.Coordinate
	Leg      ports.LegResult
}

// MockDirectionsProvider serves canned leg results for tests. Legs that were
// not registered report ok=false, mirroring a degraded provider.
type MockDirectionsProvider struct {
	m     map[string]ports.LegResult
	Calls int
}

func NewMockDirectionsProvider(legs []MockLeg) *MockDirectionsProvider {
	m := make(map[string]ports.LegResult, len(legs))
	for _, l := range legs {
		m[mockKey(l.From, l.To)] = l.Leg
	}
	return &MockDirectionsProvider{m: m}
}

func (p *MockDirectionsProvider) GetLeg(
	ctx context.Context,
	start, end domain.Coordinate,
) (ports.LegResult, bool) {
	p.Calls++
	leg, ok := p.m[mockKey(start, end)]
	return leg, ok
}

func mockKey(a, b domain.Coordinate) string {
	return fmt.Sprintf("%.6f,%.6f|%.6f,%.6f", a.Lat, a.Lon, b.Lat, b.Lon)
}
