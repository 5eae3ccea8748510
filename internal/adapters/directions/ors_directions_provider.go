package directions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"fleet-dispatch-service/internal/domain"
	"fleet-dispatch-service/internal/ports"
)

const (
	// Free-tier ORS allows 40 directions requests per minute; stay under it.
	maxRequestsPerMinute = 38
	rateWindowLength     = time.Minute

	// Cooldown before the single retry after a 429 response.
	throttleCooldown = 61 * time.Second

	requestTimeout = 10 * time.Second
)

// ORSDirectionsProvider implements DirectionsProvider using the
// OpenRouteService directions endpoint.
//
// It coordinates:
//   - Request pacing through a shared RateWindow
//   - A single cooldown-and-retry on HTTP 429
//   - An optional leg cache in front of the wire call
//
// Every failure mode (missing key, timeout, throttling exhausted, malformed
// body) collapses to ok=false; the provider never surfaces an error to the
// enrichment pipeline. The provider is safe for concurrent use.
type ORSDirectionsProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
	profile string
	rate    *RateWindow
	cache   ports.LegCache
	sleep   func(time.Duration)
}

// NewORSDirectionsProvider builds a provider for the given pre-shared key.
// An empty key is not an error: the provider runs permanently degraded and
// reports every leg as unavailable.
func NewORSDirectionsProvider(apiKey string, cache ports.LegCache) *ORSDirectionsProvider {
	if apiKey == "" {
		log.Println("ORS api key not provided, directions degrade to local estimates")
	}

	return &ORSDirectionsProvider{
		session: &http.Client{Timeout: requestTimeout},
		apiKey:  apiKey,
		baseURL: "https://api.openrouteservice.org",
		profile: "driving-car",
		rate:    NewRateWindow(maxRequestsPerMinute, rateWindowLength),
		cache:   cache,
		sleep:   time.Sleep,
	}
}

type directionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type directionsResponse struct {
	Summary *struct {
		Distance *float64 `json:"distance"`
		Duration *float64 `json:"duration"`
	} `json:"summary"`
	Segments []struct {
		Steps []struct {
			Distance    float64 `json:"distance"`
			Duration    float64 `json:"duration"`
			Instruction string  `json:"instruction"`
			Name        string  `json:"name"`
			Type        int     `json:"type"`
		} `json:"steps"`
	} `json:"segments"`
}

// GetLeg fetches turn-by-turn directions for one leg.
// ok=false means "use the local estimate" and is a normal outcome.
func (o *ORSDirectionsProvider) GetLeg(
	ctx context.Context,
	start, end domain.Coordinate,
) (ports.LegResult, bool) {
	if o.apiKey == "" {
		return ports.LegResult{}, false
	}

	if o.cache != nil {
		if leg, ok, err := o.cache.Get(ctx, start, end); err != nil {
			log.Printf("leg cache read failed: %v", err)
		} else if ok {
			return leg, true
		}
	}

	o.rate.Acquire()

	leg, err := o.fetchLeg(ctx, start, end)
	if err != nil {
		var he *httpStatusError
		if !errors.As(err, &he) || he.Code != http.StatusTooManyRequests {
			log.Printf("directions request failed: %v", err)
			return ports.LegResult{}, false
		}

		// Throttled: cool down once, then retry exactly once more.
		log.Printf("directions throttled, waiting %s before retry", throttleCooldown)
		o.sleep(throttleCooldown)
		o.rate.Acquire()

		leg, err = o.fetchLeg(ctx, start, end)
		if err != nil {
			log.Printf("directions retry failed: %v", err)
			return ports.LegResult{}, false
		}
	}

	if o.cache != nil {
		if err := o.cache.Put(ctx, start, end, leg); err != nil {
			log.Printf("leg cache write failed: %v", err)
		}
	}

	return leg, true
}

func (o *ORSDirectionsProvider) fetchLeg(
	ctx context.Context,
	start, end domain.Coordinate,
) (ports.LegResult, error) {
	endpoint := o.baseURL + "/v2/directions/" + o.profile + "/json"

	// ORS expects coordinates in [longitude, latitude] order.
	payload, err := json.Marshal(directionsRequest{
		Coordinates: [][]float64{start.LonLat(), end.LonLat()},
	})
	if err != nil {
		return ports.LegResult{}, err
	}

	req, err := o.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return ports.LegResult{}, err
	}

	resp, err := o.do(req)
	if err != nil {
		return ports.LegResult{}, err
	}
	defer resp.Body.Close()

	var dr directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return ports.LegResult{}, err
	}

	// A well-formed leg must carry a summary with both metrics.
	if dr.Summary == nil || dr.Summary.Distance == nil || dr.Summary.Duration == nil {
		return ports.LegResult{}, errors.New("directions response missing summary")
	}

	leg := ports.LegResult{
		DistanceMeters:  *dr.Summary.Distance,
		DurationSeconds: *dr.Summary.Duration,
	}
	for _, seg := range dr.Segments {
		for _, s := range seg.Steps {
			leg.Steps = append(leg.Steps, domain.DirectionStep{
				DistanceMeters:  s.Distance,
				DurationSeconds: s.Duration,
				Instruction:     s.Instruction,
				Name:            s.Name,
				Maneuver:        maneuverName(s.Type),
			})
		}
	}

	return leg, nil
}

// ORS encodes maneuver types as integers; map the common ones to names so
// callers need no knowledge of the provider's encoding.
func maneuverName(t int) string {
	switch t {
	case 0:
		return "turn-left"
	case 1:
		return "turn-right"
	case 2:
		return "turn-sharp-left"
	case 3:
		return "turn-sharp-right"
	case 4:
		return "turn-slight-left"
	case 5:
		return "turn-slight-right"
	case 6:
		return "continue"
	case 7:
		return "enter-roundabout"
	case 8:
		return "exit-roundabout"
	case 9:
		return "u-turn"
	case 10:
		return "goal"
	case 11:
		return "depart"
	case 12:
		return "keep-left"
	case 13:
		return "keep-right"
	default:
		return "unknown"
	}
}
