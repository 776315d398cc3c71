package swissengine_client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"astrova/internal/domain"
)

// Client wraps the Swiss Calculation Engine HTTP service. The engine
// owns all astronomical precision; this client only moves JSON.
type Client struct {
	BaseURL    string
	HttpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HttpClient: &http.Client{Timeout: 20 * time.Second},
	}
}

type planetsResponse struct {
	JulianDay float64 `json:"julian_day"`
	Backend   string  `json:"backend"`
	Planets   map[string]struct {
		Longitude      float64 `json:"longitude"`
		SpeedLongitude float64 `json:"speed_longitude"`
		IsRetrograde   bool    `json:"is_retrograde"`
	} `json:"planets"`
}

type housesResponse struct {
	JulianDay float64 `json:"julian_day"`
	Houses    struct {
		Cusps     []float64 `json:"cusps"`
		Ascendant float64   `json:"ascendant"`
		Mc        float64   `json:"mc"`
	} `json:"houses"`
}

func (c *Client) getBytes(ctx context.Context, path string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("swiss engine unreachable: %w", err)
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode != 200 {
		return nil, fmt.Errorf("swiss engine failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	return responseBytes, nil
}

// PlanetaryPositions returns sidereal longitudes and speeds for the
// nine grahas at the given instant. Bodies outside the nine (outer
// planets the engine also reports) are dropped. Ketu rides Rahu's
// speed; the engine only reports its longitude.
func (c *Client) PlanetaryPositions(ctx context.Context, instant time.Time, lat, lon float64) (map[domain.Body]domain.RawPosition, error) {
	params := url.Values{}
	params.Set("datetime", instant.UTC().Format(time.RFC3339))
	params.Set("ayanamsa", "lahiri")
	params.Set("node", "true")
	params.Set("latitude", fmt.Sprintf("%f", lat))
	params.Set("longitude", fmt.Sprintf("%f", lon))

	responseBytes, err := c.getBytes(ctx, "/v1/planets", params)
	if err != nil {
		return nil, err
	}

	decoded := planetsResponse{}
	if err := json.Unmarshal(responseBytes, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode planets response: %w", err)
	}

	out := make(map[domain.Body]domain.RawPosition, len(domain.AllBodies))
	for name, p := range decoded.Planets {
		body, ok := domain.ParseBody(name)
		if !ok {
			continue
		}
		out[body] = domain.RawPosition{
			Longitude: p.Longitude,
			Speed:     p.SpeedLongitude,
		}
	}

	if ketu, ok := out[domain.BodyKetu]; ok && ketu.Speed == 0 {
		if rahu, ok := out[domain.BodyRahu]; ok {
			ketu.Speed = rahu.Speed
			out[domain.BodyKetu] = ketu
		}
	}

	return out, nil
}

// Ascendant returns the eastern-horizon longitude for the instant and
// location.
func (c *Client) Ascendant(ctx context.Context, instant time.Time, lat, lon float64) (float64, error) {
	params := url.Values{}
	params.Set("datetime", instant.UTC().Format(time.RFC3339))
	params.Set("lat", fmt.Sprintf("%f", lat))
	params.Set("lon", fmt.Sprintf("%f", lon))
	params.Set("hsys", "W")

	responseBytes, err := c.getBytes(ctx, "/v1/houses", params)
	if err != nil {
		return 0, err
	}

	decoded := housesResponse{}
	if err := json.Unmarshal(responseBytes, &decoded); err != nil {
		return 0, fmt.Errorf("failed to decode houses response: %w", err)
	}

	return decoded.Houses.Ascendant, nil
}
