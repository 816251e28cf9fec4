package predict

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the external hazard prediction / weather services. Both
// expose small JSON GET endpoints, so one client serves either base URL.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

type DistrictRisk struct {
	District  string    `json:"district"`
	Hazard    string    `json:"hazard"`
	Score     float64   `json:"score"` // 0..1
	Level     string    `json:"level"` // low | moderate | high | severe
	UpdatedAt time.Time `json:"updated_at"`
}

type Forecast struct {
	District    string  `json:"district"`
	Condition   string  `json:"condition"`
	TempC       float64 `json:"temp_c"`
	RainChance  float64 `json:"rain_chance"`
	WindKph     float64 `json:"wind_kph"`
	RetrievedAt string  `json:"retrieved_at"`
}

// DistrictRisks fetches the current risk score per district.
func (c *Client) DistrictRisks(ctx context.Context) ([]DistrictRisk, error) {
	var out struct {
		Risks []DistrictRisk `json:"risks"`
	}
	if err := c.getJSON(ctx, "/risk", nil, &out); err != nil {
		return nil, err
	}
	return out.Risks, nil
}

// ForecastFor fetches the short-term forecast for one district.
func (c *Client) ForecastFor(ctx context.Context, district string) (*Forecast, error) {
	q := url.Values{}
	q.Set("district", district)

	var out Forecast
	if err := c.getJSON(ctx, "/forecast", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream %s returned %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
