package predict

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistrictRisks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/risk", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"risks":[{"district":"Swat","hazard":"flood","score":0.82,"level":"high"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	risks, err := c.DistrictRisks(context.Background())

	require.NoError(t, err)
	require.Len(t, risks, 1)
	assert.Equal(t, "Swat", risks[0].District)
	assert.Equal(t, "flood", risks[0].Hazard)
	assert.Equal(t, "high", risks[0].Level)
	assert.InDelta(t, 0.82, risks[0].Score, 0.0001)
}

func TestForecastForPassesDistrict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/forecast", r.URL.Path)
		assert.Equal(t, "Chitral", r.URL.Query().Get("district"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"district":"Chitral","condition":"rain","temp_c":14.5,"rain_chance":0.7,"wind_kph":22}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	fc, err := c.ForecastFor(context.Background(), "Chitral")

	require.NoError(t, err)
	assert.Equal(t, "rain", fc.Condition)
	assert.InDelta(t, 14.5, fc.TempC, 0.0001)
}

func TestUpstreamErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.DistrictRisks(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL)
	_, err := c.DistrictRisks(ctx)
	require.Error(t, err)
}
