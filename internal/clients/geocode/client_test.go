package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"elaundry/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeocoder(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(utils.GeocodeConfig{BaseURL: server.URL})
}

func TestClient_Reverse(t *testing.T) {
	client := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
		assert.Equal(t, "-6.9175", r.URL.Query().Get("lat"))

		w.Write([]byte(`{
			"lat": "-6.9175",
			"lon": "107.6191",
			"display_name": "Jl. Merdeka, Bandung, Indonesia",
			"address": {"road": "Jl. Merdeka", "city": "Bandung", "country": "Indonesia"}
		}`))
	})

	place, err := client.Reverse(context.Background(), -6.9175, 107.6191)
	require.NoError(t, err)

	assert.Equal(t, "Jl. Merdeka", place.Road)
	assert.Equal(t, "Bandung", place.City)
	assert.Equal(t, "Indonesia", place.Country)
	assert.Equal(t, -6.9175, place.Latitude)
}

func TestClient_Reverse_TownFallback(t *testing.T) {
	client := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"address": {"town": "Lembang", "country": "Indonesia"}}`))
	})

	place, err := client.Reverse(context.Background(), -6.8, 107.6)
	require.NoError(t, err)
	assert.Equal(t, "Lembang", place.City)
}

func TestClient_Search(t *testing.T) {
	t.Run("first result wins", func(t *testing.T) {
		client := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search", r.URL.Path)
			assert.Equal(t, "Bandung", r.URL.Query().Get("q"))

			w.Write([]byte(`[
				{"lat": "-6.9175", "lon": "107.6191", "display_name": "Bandung, Indonesia"},
				{"lat": "52.1", "lon": "5.2", "display_name": "Bandung, Netherlands"}
			]`))
		})

		place, err := client.Search(context.Background(), "Bandung")
		require.NoError(t, err)
		require.NotNil(t, place)
		assert.Equal(t, -6.9175, place.Latitude)
		assert.Equal(t, "Bandung, Indonesia", place.DisplayName)
	})

	t.Run("no match returns nil", func(t *testing.T) {
		client := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		})

		place, err := client.Search(context.Background(), "nowhere at all")
		require.NoError(t, err)
		assert.Nil(t, place)
	})
}
