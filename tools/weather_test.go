package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWeatherForTest(t *testing.T, geocodeBody string, forecastBody string) *Weather {
	t.Helper()

	geoServer := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "1", req.URL.Query().Get("count"))
		fmt.Fprint(rw, geocodeBody)
	}))
	t.Cleanup(geoServer.Close)

	forecastServer := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "true", req.URL.Query().Get("current_weather"))
		fmt.Fprint(rw, forecastBody)
	}))
	t.Cleanup(forecastServer.Close)

	weather := NewWeather()
	weather.GeocodingURL = geoServer.URL
	weather.ForecastURL = forecastServer.URL
	return weather
}

func TestWeatherExecute(t *testing.T) {
	weather := newWeatherForTest(t,
		`{"results":[{"name":"London","country":"United Kingdom","latitude":51.5,"longitude":-0.12}]}`,
		`{"current_weather":{"temperature":14.2,"windspeed":13.6,"weathercode":2,"time":"2024-05-01T12:00"},"hourly":{"relative_humidity_2m":[71,70]}}`,
	)

	got, err := weather.Execute(context.Background(), map[string]interface{}{"city": "London"})
	require.NoError(t, err)

	assert.Contains(t, got, "Location:     London, United Kingdom")
	assert.Contains(t, got, "Condition:    Partly cloudy")
	assert.Contains(t, got, "Temperature:  14.2C / 57.6F")
	assert.Contains(t, got, "Wind Speed:   13.6 km/h (8.5 mph)")
	assert.Contains(t, got, "Humidity:     71%")
	assert.Contains(t, got, "Observed at:  2024-05-01T12:00")
}

func TestWeatherUnknownCity(t *testing.T) {
	weather := newWeatherForTest(t, `{"results":[]}`, `{}`)

	got, err := weather.Execute(context.Background(), map[string]interface{}{"city": "Atlantis"})
	require.NoError(t, err)
	assert.Equal(t, "Could not find location data for 'Atlantis'. Please check the spelling.", got)
}

func TestWeatherUnknownCode(t *testing.T) {
	weather := newWeatherForTest(t,
		`{"results":[{"name":"Oslo","country":"Norway","latitude":59.9,"longitude":10.8}]}`,
		`{"current_weather":{"temperature":0,"windspeed":0,"weathercode":1234,"time":"2024-05-01T12:00"}}`,
	)

	got, err := weather.Execute(context.Background(), map[string]interface{}{"city": "Oslo"})
	require.NoError(t, err)
	assert.Contains(t, got, "Condition:    Unknown")
	// no hourly data, no humidity line
	assert.NotContains(t, got, "Humidity")
}

func TestWeatherServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	weather := NewWeather()
	weather.GeocodingURL = server.URL
	weather.ForecastURL = server.URL

	got, err := weather.Execute(context.Background(), map[string]interface{}{"city": "London"})
	require.NoError(t, err)
	assert.Contains(t, got, "Weather service error:")
}

func TestWeatherRequiresCity(t *testing.T) {
	weather := NewWeather()

	_, err := weather.Execute(context.Background(), map[string]interface{}{})
	assert.Error(t, err)
}
