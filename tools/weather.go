package tools

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/tidwall/gjson"

	infoagent "github.com/muhammadjavediqbal/info-agent-langraph"
)

const (
	defaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	defaultForecastURL  = "https://api.open-meteo.com/v1/forecast"
	weatherTimeout      = 10 * time.Second
)

// wmoCodes maps WMO weather codes to human-readable conditions.
var wmoCodes = map[int64]string{
	0: "Clear sky", 1: "Mainly clear", 2: "Partly cloudy", 3: "Overcast",
	45: "Foggy", 48: "Icy fog",
	51: "Light drizzle", 53: "Drizzle", 55: "Heavy drizzle",
	61: "Light rain", 63: "Rain", 65: "Heavy rain",
	71: "Light snow", 73: "Snow", 75: "Heavy snow", 77: "Snow grains",
	80: "Light showers", 81: "Showers", 82: "Violent showers",
	85: "Snow showers", 86: "Heavy snow showers",
	95: "Thunderstorm", 96: "Thunderstorm with hail", 99: "Heavy thunderstorm with hail",
}

type weatherArgs struct {
	City string `json:"city" jsonschema_description:"City name, e.g. 'London', 'Karachi', 'New York'"`
}

// Weather reports current conditions for a city via Open-Meteo, which
// needs no API key. The URLs are fields so tests can point them at a
// local server.
type Weather struct {
	GeocodingURL string
	ForecastURL  string
	httpClient   *http.Client
}

func NewWeather() *Weather {
	return &Weather{
		GeocodingURL: defaultGeocodingURL,
		ForecastURL:  defaultForecastURL,
		httpClient:   &http.Client{Timeout: weatherTimeout},
	}
}

func (w *Weather) Name() string {
	return "get_weather"
}

func (w *Weather) Description() string {
	return "Get current weather for a city"
}

func (w *Weather) StatusMessage() string {
	return "Checking the weather"
}

func (w *Weather) OpenAI() []openai.ChatCompletionToolParam {
	return []openai.ChatCompletionToolParam{
		{
			Type: openai.F(openai.ChatCompletionToolTypeFunction),
			Function: openai.F(openai.FunctionDefinitionParam{
				Name:        openai.F(w.Name()),
				Description: openai.F(w.Description()),
				Parameters:  openai.F(infoagent.FunctionSchema[weatherArgs]()),
			}),
		},
	}
}

// Execute resolves the city and fetches current conditions. Lookup and
// service failures come back as readable strings so the model can
// acknowledge them.
func (w *Weather) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	city, ok := args["city"].(string)
	if !ok || strings.TrimSpace(city) == "" {
		return "", fmt.Errorf("city argument is required")
	}

	location, err := w.geocode(ctx, city)
	if err != nil {
		return fmt.Sprintf("Weather service error: %v", err), nil
	}
	if location == nil {
		return fmt.Sprintf("Could not find location data for '%s'. Please check the spelling.", city), nil
	}

	data, err := w.get(ctx, w.ForecastURL, url.Values{
		"latitude":        {fmt.Sprintf("%g", location.lat)},
		"longitude":       {fmt.Sprintf("%g", location.lon)},
		"current_weather": {"true"},
		"hourly":          {"relative_humidity_2m"},
		"forecast_days":   {"1"},
	})
	if err != nil {
		return fmt.Sprintf("Weather service error: %v", err), nil
	}

	current := data.Get("current_weather")
	if !current.Exists() {
		return fmt.Sprintf("Weather data unavailable for '%s'.", city), nil
	}

	tempC := current.Get("temperature").Float()
	tempF := math.Round((tempC*9/5+32)*10) / 10
	windKph := math.Round(current.Get("windspeed").Float()*10) / 10
	windMph := math.Round(windKph*0.621371*10) / 10

	condition := "Unknown"
	if name, ok := wmoCodes[current.Get("weathercode").Int()]; ok {
		condition = name
	}

	obsTime := "N/A"
	if t := current.Get("time"); t.Exists() {
		obsTime = t.String()
	}

	// best-effort humidity from the first hourly value
	humidity := ""
	if h := data.Get("hourly.relative_humidity_2m.0"); h.Exists() {
		humidity = fmt.Sprintf("\nHumidity:     %d%%", h.Int())
	}

	return fmt.Sprintf(
		"Location:     %s, %s\n"+
			"Condition:    %s\n"+
			"Temperature:  %gC / %gF\n"+
			"Wind Speed:   %g km/h (%g mph)"+
			"%s\n"+
			"Observed at:  %s",
		location.name, location.country, condition, tempC, tempF, windKph, windMph, humidity, obsTime,
	), nil
}

type geoLocation struct {
	name    string
	country string
	lat     float64
	lon     float64
}

// geocode resolves a city name via the Open-Meteo geocoding API. A nil
// location with nil error means no match.
func (w *Weather) geocode(ctx context.Context, city string) (*geoLocation, error) {
	data, err := w.get(ctx, w.GeocodingURL, url.Values{
		"name":     {city},
		"count":    {"1"},
		"language": {"en"},
		"format":   {"json"},
	})
	if err != nil {
		return nil, err
	}

	first := data.Get("results.0")
	if !first.Exists() {
		return nil, nil
	}
	return &geoLocation{
		name:    first.Get("name").String(),
		country: first.Get("country").String(),
		lat:     first.Get("latitude").Float(),
		lon:     first.Get("longitude").Float(),
	}, nil
}

func (w *Weather) get(ctx context.Context, rawURL string, params url.Values) (gjson.Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL+"?"+params.Encode(), nil)
	if err != nil {
		return gjson.Result{}, err
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return gjson.Result{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return gjson.Result{}, fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, err
	}
	return gjson.ParseBytes(body), nil
}
