// Package geocode turns free-text city queries into geocoded candidates via
// the Nominatim search API.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
	"unicode/utf8"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/prakharDvedi/PanditAI/internal/astro"
	"github.com/prakharDvedi/PanditAI/internal/config"
)

// MinQueryLength is the shortest query that may reach the network. Shorter
// input immediately clears any open suggestion list instead.
const MinQueryLength = 3

const maxResults = 5

// Resolver searches the geocoding service. Results are cached per query and
// outbound calls respect the service's one-request-per-second policy.
type Resolver struct {
	searchURL string
	http      *http.Client
	limiter   *rate.Limiter
	cache     *gocache.Cache
	log       *logrus.Logger
}

// NewResolver creates a resolver against the given search endpoint.
func NewResolver(searchURL string, log *logrus.Logger) *Resolver {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Resolver{
		searchURL: searchURL,
		http:      &http.Client{Timeout: 10 * time.Second},
		limiter:   rate.NewLimiter(rate.Every(time.Second), 1),
		cache:     gocache.New(10*time.Minute, 30*time.Minute),
		log:       log,
	}
}

// Search returns up to five candidates for the query. Queries below
// MinQueryLength return an empty set without touching the network, as do
// transport and parse failures.
func (r *Resolver) Search(ctx context.Context, query string) []astro.LocationSuggestion {
	if utf8.RuneCountInString(query) < MinQueryLength {
		return nil
	}

	if cached, ok := r.cache.Get(query); ok {
		return cached.([]astro.LocationSuggestion)
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return nil
	}

	u := fmt.Sprintf("%s?q=%s&format=json&limit=%d&addressdetails=1",
		r.searchURL, url.QueryEscape(query), maxResults)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", config.UserAgent)

	resp, err := r.http.Do(req)
	if err != nil {
		r.log.WithError(err).WithField("query", query).Warn("geocoding request failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.log.WithField("status", resp.StatusCode).Warn("geocoding error response")
		return nil
	}

	var suggestions []astro.LocationSuggestion
	if err := json.NewDecoder(resp.Body).Decode(&suggestions); err != nil {
		r.log.WithError(err).Warn("geocoding parse failed")
		return nil
	}

	r.cache.Set(query, suggestions, gocache.DefaultExpiration)
	return suggestions
}

// Select converts a chosen suggestion into a resolved location. Selection is
// terminal for a search session: the caller clears its suggestion state.
func Select(s astro.LocationSuggestion) astro.Location {
	lat, _ := strconv.ParseFloat(s.Lat, 64)
	lon, _ := strconv.ParseFloat(s.Lon, 64)
	return astro.Location{City: s.DisplayName, Lat: lat, Lon: lon}
}
