// Package charts fetches the rendered divisional chart images and manages
// their lifetime. Assets are materialized as temp files so external viewers
// can open them; every acquired asset must be released.
package charts

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/prakharDvedi/PanditAI/internal/astro"
)

// Styles of the two divisional charts the report shows.
const (
	StyleD1 = "d1" // Lagna chart
	StyleD9 = "d9" // Navamsa chart
)

// Fetcher fetches one chart image. *api.Client satisfies it.
type Fetcher interface {
	ChartImage(ctx context.Context, style string, detail astro.BirthDetail) ([]byte, error)
}

// Asset is an acquired chart image. It owns a temp file holding the PNG and
// must be released when replaced or when its owning view is torn down.
type Asset struct {
	Style string
	Data  []byte
	Path  string

	once sync.Once
}

// Release frees the asset's backing file and drops its bytes. Safe to call
// more than once.
func (a *Asset) Release() {
	if a == nil {
		return
	}
	a.once.Do(func() {
		if a.Path != "" {
			os.Remove(a.Path)
		}
		a.Data = nil
	})
}

// Result holds the outcome of one load. Each panel is independently
// fallible: a nil Asset means that panel renders as unavailable while its
// sibling may still be populated.
type Result struct {
	D1 *Asset
	D9 *Asset
}

// Release frees both assets.
func (r Result) Release() {
	r.D1.Release()
	r.D9.Release()
}

// Loader fetches both chart styles for a birth detail. A loader allows
// exactly one in-flight load; re-invocation releases previously acquired
// assets before acquiring new ones.
type Loader struct {
	fetcher Fetcher
	log     *logrus.Logger

	mu       sync.Mutex
	inFlight bool
	held     Result
}

// NewLoader creates a chart loader over the given fetcher.
func NewLoader(f Fetcher, log *logrus.Logger) *Loader {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Loader{fetcher: f, log: log}
}

// Load fetches the d1 and d9 charts concurrently and resolves only after
// both complete; a failure on one side never short-circuits the other. The
// completions may arrive in either order.
func (l *Loader) Load(ctx context.Context, detail astro.BirthDetail) (Result, error) {
	l.mu.Lock()
	if l.inFlight {
		l.mu.Unlock()
		return Result{}, fmt.Errorf("chart load already in flight")
	}
	l.inFlight = true
	prev := l.held
	l.held = Result{}
	l.mu.Unlock()

	// Old handles go before new ones are acquired.
	prev.Release()

	var result Result
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		result.D1 = l.fetchOne(ctx, StyleD1, detail)
	}()
	go func() {
		defer wg.Done()
		result.D9 = l.fetchOne(ctx, StyleD9, detail)
	}()
	wg.Wait()

	l.mu.Lock()
	l.held = result
	l.inFlight = false
	l.mu.Unlock()
	return result, nil
}

// Close releases whatever the loader still holds. Call when the owning view
// unmounts.
func (l *Loader) Close() {
	l.mu.Lock()
	held := l.held
	l.held = Result{}
	l.mu.Unlock()
	held.Release()
}

func (l *Loader) fetchOne(ctx context.Context, style string, detail astro.BirthDetail) *Asset {
	data, err := l.fetcher.ChartImage(ctx, style, detail)
	if err != nil {
		l.log.WithError(err).WithField("style", style).Warn("chart unavailable")
		return nil
	}

	f, err := os.CreateTemp("", "pandit-chart-"+style+"-*.png")
	if err != nil {
		l.log.WithError(err).Warn("failed to create chart file")
		return &Asset{Style: style, Data: data}
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return &Asset{Style: style, Data: data}
	}
	f.Close()
	return &Asset{Style: style, Data: data, Path: f.Name()}
}
