package charts

import (
	"context"
	"errors"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prakharDvedi/PanditAI/internal/astro"
)

type fakeFetcher struct {
	fail  map[string]bool
	calls int32
	delay time.Duration
}

func (f *fakeFetcher) ChartImage(ctx context.Context, style string, detail astro.BirthDetail) ([]byte, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.fail[style] {
		return nil, errors.New("render failed")
	}
	return []byte("png:" + style), nil
}

func TestLoadBothSucceed(t *testing.T) {
	l := NewLoader(&fakeFetcher{}, nil)
	defer l.Close()

	result, err := l.Load(context.Background(), astro.DefaultBirthDetail())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if result.D1 == nil || result.D9 == nil {
		t.Fatalf("expected both assets, got %+v", result)
	}
	if string(result.D1.Data) != "png:d1" || string(result.D9.Data) != "png:d9" {
		t.Errorf("asset bytes mixed up: %q / %q", result.D1.Data, result.D9.Data)
	}
	if result.D1.Path == "" {
		t.Error("asset should be backed by a file")
	}
	if _, err := os.Stat(result.D1.Path); err != nil {
		t.Errorf("asset file missing: %v", err)
	}
}

func TestLoadIsolatedFailure(t *testing.T) {
	l := NewLoader(&fakeFetcher{fail: map[string]bool{"d1": true}}, nil)
	defer l.Close()

	result, err := l.Load(context.Background(), astro.DefaultBirthDetail())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if result.D1 != nil {
		t.Error("failed d1 should yield nil asset")
	}
	if result.D9 == nil {
		t.Error("d9 must still resolve when d1 fails")
	}
}

func TestReloadReleasesPreviousAssets(t *testing.T) {
	l := NewLoader(&fakeFetcher{}, nil)
	defer l.Close()

	first, err := l.Load(context.Background(), astro.DefaultBirthDetail())
	if err != nil {
		t.Fatal(err)
	}
	firstPath := first.D1.Path

	second, err := l.Load(context.Background(), astro.DefaultBirthDetail())
	if err != nil {
		t.Fatal(err)
	}
	defer second.Release()

	if _, err := os.Stat(firstPath); !os.IsNotExist(err) {
		t.Errorf("previous asset file should be removed on reload, stat err: %v", err)
	}
	if first.D1.Data != nil {
		t.Error("released asset should drop its bytes")
	}
}

func TestSingleInFlight(t *testing.T) {
	f := &fakeFetcher{delay: 50 * time.Millisecond}
	l := NewLoader(f, nil)
	defer l.Close()

	done := make(chan struct{})
	go func() {
		l.Load(context.Background(), astro.DefaultBirthDetail())
		close(done)
	}()
	time.Sleep(10 * time.Millisecond)

	if _, err := l.Load(context.Background(), astro.DefaultBirthDetail()); err == nil {
		t.Error("second concurrent load should be rejected")
	}
	<-done
}

func TestAssetReleaseIdempotent(t *testing.T) {
	a := &Asset{Style: StyleD1, Data: []byte("x")}
	a.Release()
	a.Release()
	var nilAsset *Asset
	nilAsset.Release() // must not panic
}

func TestLoaderClose(t *testing.T) {
	l := NewLoader(&fakeFetcher{}, nil)
	result, err := l.Load(context.Background(), astro.DefaultBirthDetail())
	if err != nil {
		t.Fatal(err)
	}
	path := result.D9.Path
	l.Close()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("close should remove held asset files, stat err: %v", err)
	}
}
