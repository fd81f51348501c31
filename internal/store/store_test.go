package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/prakharDvedi/PanditAI/internal/astro"
)

func sampleSnapshot() *astro.Snapshot {
	return &astro.Snapshot{
		Meta: astro.SnapshotMeta{
			DestinyScore: 81,
			FactSheet:    "Ascendant Leo. Sun in 10th house.",
		},
		Reading: astro.ReadingByKey{
			"career": "Strong professional yoga.",
			"love":   "Venus favors partnership.",
		},
		Dasha: astro.DashaData{Timeline: []astro.DashaPeriod{
			{Lord: "Venus", Start: "2015-03-01", End: "2035-03-01"},
		}},
		Yogas: []astro.Yoga{{Name: "Gaja Kesari", Desc: "Moon-Jupiter angle."}},
	}
}

func TestCacheSaveThenLoad(t *testing.T) {
	cache := NewCache(NewMemoryStore())
	request := astro.DefaultBirthDetail()
	saved := sampleSnapshot()

	if err := cache.Save(request, saved); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := cache.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(loaded, saved) {
		t.Errorf("loaded snapshot differs from saved:\n got %+v\nwant %+v", loaded, saved)
	}

	gotReq, err := cache.LoadRequest()
	if err != nil {
		t.Fatalf("load request failed: %v", err)
	}
	if !reflect.DeepEqual(*gotReq, request) {
		t.Errorf("loaded request differs from saved: %+v", gotReq)
	}
}

func TestCacheOverwrites(t *testing.T) {
	cache := NewCache(NewMemoryStore())
	first := sampleSnapshot()
	if err := cache.Save(astro.DefaultBirthDetail(), first); err != nil {
		t.Fatal(err)
	}

	second := sampleSnapshot()
	second.Meta.DestinyScore = 12
	if err := cache.Save(astro.DefaultBirthDetail(), second); err != nil {
		t.Fatal(err)
	}

	loaded, err := cache.Load()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Meta.DestinyScore != 12 {
		t.Errorf("expected overwritten score 12, got %v", loaded.Meta.DestinyScore)
	}
}

func TestCacheLoadEmpty(t *testing.T) {
	cache := NewCache(NewMemoryStore())
	if _, err := cache.Load(); err != ErrNotFound {
		t.Errorf("empty cache should return ErrNotFound, got %v", err)
	}
	if _, err := cache.LoadRequest(); err != ErrNotFound {
		t.Errorf("empty request slot should return ErrNotFound, got %v", err)
	}
}

func TestCacheLoadCorrupted(t *testing.T) {
	mem := NewMemoryStore()
	cache := NewCache(mem)
	mem.Corrupt(KeyPrediction, []byte("{not json"))
	mem.Corrupt(KeyBirthDetails, []byte("[['"))

	if _, err := cache.Load(); err != ErrNotFound {
		t.Errorf("corrupted snapshot should read as absent, got %v", err)
	}
	if _, err := cache.LoadRequest(); err != ErrNotFound {
		t.Errorf("corrupted request should read as absent, got %v", err)
	}
}

func TestCacheClear(t *testing.T) {
	cache := NewCache(NewMemoryStore())
	if err := cache.Save(astro.DefaultBirthDetail(), sampleSnapshot()); err != nil {
		t.Fatal(err)
	}
	if err := cache.Clear(); err != nil {
		t.Fatal(err)
	}
	if _, err := cache.Load(); err != ErrNotFound {
		t.Errorf("cleared cache should be empty, got %v", err)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("failed to create file store: %v", err)
	}

	cache := NewCache(fs)
	saved := sampleSnapshot()
	if err := cache.Save(astro.DefaultBirthDetail(), saved); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	// A second cache over the same directory sees the write: this is the
	// cross-navigation hydration path.
	reopened, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	loaded, err := NewCache(reopened).Load()
	if err != nil {
		t.Fatalf("load after reopen failed: %v", err)
	}
	if !reflect.DeepEqual(loaded, saved) {
		t.Errorf("snapshot did not survive reopen")
	}
}

func TestFileStoreCorruptedFile(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, KeyPrediction+".json"), []byte("garbage"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewCache(fs).Load(); err != ErrNotFound {
		t.Errorf("corrupted file should read as absent, got %v", err)
	}
}
