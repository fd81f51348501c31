package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/prakharDvedi/PanditAI/internal/api"
	"github.com/prakharDvedi/PanditAI/internal/astro"
	"github.com/prakharDvedi/PanditAI/internal/config"
	"github.com/prakharDvedi/PanditAI/internal/geocode"
)

var predictFlags struct {
	name string
	date string
	time string
	city string
	lat  float64
	lon  float64
}

// PredictCmd fetches a fresh reading and caches it for the report commands.
var PredictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Calculate a reading and cache it",
	Long: `Calculate a full reading for the given birth details and cache it locally.

The cached reading feeds 'pandit report', 'pandit charts' and 'pandit chat'
until the next predict overwrites it.

Examples:
  pandit predict --name Asha --date 1995-01-01 --time 12:00 --city Delhi
  pandit predict --date 1988-07-21 --time 04:30 --lat 19.076 --lon 72.8777`,
	RunE: runPredict,
}

func init() {
	PredictCmd.Flags().StringVar(&predictFlags.name, "name", "", "Name on the reading")
	PredictCmd.Flags().StringVar(&predictFlags.date, "date", "", "Birth date (YYYY-MM-DD)")
	PredictCmd.Flags().StringVar(&predictFlags.time, "time", "", "Birth time (HH:MM)")
	PredictCmd.Flags().StringVar(&predictFlags.city, "city", "", "Birth place, resolved via geocoding")
	PredictCmd.Flags().Float64Var(&predictFlags.lat, "lat", 0, "Birth latitude (overrides --city)")
	PredictCmd.Flags().Float64Var(&predictFlags.lon, "lon", 0, "Birth longitude (overrides --city)")
	PredictCmd.MarkFlagRequired("date")
	PredictCmd.MarkFlagRequired("time")
}

func runPredict(cmd *cobra.Command, args []string) error {
	log := newLogger()
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	detail, err := buildDetail(cfg, log, predictFlags.name, predictFlags.date,
		predictFlags.time, predictFlags.city, predictFlags.lat, predictFlags.lon)
	if err != nil {
		return err
	}

	client := api.New(cfg.APIBaseURL, log)
	ctx, cancel := context.WithTimeout(context.Background(), api.DefaultTimeout)
	defer cancel()

	fmt.Println("🔮 Consulting the stars...")
	snap, err := client.Calculate(ctx, detail, cfg.Ayanamsa)
	if err != nil {
		return fmt.Errorf("calculation failed: %w", err)
	}

	cache, err := openCache()
	if err != nil {
		return err
	}
	if err := cache.Save(detail, snap); err != nil {
		return fmt.Errorf("failed to cache reading: %w", err)
	}

	fmt.Println()
	fmt.Printf("✨ Destiny score: %.0f/100\n", snap.Meta.DestinyScore)
	if snap.Meta.AscendantSign != "" {
		fmt.Printf("   Ascendant: %s\n", snap.Meta.AscendantSign)
	}
	if snap.Meta.Insight != "" {
		fmt.Printf("   %s\n", snap.Meta.Insight)
	}
	fmt.Println()
	fmt.Println("Run 'pandit report' to read the full analysis.")
	return nil
}

// buildDetail assembles a BirthDetail from flag values, geocoding the city
// when explicit coordinates are absent.
func buildDetail(cfg *config.Config, log *logrus.Logger, name, date, timeStr, city string, lat, lon float64) (astro.BirthDetail, error) {
	detail := astro.DefaultBirthDetail()

	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return detail, fmt.Errorf("invalid --date %q, want YYYY-MM-DD", date)
	}
	parts := strings.SplitN(timeStr, ":", 2)
	if len(parts) != 2 {
		return detail, fmt.Errorf("invalid --time %q, want HH:MM", timeStr)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return detail, fmt.Errorf("invalid --time %q, want HH:MM", timeStr)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return detail, fmt.Errorf("invalid --time %q, want HH:MM", timeStr)
	}

	if lat == 0 && lon == 0 && city != "" {
		resolver := geocode.NewResolver(cfg.GeocoderURL, log)
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		suggestions := resolver.Search(ctx, city)
		if len(suggestions) == 0 {
			return detail, fmt.Errorf("could not resolve city %q", city)
		}
		loc := geocode.Select(suggestions[0])
		lat, lon = loc.Lat, loc.Lon
		fmt.Printf("📍 %s → %.4f, %.4f\n", city, lat, lon)
	}

	return detail.With(func(b *astro.BirthDetail) {
		b.Name = name
		b.Year = d.Year()
		b.Month = int(d.Month())
		b.Day = d.Day()
		b.Hour = hour
		b.Minute = minute
		if lat != 0 || lon != 0 {
			b.Latitude = lat
			b.Longitude = lon
		}
		b.Timezone = cfg.Timezone
	}), nil
}
