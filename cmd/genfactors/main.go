// Command genfactors generates mock reference-table fixtures for local
// development and the test suites: a county table, a sparse factor table,
// and a county universe that deliberately includes ids with no coverage.
// It uses the actual domain package to report the tier distribution a
// sample input would produce, so fixtures stay representative.
//
// Usage:
//
//	go run ./cmd/genfactors -out data -n 300 -seed 1
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/impactatlas/county-footprint/internal/domain"
	"github.com/impactatlas/county-footprint/internal/engine"
	"github.com/impactatlas/county-footprint/internal/observability"
)

// Factor value ranges, loosely modeled on real per-county spreads.
const (
	efMin, efMax     = 0.2, 1.1  // kg CO2e per kWh
	ewifMin, ewifMax = 0.5, 8.0  // L per kWh
	acfMin, acfMax   = 0.1, 5.0
	swiMin, swiMax   = 0.05, 2.0
)

// Coverage probabilities: the factor table is sparse by design.
const (
	pCountyHasFactors = 0.85
	pFieldPresent     = 0.90
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	outDir := flag.String("out", "data", "output directory for fixture files")
	n := flag.Int("n", 300, "number of counties to generate")
	seed := flag.Int64("seed", 1, "random seed for reproducible fixtures")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(*seed))

	universe := make([]string, 0, *n)
	counties := make(map[string]domain.CountyRecord, *n)
	factors := make(map[string]domain.FactorRecord, *n)

	for i := 0; i < *n; i++ {
		fips := fmt.Sprintf("%05d", 1000+i*2+1)
		universe = append(universe, fips)
		state := i % 50
		counties[fips] = domain.CountyRecord{
			FIPS:       fips,
			CountyName: fmt.Sprintf("County %03d", i),
			StateName:  fmt.Sprintf("State %02d", state),
			StateAbbr:  stateAbbr(state),
		}
		if rng.Float64() < pCountyHasFactors {
			factors[fips] = domain.FactorRecord{
				FIPS: fips,
				EF:   maybeFactor(rng, efMin, efMax),
				EWIF: maybeFactor(rng, ewifMin, ewifMax),
				ACF:  maybeFactor(rng, acfMin, acfMax),
				SWI:  maybeFactor(rng, swiMin, swiMax),
			}
		}
	}

	if err := writeUniverse(filepath.Join(*outDir, "universe.txt"), universe); err != nil {
		return fmt.Errorf("writing universe: %w", err)
	}
	if err := writeCounties(filepath.Join(*outDir, "counties.csv"), universe, counties); err != nil {
		return fmt.Errorf("writing county table: %w", err)
	}
	if err := writeFactors(filepath.Join(*outDir, "factors.csv"), universe, factors); err != nil {
		return fmt.Errorf("writing factor table: %w", err)
	}

	log.Printf("wrote %d counties (%d with factors) to %s", len(universe), len(factors), *outDir)
	printStats(universe, counties, factors)
	return nil
}

// stateAbbr derives a stable two-letter abbreviation from a state index.
func stateAbbr(state int) string {
	return string([]byte{byte('A' + state%26), byte('A' + state/26%26)})
}

// maybeFactor returns a uniform value in [min, max), or Unavailable with
// probability 1-pFieldPresent.
func maybeFactor(rng *rand.Rand, min, max float64) domain.Value {
	if rng.Float64() >= pFieldPresent {
		return domain.Unavailable
	}
	return domain.Avail(min + rng.Float64()*(max-min))
}

func writeUniverse(path string, universe []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	for _, fips := range universe {
		if _, err := fmt.Fprintln(f, fips); err != nil {
			return err
		}
	}
	return nil
}

func writeCounties(path string, universe []string, counties map[string]domain.CountyRecord) error {
	return writeCSV(path, []string{"fips", "county_name", "state_name", "state_abbr"},
		func(w *csv.Writer) error {
			for _, fips := range universe {
				c := counties[fips]
				if err := w.Write([]string{c.FIPS, c.CountyName, c.StateName, c.StateAbbr}); err != nil {
					return err
				}
			}
			return nil
		})
}

func writeFactors(path string, universe []string, factors map[string]domain.FactorRecord) error {
	return writeCSV(path, []string{"fips", "EWIF", "EF", "ACF", "SWI"},
		func(w *csv.Writer) error {
			for _, fips := range universe {
				rec, ok := factors[fips]
				if !ok {
					continue
				}
				row := []string{rec.FIPS, cell(rec.EWIF), cell(rec.EF), cell(rec.ACF), cell(rec.SWI)}
				if err := w.Write(row); err != nil {
					return err
				}
			}
			return nil
		})
}

func writeCSV(path string, header []string, body func(*csv.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := body(w); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// cell renders a factor value as a CSV cell, blank when unavailable.
func cell(v domain.Value) string {
	f, ok := v.Float()
	if !ok {
		return ""
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// printStats runs a representative compute so a fixture regeneration shows
// how the tier distribution shifted.
func printStats(universe []string, counties map[string]domain.CountyRecord, factors map[string]domain.FactorRecord) {
	eng := engine.New(universe, counties, factors, slog.New(slog.DiscardHandler), observability.NewMetricsForTesting())

	table, err := eng.Compute(domain.UserInput{
		PowerValue: 100, PowerUnit: domain.PowerKW,
		WaterValue: 5000, WaterUnit: domain.WaterLitersPerMonth,
	}, domain.MetricCarbon, domain.NotationFixed)
	if err != nil {
		log.Printf("sample compute failed: %v", err)
		return
	}

	tiers := map[domain.ImpactCategory]int{}
	for _, row := range table.Rows {
		tiers[row.Category]++
	}
	log.Printf("sample carbon tiers at 100 kW: low=%d medium=%d high=%d no_data=%d (p33=%s p67=%s)",
		tiers[domain.CategoryLow], tiers[domain.CategoryMedium],
		tiers[domain.CategoryHigh], tiers[domain.CategoryNoData],
		domain.FormatSig3(domain.Avail(table.Thresholds.P33)),
		domain.FormatSig3(domain.Avail(table.Thresholds.P67)))
}
