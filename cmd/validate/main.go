// Command validate performs integrity checks over a set of reference-table
// files before they are served: FIPS formatting and uniqueness, factor
// parseability, universe coverage, and a full recompute whose output is
// checked against the engine's invariants (row count, classification
// consistency, formatted/raw agreement).
//
// Usage:
//
//	go run ./cmd/validate \
//	  -county-table data/counties.csv \
//	  -factor-table data/factors.csv \
//	  -universe data/universe.txt
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/impactatlas/county-footprint/internal/adapter/refdata"
	"github.com/impactatlas/county-footprint/internal/domain"
	"github.com/impactatlas/county-footprint/internal/engine"
	"github.com/impactatlas/county-footprint/internal/observability"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	countyTable := flag.String("county-table", "", "path to the county reference CSV")
	factorTable := flag.String("factor-table", "", "path to the factor CSV")
	universeFile := flag.String("universe", "", "path to the county universe file")
	flag.Parse()

	if *countyTable == "" || *factorTable == "" || *universeFile == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*countyTable, *factorTable, *universeFile); code != 0 {
		os.Exit(code)
	}
}

func run(countyTable, factorTable, universeFile string) int {
	fmt.Println("=== Reference Data Integrity Validation ===")
	fmt.Println()

	universe, err := refdata.LoadUniverseFile(universeFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load universe: %v\n", err)
		return 1
	}
	counties, err := refdata.LoadCountiesFile(countyTable)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load county table: %v\n", err)
		return 1
	}
	factors, err := refdata.LoadFactorsFile(factorTable)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load factor table: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateUniverse(universe),
		validateCountyTable(counties, universe),
		validateFactorTable(factors, universe),
		validateRecompute(universe, counties, factors),
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d universe ids, %d county rows, %d factor rows\n",
		len(universe), len(counties), len(factors))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// ── Phase 1: Universe ──
// The universe defines the output row set; ids must be well-formed and unique.

func validateUniverse(universe []string) *phase {
	p := &phase{name: "Phase 1: County Universe"}

	if len(universe) == 0 {
		p.errorf("universe is empty")
		return p
	}

	seen := map[string]bool{}
	for i, fips := range universe {
		if len(fips) != 5 {
			p.errorf("id %d: %q is not 5 characters", i, fips)
		}
		if _, err := strconv.Atoi(fips); err != nil {
			p.errorf("id %d: %q is not numeric", i, fips)
		}
		if seen[fips] {
			p.errorf("id %d: duplicate %q", i, fips)
		}
		seen[fips] = true
	}
	return p
}

// ── Phase 2: County Table ──
// Identity rows must be well-formed; coverage gaps are reported, not fatal.

func validateCountyTable(counties map[string]domain.CountyRecord, universe []string) *phase {
	p := &phase{name: "Phase 2: County Reference Table"}

	for fips, c := range counties {
		if len(fips) != 5 {
			p.errorf("%s: key is not 5 characters", fips)
		}
		if c.CountyName == "" {
			p.errorf("%s: empty county name", fips)
		}
		if len(c.StateAbbr) != 2 {
			p.errorf("%s: state abbr %q is not 2 characters", fips, c.StateAbbr)
		}
	}

	uncovered := 0
	for _, fips := range universe {
		if _, ok := counties[fips]; !ok {
			uncovered++
		}
	}
	if uncovered > 0 {
		fmt.Printf("  Note: %d universe id(s) without reference rows (will render as %q)\n",
			uncovered, domain.UnknownCountyName)
	}
	return p
}

// ── Phase 3: Factor Table ──
// Factors are opaque multipliers but must be finite and non-negative.

func validateFactorTable(factors map[string]domain.FactorRecord, universe []string) *phase {
	p := &phase{name: "Phase 3: Factor Table"}

	inUniverse := map[string]bool{}
	for _, fips := range universe {
		inUniverse[fips] = true
	}

	for fips, rec := range factors {
		checkFactor(p, fips, "EF", rec.EF)
		checkFactor(p, fips, "EWIF", rec.EWIF)
		checkFactor(p, fips, "ACF", rec.ACF)
		checkFactor(p, fips, "SWI", rec.SWI)
		if !inUniverse[fips] {
			p.errorf("%s: factor row for id outside the universe", fips)
		}
	}
	return p
}

func checkFactor(p *phase, fips, name string, v domain.Value) {
	f, ok := v.Float()
	if !ok {
		return // sparse coverage is expected
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		p.errorf("%s: %s is not finite", fips, name)
	}
	if f < 0 {
		p.errorf("%s: %s is negative (%g)", fips, name, f)
	}
}

// ── Phase 4: Recompute Invariants ──
// Runs a real compute and checks the output table against the engine contract.

func validateRecompute(universe []string, counties map[string]domain.CountyRecord, factors map[string]domain.FactorRecord) *phase {
	p := &phase{name: "Phase 4: Recompute Invariants"}

	eng := engine.New(universe, counties, factors,
		slog.New(slog.DiscardHandler), observability.NewMetricsForTesting())

	table, err := eng.Compute(domain.UserInput{
		PowerValue: 100, PowerUnit: domain.PowerKW,
		WaterValue: 5000, WaterUnit: domain.WaterLitersPerMonth,
	}, domain.MetricCarbon, domain.NotationFixed)
	if err != nil {
		p.errorf("compute failed: %v", err)
		return p
	}

	if len(table.Rows) != len(universe) {
		p.errorf("row count %d != universe size %d", len(table.Rows), len(universe))
	}

	seen := map[string]bool{}
	for i, row := range table.Rows {
		if seen[row.FIPS] {
			p.errorf("row %d: duplicate id %q", i, row.FIPS)
		}
		seen[row.FIPS] = true

		checkRowClassification(p, i, row, table.Thresholds)
		checkRowFormatting(p, i, row)
	}
	return p
}

func checkRowClassification(p *phase, i int, row domain.Row, th domain.Thresholds) {
	carbon, ok := row.Carbon.Float()
	if !ok {
		if row.Category != domain.CategoryNoData {
			p.errorf("row %d (%s): unavailable carbon classified %s", i, row.FIPS, row.Category)
		}
		return
	}
	if !th.Valid {
		return
	}

	expected := domain.CategoryHigh
	switch {
	case carbon <= th.P33:
		expected = domain.CategoryLow
	case carbon <= th.P67:
		expected = domain.CategoryMedium
	}
	if row.Category != expected {
		p.errorf("row %d (%s): carbon %g classified %s, expected %s", i, row.FIPS, carbon, row.Category, expected)
	}
	if row.ColorCode != row.Category.ColorCode() {
		p.errorf("row %d (%s): color code %d does not match category %s", i, row.FIPS, row.ColorCode, row.Category)
	}
}

func checkRowFormatting(p *phase, i int, row domain.Row) {
	if got := domain.FormatSig3(row.Carbon); got != row.CarbonDisplay {
		p.errorf("row %d (%s): carbon display %q, expected %q", i, row.FIPS, row.CarbonDisplay, got)
	}
	if got := domain.FormatSig3(row.Water); got != row.WaterDisplay {
		p.errorf("row %d (%s): water display %q, expected %q", i, row.FIPS, row.WaterDisplay, got)
	}
	if got := domain.FormatSig3(row.WaterScarcity); got != row.WaterScarcityDisplay {
		p.errorf("row %d (%s): water scarcity display %q, expected %q", i, row.FIPS, row.WaterScarcityDisplay, got)
	}
}
