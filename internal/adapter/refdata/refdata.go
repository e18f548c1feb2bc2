// Package refdata loads the collaborator-supplied reference tables: the
// county identity table, the per-county factor table, and the county-id
// universe. Tables are loaded once at startup and treated as immutable for
// the lifetime of the process.
//
// Row-level problems (malformed FIPS, unparsable factor cells) never abort a
// load: bad cells resolve to the Unavailable sentinel and bad rows are
// skipped, so one dirty row cannot block the rest of the dataset. Only
// file-level failures (missing file, broken CSV structure) are errors.
package refdata

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/impactatlas/county-footprint/internal/domain"
)

// NormalizeFIPS zero-pads a FIPS code to the canonical five characters.
// Returns "" for blank or over-long input.
func NormalizeFIPS(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 5 {
		return ""
	}
	return strings.Repeat("0", 5-len(s)) + s
}

// LoadCounties parses the county reference table:
// fips,county_name,state_name,state_abbr with a header row.
func LoadCounties(r io.Reader) (map[string]domain.CountyRecord, error) {
	rows, err := readCSV(r)
	if err != nil {
		return nil, fmt.Errorf("county table: %w", err)
	}

	counties := make(map[string]domain.CountyRecord, len(rows))
	for _, row := range rows {
		fips := NormalizeFIPS(row["fips"])
		if fips == "" {
			continue
		}
		counties[fips] = domain.CountyRecord{
			FIPS:       fips,
			CountyName: strings.TrimSpace(row["county_name"]),
			StateName:  strings.TrimSpace(row["state_name"]),
			StateAbbr:  strings.TrimSpace(row["state_abbr"]),
		}
	}
	return counties, nil
}

// LoadFactors parses the factor table: fips,EWIF,EF,ACF,SWI with a header
// row. Blank or unparsable cells become Unavailable; coverage is sparse by
// design.
func LoadFactors(r io.Reader) (map[string]domain.FactorRecord, error) {
	rows, err := readCSV(r)
	if err != nil {
		return nil, fmt.Errorf("factor table: %w", err)
	}

	factors := make(map[string]domain.FactorRecord, len(rows))
	for _, row := range rows {
		fips := NormalizeFIPS(row["fips"])
		if fips == "" {
			continue
		}
		factors[fips] = domain.FactorRecord{
			FIPS: fips,
			EWIF: parseFactorCell(row["EWIF"]),
			EF:   parseFactorCell(row["EF"]),
			ACF:  parseFactorCell(row["ACF"]),
			SWI:  parseFactorCell(row["SWI"]),
		}
	}
	return factors, nil
}

// LoadUniverse parses the newline-separated FIPS id list that defines the
// output row set. Duplicates collapse to the first occurrence; order is
// preserved.
func LoadUniverse(r io.Reader) ([]string, error) {
	var universe []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fips := NormalizeFIPS(scanner.Text())
		if fips == "" || seen[fips] {
			continue
		}
		seen[fips] = true
		universe = append(universe, fips)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("universe file: %w", err)
	}
	return universe, nil
}

// LoadCountiesFile, LoadFactorsFile, and LoadUniverseFile are the
// path-taking variants used at startup.

func LoadCountiesFile(path string) (map[string]domain.CountyRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadCounties(f)
}

func LoadFactorsFile(path string) (map[string]domain.FactorRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadFactors(f)
}

func LoadUniverseFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadUniverse(f)
}

// parseFactorCell parses a factor cell, returning Unavailable for blank or
// malformed values. A missing factor is not an error.
func parseFactorCell(s string) domain.Value {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "na") || strings.EqualFold(s, "n/a") {
		return domain.Unavailable
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return domain.Unavailable
	}
	return domain.Avail(f)
}

// readCSV reads a headered CSV into rows of header-keyed field values.
func readCSV(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	all, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(all) < 2 {
		return nil, fmt.Errorf("no data rows")
	}

	header := all[0]
	rows := make([]map[string]string, 0, len(all)-1)
	for _, rec := range all[1:] {
		fields := make(map[string]string, len(header))
		for j, h := range header {
			if j < len(rec) {
				fields[strings.TrimSpace(h)] = rec[j]
			}
		}
		rows = append(rows, fields)
	}
	return rows, nil
}
