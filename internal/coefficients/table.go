package coefficients

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// averageKey is the synthetic row added to the forage and concentrate tables.
const averageKey = "average"

// table is a keyed CSV table of numeric columns. Empty cells are missing
// values and are simply absent from the row map.
type table struct {
	name    string
	columns []string
	rows    map[string]map[string]float64
	text    map[string]map[string]string
	order   []string
}

// parseTable reads a CSV whose first column is the row key. Numeric cells are
// accepted with either '.' or ',' as the decimal separator. Cells that are
// neither empty nor numeric are kept as text, so unit columns such as
// upstream_fu survive. Rows with an empty key or a ragged length are skipped.
func parseTable(name string, r io.Reader) (*table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read %s header: %w", name, err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("%s table needs a key column and at least one value column", name)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	t := &table{
		name:    name,
		columns: header[1:],
		rows:    make(map[string]map[string]float64),
		text:    make(map[string]map[string]string),
	}

	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			log().Warn().Err(err).Str("table", name).Int("line", line).Msg("skipping malformed row")
			continue
		}
		if len(record) != len(header) {
			log().Warn().Str("table", name).Int("line", line).Int("fields", len(record)).Msg("skipping row with wrong field count")
			continue
		}

		key := strings.TrimSpace(record[0])
		if key == "" {
			continue
		}
		values := make(map[string]float64, len(t.columns))
		texts := make(map[string]string)
		for i, col := range t.columns {
			cell := strings.TrimSpace(record[i+1])
			if cell == "" {
				continue
			}
			if v, ok := parseNumber(cell); ok {
				values[col] = v
			} else {
				texts[col] = cell
			}
		}
		if _, dup := t.rows[key]; !dup {
			t.order = append(t.order, key)
		}
		t.rows[key] = values
		t.text[key] = texts
	}

	if len(t.rows) == 0 {
		return nil, fmt.Errorf("%s table has no rows", name)
	}
	return t, nil
}

// parseNumber parses s as a float64, accepting a comma decimal separator.
func parseNumber(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// addAverage appends the "average" row: the mean of every numeric column over
// the rows that have a value for it. A column with no values stays missing.
func (t *table) addAverage() {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for key, row := range t.rows {
		if key == averageKey {
			continue
		}
		for col, v := range row {
			sums[col] += v
			counts[col]++
		}
	}

	avg := make(map[string]float64, len(sums))
	for col, sum := range sums {
		avg[col] = sum / float64(counts[col])
	}
	if _, ok := t.rows[averageKey]; !ok {
		t.order = append(t.order, averageKey)
	}
	t.rows[averageKey] = avg
	t.text[averageKey] = map[string]string{}
}

// value returns the numeric cell for key and column.
func (t *table) value(country, key, column string) (float64, error) {
	row, ok := t.rows[key]
	if !ok {
		return 0, &LookupError{Country: country, Table: t.name, Key: key}
	}
	v, ok := row[column]
	if !ok {
		return 0, &LookupError{Country: country, Table: t.name, Key: key, Column: column}
	}
	return v, nil
}

// keys returns the row keys in file order, with "average" last when present.
func (t *table) keys() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// flatTable is a key to value mapping decoded from a JSON object. Null values
// are treated as missing.
type flatTable struct {
	name   string
	values map[string]float64
}

func newFlatTable(name string, raw map[string]*float64) *flatTable {
	ft := &flatTable{name: name, values: make(map[string]float64, len(raw))}
	for k, v := range raw {
		if v == nil {
			log().Debug().Str("table", name).Str("key", k).Msg("null value treated as missing")
			continue
		}
		ft.values[k] = *v
	}
	return ft
}

func (ft *flatTable) value(country, key string) (float64, error) {
	v, ok := ft.values[key]
	if !ok {
		return 0, &LookupError{Country: country, Table: ft.name, Key: key}
	}
	return v, nil
}

func (ft *flatTable) keys() []string {
	out := make([]string, 0, len(ft.values))
	for k := range ft.values {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
