package pipeline

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

var errMissingValue = errors.New("missing value")

// recordReader yields one record per call and io.EOF at the end. csv.Reader
// is one.
type recordReader interface {
	Read() ([]string, error)
}

// table reads records with a known header and finds columns by name.
type table struct {
	name    string
	records recordReader
	columns map[string]int
	// row counts the records read so far
	row int
	// hasHeaderLine shifts reported positions by one for text files
	hasHeaderLine bool
}

func newTable(name string, header []string, records recordReader, required ...string) (*table, error) {
	t := &table{
		name:    name,
		records: records,
		columns: make(map[string]int),
	}
	for i, h := range header {
		// files saved from Excel start with a byte order mark
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, found := t.columns[h]; !found {
			t.columns[h] = i
		}
	}

	missing := make([]string, 0)
	for _, c := range required {
		if _, found := t.columns[c]; !found {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("error finding required columns in %s: %s", name, strings.Join(missing, ", "))
	}
	return t, nil
}

func newCSVTable(name string, r io.Reader, required ...string) (*table, error) {
	csvReader := csv.NewReader(r)
	csvReader.ReuseRecord = true

	header, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading %s CSV file header: %w", name, err)
	}
	// the header is reused by the next Read
	header = append([]string(nil), header...)

	t, err := newTable(name, header, csvReader, required...)
	if err != nil {
		return nil, err
	}
	t.hasHeaderLine = true
	return t, nil
}

// where names the current record in error messages.
func (t *table) where() string {
	if t.hasHeaderLine {
		return fmt.Sprintf("line %d of %s", t.row+1, t.name)
	}
	return fmt.Sprintf("row %d of %s", t.row, t.name)
}

// alias makes column `name` readable through `as` when the file doesn't have
// a column called `as`.
func (t *table) alias(as, name string) {
	if _, found := t.columns[as]; found {
		return
	}
	if idx, found := t.columns[name]; found {
		t.columns[as] = idx
	}
}

func (t *table) has(column string) bool {
	_, found := t.columns[column]
	return found
}

// next returns the next record. The slice is reused by the following call.
func (t *table) next() ([]string, error) {
	record, err := t.records.Read()
	if errors.Is(err, io.EOF) {
		return nil, err
	}
	t.row++
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", t.where(), err)
	}
	return record, nil
}

// str returns the trimmed value of a column, "" for the missing markers pandas
// and R write (NA, NaN).
func (t *table) str(record []string, column string) string {
	idx, found := t.columns[column]
	if !found || idx >= len(record) {
		return ""
	}
	v := strings.TrimSpace(record[idx])
	switch v {
	case "NA", "NaN", "nan", "None":
		return ""
	}
	return v
}

// num parses a numeric column. Missing values return errMissingValue.
func (t *table) num(record []string, column string) (float64, error) {
	v := t.str(record, column)
	if v == "" {
		return 0, errMissingValue
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: bad %s value '%s': %w", t.where(), column, v, err)
	}
	return f, nil
}

// count parses a numeric column that is summed, missing values count as 0.
func (t *table) count(record []string, column string) (int, error) {
	f, err := t.num(record, column)
	if errors.Is(err, errMissingValue) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return int(math.Round(f)), nil
}
