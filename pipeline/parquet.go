package pipeline

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/parquet-go/parquet-go"
)

// parquetBatchSize is the number of rows read from a row group at a time.
var parquetBatchSize = 256

// parquetRecords turns the rows of a flat parquet file into string records so
// they go through the same column lookups as CSV.
type parquetRecords struct {
	rowGroups []parquet.RowGroup
	rows      parquet.Rows
	buf       []parquet.Row
	n, i      int
	record    []string
}

func newParquetTable(name string, r io.ReaderAt, size int64, required ...string) (*table, error) {
	f, err := parquet.OpenFile(r, size)
	if err != nil {
		return nil, fmt.Errorf("error opening %s parquet file: %w", name, err)
	}

	columns := f.Schema().Columns()
	header := make([]string, len(columns))
	for i, path := range columns {
		if len(path) > 0 {
			header[i] = path[len(path)-1]
		}
	}

	records := &parquetRecords{
		rowGroups: f.RowGroups(),
		buf:       make([]parquet.Row, parquetBatchSize),
		record:    make([]string, len(header)),
	}
	return newTable(name, header, records, required...)
}

// Read returns the next row. The slice is reused by the following call.
func (p *parquetRecords) Read() ([]string, error) {
	for p.i >= p.n {
		if err := p.fill(); err != nil {
			return nil, err
		}
	}

	row := p.buf[p.i]
	p.i++
	for i := range p.record {
		p.record[i] = ""
	}
	for _, v := range row {
		if c := v.Column(); c >= 0 && c < len(p.record) {
			p.record[c] = parquetString(v)
		}
	}
	return p.record, nil
}

func (p *parquetRecords) fill() error {
	for {
		if p.rows == nil {
			if len(p.rowGroups) == 0 {
				return io.EOF
			}
			p.rows = p.rowGroups[0].Rows()
			p.rowGroups = p.rowGroups[1:]
		}

		n, err := p.rows.ReadRows(p.buf)
		p.i, p.n = 0, n
		if errors.Is(err, io.EOF) {
			closeErr := p.rows.Close()
			p.rows = nil
			if closeErr != nil {
				return fmt.Errorf("error closing parquet row group: %w", closeErr)
			}
		} else if err != nil {
			return fmt.Errorf("error reading parquet rows: %w", err)
		}
		if n > 0 {
			return nil
		}
	}
}

// parquetString formats a value the way it would appear in a CSV export,
// nulls are empty.
func parquetString(v parquet.Value) string {
	if v.IsNull() {
		return ""
	}
	switch v.Kind() {
	case parquet.Boolean:
		if v.Boolean() {
			return "1"
		}
		return "0"
	case parquet.Int32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case parquet.Int64:
		return strconv.FormatInt(v.Int64(), 10)
	case parquet.Float:
		return strconv.FormatFloat(float64(v.Float()), 'f', -1, 32)
	case parquet.Double:
		return strconv.FormatFloat(v.Double(), 'f', -1, 64)
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return string(v.ByteArray())
	default:
		return ""
	}
}
