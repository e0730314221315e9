// journal/csv.go
package journal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/rustyeddy/stocktracker/market"
	"github.com/rustyeddy/stocktracker/report"
)

const (
	filePrefix    = "portfolio_"
	fileTimestamp = "2006-01-02_15-04-05"
	totalLabel    = "Total Investment"
)

var header = []string{"Stock", "Quantity", "Price", "Total Value"}

var (
	ErrBadHeader     = errors.New("unexpected csv header")
	ErrMissingTotal  = errors.New("missing Total Investment row")
	ErrTotalMismatch = errors.New("total investment does not match the sum of rows")
)

// Filename returns the report file name for a save at t, in t's location.
func Filename(t time.Time) string {
	return filePrefix + t.Format(fileTimestamp) + ".csv"
}

// WriteCSV writes the header, one line per row, a blank line and the total.
func WriteCSV(w io.Writer, r report.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range r.Rows {
		err := cw.Write([]string{
			string(row.Symbol),
			itoa(int64(row.Quantity)),
			itoa(int64(row.Price)),
			itoa(int64(row.Value)),
		})
		if err != nil {
			return err
		}
	}
	if err := cw.Write([]string{}); err != nil {
		return err
	}
	if err := cw.Write([]string{"", "", totalLabel, itoa(int64(r.Total))}); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a file produced by WriteCSV. When the stored total differs
// from the sum of the rows the parsed report is returned with
// ErrTotalMismatch.
func ReadCSV(rd io.Reader) (report.Report, error) {
	cr := csv.NewReader(rd)
	cr.FieldsPerRecord = -1

	first, err := cr.Read()
	if err != nil {
		return report.Report{}, fmt.Errorf("read header: %w", err)
	}
	if !slices.Equal(first, header) {
		return report.Report{}, fmt.Errorf("%w: %q", ErrBadHeader, first)
	}

	var (
		r        report.Report
		hasTotal bool
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return r, err
		}
		line, _ := cr.FieldPos(0)

		if len(rec) == 4 && rec[0] == "" && rec[2] == totalLabel {
			total, err := strconv.ParseInt(rec[3], 10, 64)
			if err != nil {
				return r, fmt.Errorf("line %d: total: %w", line, err)
			}
			r.Total = market.Cash(total)
			hasTotal = true
			continue
		}
		if len(rec) != 4 {
			return r, fmt.Errorf("line %d: want 4 fields, got %d", line, len(rec))
		}
		row, err := parseRow(rec)
		if err != nil {
			return r, fmt.Errorf("line %d: %w", line, err)
		}
		r.Rows = append(r.Rows, row)
	}

	if !hasTotal {
		return r, ErrMissingTotal
	}
	sum, err := r.Sum()
	if err != nil {
		return r, fmt.Errorf("sum rows: %w", err)
	}
	if sum != r.Total {
		return r, fmt.Errorf("%w: rows sum to %d, file says %d", ErrTotalMismatch, sum, r.Total)
	}
	return r, nil
}

// ReadCSVFile opens path and parses it with ReadCSV.
func ReadCSVFile(path string) (report.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return report.Report{}, err
	}
	defer f.Close()
	return ReadCSV(f)
}

// CSVSaver writes reports to timestamped files in Dir.
type CSVSaver struct {
	Dir string
	Now func() time.Time

	create func(name string) (io.WriteCloser, error)
}

func NewCSVSaver(dir string) *CSVSaver {
	return &CSVSaver{Dir: dir, Now: time.Now}
}

// Save creates the report file and writes r to it. The file is closed before
// Save returns, on success and on failure. The path is returned only when
// the file was written and closed cleanly.
func (s *CSVSaver) Save(r report.Report) (path string, err error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	create := s.create
	if create == nil {
		create = func(name string) (io.WriteCloser, error) { return os.Create(name) }
	}
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	name := filepath.Join(dir, Filename(now()))

	f, err := create(name)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			path = ""
			err = fmt.Errorf("close %s: %w", name, cerr)
		}
	}()

	if err := WriteCSV(f, r); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return name, nil
}

func parseRow(rec []string) (report.Row, error) {
	qty, err := strconv.ParseInt(rec[1], 10, 64)
	if err != nil {
		return report.Row{}, fmt.Errorf("quantity: %w", err)
	}
	price, err := strconv.ParseInt(rec[2], 10, 64)
	if err != nil {
		return report.Row{}, fmt.Errorf("price: %w", err)
	}
	value, err := strconv.ParseInt(rec[3], 10, 64)
	if err != nil {
		return report.Row{}, fmt.Errorf("total value: %w", err)
	}
	return report.Row{
		Symbol:   market.Symbol(rec[0]),
		Quantity: market.Units(qty),
		Price:    market.Price(price),
		Value:    market.Cash(value),
	}, nil
}

func itoa(x int64) string {
	return strconv.FormatInt(x, 10)
}
