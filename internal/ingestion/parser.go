package ingestion

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/guttosm/cryptopulse/internal/domain/models"
)

// Column layout of a SYMBOL_values.csv file. The first row is a header
// and is discarded; the middle column is carried by the source format but
// unused here.
const (
	colTimestamp = 0
	colPrice     = 2
	minColumns   = 3
)

// parseFile opens and parses one per-symbol CSV file.
//
// Behavior:
//   - The symbol comes from the filename, not the file contents: the
//     segment before the first '_', upper-cased, stamped on every record.
//   - The header row is skipped. An empty file yields zero records and no
//     error; the store drops empty series on build.
//   - Rows are STRICT: fewer than three columns, an unparseable timestamp
//     or an unparseable price fail the file with the offending line number.
//
// Parameters:
//   - ctx:  context checked between rows for cancellation.
//   - path: file path.
//
// Returns:
//   - string: the uppercase symbol derived from the filename.
//   - []models.PriceRecord: records in file order.
//   - error: first parse/I-O error, if any.
func parseFile(ctx context.Context, path string) (string, []models.PriceRecord, error) {
	symbol := symbolFromFilename(path)

	f, err := os.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // column count checked explicitly per row

	// Discard the header row.
	if _, err := r.Read(); err != nil {
		if err == io.EOF {
			return symbol, nil, nil
		}
		return "", nil, fmt.Errorf("read header: %w", err)
	}

	var records []models.PriceRecord
	lineNumber := 1 // header already read

	for {
		select {
		case <-ctx.Done():
			return "", nil, ctx.Err()
		default:
		}

		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return "", nil, fmt.Errorf("read line after %d: %w", lineNumber, err)
		}
		lineNumber++

		if len(rec) < minColumns {
			return "", nil, fmt.Errorf("line %d: expected at least %d columns, got %d", lineNumber, minColumns, len(rec))
		}

		ts, err := strconv.ParseInt(strings.TrimSpace(rec[colTimestamp]), 10, 64)
		if err != nil {
			return "", nil, fmt.Errorf("line %d: invalid timestamp: %v", lineNumber, err)
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(rec[colPrice]), 64)
		if err != nil {
			return "", nil, fmt.Errorf("line %d: invalid price: %v", lineNumber, err)
		}

		records = append(records, models.PriceRecord{
			Timestamp: ts,
			Symbol:    symbol,
			Price:     price,
		})
	}

	return symbol, records, nil
}

// symbolFromFilename derives the uppercase symbol from a data file path:
// everything before the first '_' of the base name (e.g., BTC from
// BTC_values.csv).
func symbolFromFilename(path string) string {
	base := filepath.Base(path)
	if i := strings.Index(base, "_"); i >= 0 {
		base = base[:i]
	}
	return strings.ToUpper(base)
}
