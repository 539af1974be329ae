package forecast

import (
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
)

// expectedHeader is the required first row of a forecast CSV file.
var expectedHeader = []string{"date", "condition", "high", "low"}

// ReadRecords parses forecast records from delimited text: a header row
// followed by one record per line. Records come back sorted chronologically.
// Malformed input fails with ErrDataFormat.
func ReadRecords(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, DataFormat("empty data source")
	}
	if err != nil {
		return nil, DataFormat("read header: %v", err)
	}
	if err := validateHeader(header); err != nil {
		return nil, err
	}

	var records []Record
	seen := make(map[string]struct{})
	line := 1

	for {
		line++
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, DataFormat("line %d: %v", line, err)
		}

		record, err := parseRow(row, line)
		if err != nil {
			return nil, err
		}

		day := record.Date.Format(DateLayout)
		if _, dup := seen[day]; dup {
			return nil, DataFormat("line %d: duplicate date %s", line, day)
		}
		seen[day] = struct{}{}

		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, DataFormat("no records in data source")
	}

	SortChronological(records)
	return records, nil
}

// LoadFile reads forecast records from a CSV file on disk.
func LoadFile(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, DataFormat("open %s: %v", path, err)
	}
	defer file.Close()
	return ReadRecords(file)
}

// LoadFS reads forecast records from a CSV file inside an fs.FS.
func LoadFS(fsys fs.FS, path string) ([]Record, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return nil, DataFormat("open %s: %v", path, err)
	}
	defer file.Close()
	return ReadRecords(file)
}

func validateHeader(header []string) error {
	if len(header) != len(expectedHeader) {
		return DataFormat("header has %d fields, want %d", len(header), len(expectedHeader))
	}
	for idx, field := range header {
		if !strings.EqualFold(strings.TrimSpace(field), expectedHeader[idx]) {
			return DataFormat("header field %d is %q, want %q", idx+1, field, expectedHeader[idx])
		}
	}
	return nil
}

func parseRow(row []string, line int) (Record, error) {
	if len(row) != len(expectedHeader) {
		return Record{}, DataFormat("line %d: has %d fields, want %d", line, len(row), len(expectedHeader))
	}

	date, err := time.Parse(DateLayout, strings.TrimSpace(row[0]))
	if err != nil {
		return Record{}, DataFormat("line %d: invalid date %q", line, row[0])
	}

	high, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
	if err != nil {
		return Record{}, DataFormat("line %d: invalid high %q", line, row[2])
	}

	low, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
	if err != nil {
		return Record{}, DataFormat("line %d: invalid low %q", line, row[3])
	}

	record := Record{
		Date:      date,
		Condition: strings.TrimSpace(row[1]),
		High:      high,
		Low:       low,
	}
	if err := record.Validate(); err != nil {
		return Record{}, DataFormat("line %d: %v", line, err)
	}
	return record, nil
}
