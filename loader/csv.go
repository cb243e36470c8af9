package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"movieland/errs"
	"movieland/movie"
)

type CSVOptions struct {
	TitleColumn       string
	YearColumn        string
	DescriptionColumn string // empty disables descriptions

	// MaxRows caps the number of data rows read, skipped ones included.
	// Zero or less reads the whole file.
	MaxRows int
}

func DefaultCSVOptions() CSVOptions {
	return CSVOptions{
		TitleColumn:       "title",
		YearColumn:        "release_date",
		DescriptionColumn: "overview",
		MaxRows:           100,
	}
}

// Skip describes a row left out of an import.
type Skip struct {
	Line   int
	Reason string
}

type csvColumns struct {
	title, year, description int
}

// ReadCSV parses movies from a CSV stream with a header row. Rows that do
// not yield a valid movie, unparsable ones included, are reported in skips.
// Only a failing reader aborts the read.
func ReadCSV(r io.Reader, opts CSVOptions) ([]movie.Input, []Skip, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	cols, err := parseCSVHeader(reader, opts)
	if err != nil {
		return nil, nil, err
	}

	var (
		inputs []movie.Input
		skips  []Skip
	)
	for line := 1; ; line++ {
		if opts.MaxRows > 0 && line > opts.MaxRows {
			break
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			skips = append(skips, Skip{Line: line, Reason: perr.Error()})
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read csv line %d: %w", line, err)
		}

		in, reason := parseCSVRecord(record, cols)
		if reason != "" {
			skips = append(skips, Skip{Line: line, Reason: reason})
			continue
		}
		inputs = append(inputs, in)
	}

	return inputs, skips, nil
}

// ParseYear reads the leading year of values such as "1999" or "1999-03-31".
func ParseYear(raw string) (int, error) {
	head := strings.SplitN(strings.TrimSpace(raw), "-", 2)[0]
	return strconv.Atoi(head)
}

func parseCSVHeader(reader *csv.Reader, opts CSVOptions) (csvColumns, error) {
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return csvColumns{title: -1, year: -1, description: -1}, nil
	}
	if err != nil {
		return csvColumns{}, fmt.Errorf("read csv header: %w", err)
	}

	cols := csvColumns{title: -1, year: -1, description: -1}
	for i, name := range header {
		name = strings.TrimPrefix(strings.TrimSpace(name), "\ufeff")
		// a repeated header name resolves to its last column
		switch name {
		case opts.TitleColumn:
			cols.title = i
		case opts.YearColumn:
			cols.year = i
		}
		if opts.DescriptionColumn != "" && name == opts.DescriptionColumn {
			cols.description = i
		}
	}
	return cols, nil
}

func parseCSVRecord(record []string, cols csvColumns) (movie.Input, string) {
	title, ok := field(record, cols.title)
	if !ok || title == "" {
		return movie.Input{}, "missing title"
	}
	rawYear, ok := field(record, cols.year)
	if !ok || rawYear == "" {
		return movie.Input{}, "missing year"
	}

	year, err := ParseYear(rawYear)
	if err != nil {
		return movie.Input{}, fmt.Sprintf("unparsable year %q", rawYear)
	}
	if year == 0 {
		return movie.Input{}, "zero year"
	}

	in := movie.Input{Title: title, Year: year}
	if desc, ok := field(record, cols.description); ok && desc != "" {
		in.Description = &desc
	}

	if err := in.Validate(); err != nil {
		return movie.Input{}, errs.ErrorMessage(err)
	}
	return in, ""
}

func field(record []string, idx int) (string, bool) {
	if idx < 0 || idx >= len(record) {
		return "", false
	}
	return strings.TrimSpace(record[idx]), true
}
