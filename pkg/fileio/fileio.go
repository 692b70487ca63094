package fileio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/peepsched/schedval/pkg/period"
	"github.com/peepsched/schedval/pkg/validator"
)

// File names inside a period directory.
const (
	MembersFile       = "members.csv"
	ResponsesFile     = "responses.csv"
	CancellationsFile = "cancellations.json"
	PartnershipsFile  = "partnerships.json"
	AttendanceFile    = "attendance.json"
	ResultsFile       = "results.json"
)

// eventDurationColumn marks the companion event rows inside responses.csv.
const eventDurationColumn = "Event Duration"

// LoadPeriod decodes every file of a period directory into the raw shapes
// the validators consume. The members and responses files are required; the
// JSON files are optional and stay nil when absent. A file that cannot be
// read or decoded yields exactly one top-level error for that file and
// never stops the others from loading.
func LoadPeriod(dir string) (period.RawPeriod, validator.Report) {
	var raw period.RawPeriod
	var report validator.Report

	if rows, err := LoadCSV(filepath.Join(dir, MembersFile)); err != nil {
		report.Add(fileError(period.FileMembers, err))
	} else {
		raw.Members = rows
	}

	if rows, err := LoadCSV(filepath.Join(dir, ResponsesFile)); err != nil {
		report.Add(fileError(period.FileResponses, err))
	} else {
		raw.Responses = splitResponseRows(rows)
	}

	var cancellations period.RawCancellations
	if ok, err := readJSON(filepath.Join(dir, CancellationsFile), &cancellations); err != nil {
		report.Add(fileError(period.FileCancellations, err))
	} else if ok {
		raw.Cancellations = &cancellations
	}

	var flat map[string][]int
	if ok, err := readJSON(filepath.Join(dir, PartnershipsFile), &flat); err != nil {
		report.Add(fileError(period.FilePartnerships, err))
	} else if ok {
		raw.Partnerships = orderPartnerships(flat)
	}

	var attendance period.RawEvents
	if ok, err := readJSON(filepath.Join(dir, AttendanceFile), &attendance); err != nil {
		report.Add(fileError(period.FileAttendance, err))
	} else if ok {
		raw.Attendance = &attendance
	}

	var results period.RawEvents
	if ok, err := readJSON(filepath.Join(dir, ResultsFile), &results); err != nil {
		report.Add(fileError(period.FileResults, err))
	} else if ok {
		raw.Results = &results
	}

	return raw, report
}

var (
	smartQuotes  = strings.NewReplacer("‘", "'", "’", "'", "“", `"`, "”", `"`)
	multiSpaceRe = regexp.MustCompile(`\s+`)
)

func normalizeCell(s string) string {
	s = smartQuotes.Replace(strings.TrimSpace(s))
	return multiSpaceRe.ReplaceAllString(s, " ")
}

// LoadCSV reads a CSV file into rows keyed by trimmed header name. Every
// value is trimmed, smart quotes are replaced with ASCII ones, and runs of
// whitespace collapse to a single space. An empty file yields no rows.
func LoadCSV(path string) ([]period.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("malformed CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	rows := make([]period.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(period.Row, len(header))
		for i, name := range header {
			if name == "" {
				continue
			}
			if i < len(record) {
				row[name] = normalizeCell(record[i])
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// splitResponseRows separates companion event rows (rows that fill the
// Event Duration column) from the survey responses sharing the same file.
func splitResponseRows(rows []period.Row) period.RawResponses {
	var out period.RawResponses
	for _, row := range rows {
		if row[eventDurationColumn] != "" {
			out.EventRows = append(out.EventRows, row)
		} else {
			out.Responses = append(out.Responses, row)
		}
	}
	return out
}

// readJSON decodes a JSON file into v. ok is false when the file is absent.
func readJSON(path string, v any) (ok bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("malformed JSON: %w", err)
	}
	return true, nil
}

// orderPartnerships converts the flat requester-to-partners object into the
// ordered list of single-key mappings the validator consumes. Numeric keys
// sort ascending; anything non-numeric sorts after them lexically so the
// report order stays stable.
func orderPartnerships(flat map[string][]int) period.RawPartnerships {
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		ka, aerr := strconv.Atoi(keys[a])
		kb, berr := strconv.Atoi(keys[b])
		switch {
		case aerr == nil && berr == nil:
			return ka < kb
		case aerr == nil:
			return true
		case berr == nil:
			return false
		default:
			return keys[a] < keys[b]
		}
	})

	out := make(period.RawPartnerships, 0, len(keys))
	for _, k := range keys {
		out = append(out, map[string][]int{k: flat[k]})
	}
	return out
}

func fileError(file string, err error) validator.ValidationError {
	return validator.ValidationError{
		Location: validator.Loc(file),
		Code:     validator.CodeParseError,
		Message:  err.Error(),
	}
}
