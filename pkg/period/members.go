package period

import (
	"fmt"
	"sort"
	"strings"

	"github.com/peepsched/schedval/pkg/validator"
)

// Members CSV column names, in declaration order.
const (
	colID            = "id"
	colName          = "Name"
	colDisplayName   = "Display Name"
	colEmail         = "Email Address"
	colRole          = "Role"
	colIndex         = "Index"
	colPriority      = "Priority"
	colTotalAttended = "Total Attended"
	colActive        = "Active"
	colDateJoined    = "Date Joined"
)

var dateJoinedLayouts = []string{"2006-01-02", "1/2/2006"}

// ValidateMembers validates every row of the members file independently,
// then runs the list-level uniqueness and ordering checks over the values
// that parsed. The returned slice holds the rows that were individually
// valid; the report holds every defect found.
func ValidateMembers(rows []Row, ctx validator.Context) ([]Member, validator.Report) {
	file := validator.Loc(FileMembers)
	var report validator.Report

	parsed := make([]Member, len(rows))
	rowReports := make([]validator.Report, len(rows))
	for i, row := range rows {
		parsed[i], rowReports[i] = validateMemberRow(file.Index(i), row, ctx)
		report.Merge(rowReports[i])
	}

	fieldOK := func(i int, field string) bool {
		return !rowReports[i].HasAt(file.Index(i).Field(field))
	}

	// Uniqueness scans exclude any row whose value for the scanned field
	// failed to parse; the row's own failure is already in the report.
	for _, g := range duplicateGroups(len(rows), func(i int) (int, bool) {
		return parsed[i].ID, fieldOK(i, colID)
	}) {
		report.Add(uniquenessError(dupLoc(file, g, colID),
			fmt.Sprintf("duplicate member id: %d", parsed[g[0]].ID), rows[g[0]][colID]))
	}
	for _, g := range duplicateGroups(len(rows), func(i int) (int, bool) {
		return parsed[i].Index, fieldOK(i, colIndex)
	}) {
		report.Add(uniquenessError(dupLoc(file, g, colIndex),
			fmt.Sprintf("duplicate index: %d", parsed[g[0]].Index), rows[g[0]][colIndex]))
	}
	for _, g := range duplicateGroups(len(rows), func(i int) (string, bool) {
		if parsed[i].Email == "" {
			return "", false
		}
		return validator.NormalizeEmailKey(parsed[i].Email), fieldOK(i, colEmail)
	}) {
		report.Add(uniquenessError(dupLoc(file, g, colEmail),
			"duplicate email", parsed[g[0]].Email))
	}
	for _, g := range duplicateGroups(len(rows), func(i int) (string, bool) {
		if parsed[i].Name == "" {
			return "", false
		}
		return validator.NormalizeNameKey(parsed[i].Name), fieldOK(i, colName)
	}) {
		report.Add(uniquenessError(dupLoc(file, g, colName),
			"duplicate name", parsed[g[0]].Name))
	}
	for _, g := range duplicateGroups(len(rows), func(i int) (string, bool) {
		if parsed[i].DisplayName == "" {
			return "", false
		}
		return validator.NormalizeNameKey(parsed[i].DisplayName), fieldOK(i, colDisplayName)
	}) {
		report.Add(uniquenessError(dupLoc(file, g, colDisplayName),
			"duplicate display name", parsed[g[0]].DisplayName))
	}

	report.Merge(checkPriorityOrder(file, parsed, fieldOK))

	var members []Member
	for i := range parsed {
		if rowReports[i].Valid() {
			members = append(members, parsed[i])
		}
	}
	return members, report
}

func validateMemberRow(loc validator.Location, row Row, _ validator.Context) (Member, validator.Report) {
	var report validator.Report
	var m Member

	if id, rep := parsePositiveInt(loc.Field(colID), row[colID]); rep.Valid() {
		m.ID = id
	} else {
		report.Merge(rep)
	}

	m.Name = strings.TrimSpace(row[colName])
	report.Merge(validator.Apply(validator.ValidPersonName(loc.Field(colName), m.Name)))

	m.DisplayName = strings.TrimSpace(row[colDisplayName])
	if m.DisplayName != "" {
		report.Merge(validator.Apply(validator.ValidPersonName(loc.Field(colDisplayName), m.DisplayName)))
	}

	m.Email = strings.TrimSpace(row[colEmail])
	emailOK := true
	if m.Email != "" {
		emailReport := validator.Apply(validator.ValidEmail(loc.Field(colEmail), m.Email))
		emailOK = emailReport.Valid()
		report.Merge(emailReport)
	}

	if role, rep := parseRoleField(loc.Field(colRole), row[colRole]); rep.Valid() {
		m.Role = role
	} else {
		report.Merge(rep)
	}

	if v, rep := parseBoundedInt(loc.Field(colIndex), row[colIndex], 0); rep.Valid() {
		m.Index = v
	} else {
		report.Merge(rep)
	}
	if v, rep := parseBoundedInt(loc.Field(colPriority), row[colPriority], 0); rep.Valid() {
		m.Priority = v
	} else {
		report.Merge(rep)
	}
	if v, rep := parseBoundedInt(loc.Field(colTotalAttended), row[colTotalAttended], 0); rep.Valid() {
		m.TotalAttended = v
	} else {
		report.Merge(rep)
	}

	activeOK := true
	switch strings.TrimSpace(row[colActive]) {
	case "TRUE":
		m.Active = true
	case "FALSE":
		m.Active = false
	default:
		activeOK = false
		report.Add(validator.ValidationError{
			Location: loc.Field(colActive),
			Code:     validator.CodeEnum,
			Message:  "must be one of: TRUE, FALSE",
			Input:    row[colActive],
		})
	}

	if t, ok := validator.ParseDate(row[colDateJoined], nil, dateJoinedLayouts...); ok {
		m.DateJoined = t
	} else {
		report.Add(validator.ValidationError{
			Location: loc.Field(colDateJoined),
			Code:     validator.CodeParseError,
			Message:  fmt.Sprintf("invalid date format: %s", row[colDateJoined]),
			Input:    row[colDateJoined],
		})
	}

	if activeOK && emailOK && m.Active && m.Email == "" {
		report.Add(validator.ValidationError{
			Location: loc.Field(colEmail),
			Code:     validator.CodeParseError,
			Message:  "active members must have an email address",
		})
	}

	return m, report
}

// checkPriorityOrder verifies that priorities never increase when members
// are ordered by index. Rows missing a valid index or priority are left out.
func checkPriorityOrder(file validator.Location, parsed []Member, fieldOK func(int, string) bool) validator.Report {
	type entry struct{ index, priority int }
	var entries []entry
	for i := range parsed {
		if fieldOK(i, colIndex) && fieldOK(i, colPriority) {
			entries = append(entries, entry{parsed[i].Index, parsed[i].Priority})
		}
	}
	sort.Slice(entries, func(a, b int) bool { return entries[a].index < entries[b].index })
	for i := 1; i < len(entries); i++ {
		if entries[i].priority > entries[i-1].priority {
			return validator.Report{{
				Location: file.Field(colPriority),
				Code:     validator.CodeRange,
				Message:  "priority order must be non-increasing by index",
			}}
		}
	}
	return nil
}
