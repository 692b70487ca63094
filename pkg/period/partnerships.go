package period

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/peepsched/schedval/pkg/validator"
)

// ValidatePartnerships validates each single-key partnership mapping:
// the requester id must be a positive integer, partner ids must be positive,
// distinct, and never include the requester itself. Requester ids must be
// unique across entries.
func ValidatePartnerships(raw RawPartnerships, _ validator.Context) ([]PartnershipRequest, validator.Report) {
	file := validator.Loc(FilePartnerships)
	var report validator.Report

	parsed := make([]PartnershipRequest, len(raw))
	entryReports := make([]validator.Report, len(raw))
	requesterOK := make([]bool, len(raw))

	for i, entry := range raw {
		loc := file.Index(i)
		var rep validator.Report

		if len(entry) != 1 {
			rep.Add(validator.ValidationError{
				Location: loc,
				Code:     validator.CodeParseError,
				Message:  "request must have exactly one entry",
			})
			entryReports[i] = rep
			report.Merge(rep)
			continue
		}

		var requesterRaw string
		var partnerIDs []int
		for k, v := range entry {
			requesterRaw, partnerIDs = k, v
		}

		requester, err := strconv.Atoi(strings.TrimSpace(requesterRaw))
		switch {
		case err != nil:
			rep.Add(validator.ValidationError{
				Location: loc,
				Code:     validator.CodeParseError,
				Message:  "requester id must be an integer",
				Input:    requesterRaw,
			})
		case requester <= 0:
			rep.Add(validator.ValidationError{
				Location: loc,
				Code:     validator.CodeRange,
				Message:  "requester id must be a positive integer",
				Input:    requesterRaw,
			})
		default:
			parsed[i].RequesterID = requester
			requesterOK[i] = true
		}

		partnersLoc := loc.Field("partner_ids")
		for j, id := range partnerIDs {
			if id <= 0 {
				rep.Add(validator.ValidationError{
					Location: partnersLoc.Index(j),
					Code:     validator.CodeRange,
					Message:  "partner id must be a positive integer",
					Input:    strconv.Itoa(id),
				})
			}
		}
		for _, g := range duplicateGroups(len(partnerIDs), func(j int) (int, bool) {
			return partnerIDs[j], partnerIDs[j] > 0
		}) {
			rep.Add(uniquenessError(dupLoc(partnersLoc, g, ""),
				fmt.Sprintf("duplicate partner id: %d", partnerIDs[g[0]]), strconv.Itoa(partnerIDs[g[0]])))
		}
		if requesterOK[i] && slices.Contains(partnerIDs, requester) {
			rep.Add(validator.ValidationError{
				Location: partnersLoc,
				Code:     validator.CodeSelfReference,
				Message:  fmt.Sprintf("member %d must not request itself as a partner", requester),
				Input:    requesterRaw,
			})
		}
		parsed[i].PartnerIDs = partnerIDs

		entryReports[i] = rep
		report.Merge(rep)
	}

	for _, g := range duplicateGroups(len(parsed), func(i int) (int, bool) {
		return parsed[i].RequesterID, requesterOK[i]
	}) {
		report.Add(uniquenessError(dupLoc(file, g, ""),
			fmt.Sprintf("duplicate requester id: %d", parsed[g[0]].RequesterID),
			strconv.Itoa(parsed[g[0]].RequesterID)))
	}

	var out []PartnershipRequest
	for i := range parsed {
		if entryReports[i].Valid() {
			out = append(out, parsed[i])
		}
	}
	return out, report
}
