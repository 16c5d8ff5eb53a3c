// Package quality implements the data-quality checks that feed the issue log
// artifact. The checks observe the ingested tables and never modify them; the
// core aggregation does not consume the log.
package quality

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/skyroute/route-analytics/internal/domain"
)

// Issue identifiers used in the issue log.
const (
	IssueNulls              = "nulls"
	IssueDuplicateKey       = "duplicate_key"
	IssueBadIATA            = "bad_iata"
	IssueCancelledNotBinary = "cancelled_not_binary"
	IssueOccupancyOutOfBounds = "occupancy_out_of_bounds"
)

// Occupancy ratio bounds. Ratios slightly above 1 occur on oversold legs;
// anything above the upper bound is recorded as an issue.
const (
	occupancyLowerBound = 0.0
	occupancyUpperBound = 1.2
)

// iataCodeRegex matches valid IATA airport codes (3 uppercase letters).
var iataCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// Checker runs the data-quality checks for a pipeline run.
type Checker struct{}

// NewChecker creates a Checker.
func NewChecker() *Checker {
	return &Checker{}
}

// Check runs every check over the ingested tables and returns the issue log
// rows, keyed by (column/value, issue, count).
func (c *Checker) Check(legs domain.LegTable, airports []domain.Airport) []domain.QualityIssue {
	var issues []domain.QualityIssue

	issues = append(issues, checkLegNulls(legs)...)
	issues = append(issues, checkDuplicateAirports(airports)...)
	issues = append(issues, checkIATAFormat(airports)...)
	issues = append(issues, checkCancelledBinary(legs)...)
	issues = append(issues, checkOccupancyBounds(legs)...)

	return issues
}

// checkLegNulls counts missing values per optional flight column. Columns the
// source never carried are skipped: a wholly absent column is a schema
// property, not a per-row quality defect.
func checkLegNulls(legs domain.LegTable) []domain.QualityIssue {
	counts := make(map[string]int)

	for _, l := range legs.Legs {
		if l.Origin == "" {
			counts["ORIGIN"]++
		}
		if l.Dest == "" {
			counts["DEST"]++
		}
		if legs.HasDepDelay && l.DepDelay == nil {
			counts["DEP_DELAY"]++
		}
		if legs.HasArrDelay && l.ArrDelay == nil {
			counts["ARR_DELAY"]++
		}
		if legs.HasCancelled && l.Cancelled == nil {
			counts["CANCELLED"]++
		}
		if legs.HasOccupancy && l.Occupancy == nil {
			counts["OCCUPANCY_RATE"]++
		}
	}

	columns := make([]string, 0, len(counts))
	for col := range counts {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	issues := make([]domain.QualityIssue, 0, len(columns))
	for _, col := range columns {
		issues = append(issues, domain.QualityIssue{
			Column: col,
			Issue:  IssueNulls,
			Count:  counts[col],
		})
	}
	return issues
}

// checkDuplicateAirports flags IATA codes that appear more than once in the
// airport reference table.
func checkDuplicateAirports(airports []domain.Airport) []domain.QualityIssue {
	seen := make(map[string]int)
	for _, a := range airports {
		seen[a.IATACode]++
	}

	codes := make([]string, 0)
	for code, n := range seen {
		if n > 1 {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)

	issues := make([]domain.QualityIssue, 0, len(codes))
	for _, code := range codes {
		issues = append(issues, domain.QualityIssue{
			Column: "IATA_CODE",
			Value:  code,
			Issue:  IssueDuplicateKey,
			Count:  seen[code],
		})
	}
	return issues
}

// checkIATAFormat flags airport codes that are not exactly 3 uppercase letters.
func checkIATAFormat(airports []domain.Airport) []domain.QualityIssue {
	bad := make(map[string]int)
	for _, a := range airports {
		if !iataCodeRegex.MatchString(a.IATACode) {
			bad[a.IATACode]++
		}
	}

	values := make([]string, 0, len(bad))
	for v := range bad {
		values = append(values, v)
	}
	sort.Strings(values)

	issues := make([]domain.QualityIssue, 0, len(values))
	for _, v := range values {
		issues = append(issues, domain.QualityIssue{
			Column: "IATA_CODE",
			Value:  v,
			Issue:  IssueBadIATA,
			Count:  bad[v],
		})
	}
	return issues
}

// checkCancelledBinary flags cancellation values outside {0, 1}.
func checkCancelledBinary(legs domain.LegTable) []domain.QualityIssue {
	if !legs.HasCancelled {
		return nil
	}

	bad := make(map[int]int)
	for _, l := range legs.Legs {
		if l.Cancelled != nil && *l.Cancelled != 0 && *l.Cancelled != 1 {
			bad[*l.Cancelled]++
		}
	}

	values := make([]int, 0, len(bad))
	for v := range bad {
		values = append(values, v)
	}
	sort.Ints(values)

	issues := make([]domain.QualityIssue, 0, len(values))
	for _, v := range values {
		issues = append(issues, domain.QualityIssue{
			Column: "CANCELLED",
			Value:  strconv.Itoa(v),
			Issue:  IssueCancelledNotBinary,
			Count:  bad[v],
		})
	}
	return issues
}

// checkOccupancyBounds flags occupancy ratios outside [0, 1.2].
func checkOccupancyBounds(legs domain.LegTable) []domain.QualityIssue {
	if !legs.HasOccupancy {
		return nil
	}

	count := 0
	for _, l := range legs.Legs {
		if l.Occupancy != nil && (*l.Occupancy < occupancyLowerBound || *l.Occupancy > occupancyUpperBound) {
			count++
		}
	}

	if count == 0 {
		return nil
	}
	return []domain.QualityIssue{{
		Column: "OCCUPANCY_RATE",
		Issue:  IssueOccupancyOutOfBounds,
		Count:  count,
	}}
}
