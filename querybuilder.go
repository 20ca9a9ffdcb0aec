// Package querybuilder constructs Athena (Presto dialect) queries that surface
// client IPs, or IP+country/URI groups, exceeding a request or error threshold
// over a sliding time window of CloudFront, ALB or AWS WAF logs.
//
// Every builder in this package is a pure function of its arguments: no I/O,
// no shared state, safe for concurrent use. The produced SQL embeds database,
// table and country values literally, without quoting or escaping. Callers own
// that trust boundary and must allowlist those values before calling in.
package querybuilder

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// resultLimit caps every generated query; downstream consumers page through at
// most this many offending groups per run.
const resultLimit = 10000

var (
	// ErrInvalidCountryThresholds reports a malformed per-country threshold
	// mapping (the JSON-encoded string could not be decoded).
	ErrInvalidCountryThresholds = errors.New("invalid per-country threshold mapping")

	// ErrZeroRunSchedule reports a run schedule of zero minutes, which would
	// make rate normalization divide by zero.
	ErrZeroRunSchedule = errors.New("query run schedule must be greater than zero")
)

// LogType identifies the log shape a query is generated for.
type LogType int

const (
	LogTypeCloudFront LogType = iota
	LogTypeALB
	LogTypeWAF
)

// ParseLogType maps a caller-supplied log type string onto a LogType.
func ParseLogType(value string) (LogType, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "CLOUDFRONT":
		return LogTypeCloudFront, nil
	case "ALB":
		return LogTypeALB, nil
	case "WAF":
		return LogTypeWAF, nil
	default:
		return 0, errors.New("unsupported log type " + strconv.Quote(value))
	}
}

func (t LogType) String() string {
	switch t {
	case LogTypeCloudFront:
		return "CLOUDFRONT"
	case LogTypeALB:
		return "ALB"
	case LogTypeWAF:
		return "WAF"
	default:
		return "UNKNOWN"
	}
}

// AppAccessParams drives query generation for application access logs
// (CloudFront or ALB).
type AppAccessParams struct {
	LogType  LogType
	Database string
	Table    string

	// EndTime is the upper bound of the scanned window; the lower bound is
	// EndTime minus WindowMinutes.
	EndTime       time.Time
	WindowMinutes int

	// ErrorThreshold is the maximum acceptable bad requests per minute per IP.
	ErrorThreshold int
}

// WAFParams drives query generation for AWS WAF logs.
type WAFParams struct {
	Database string
	Table    string

	EndTime       time.Time
	WindowMinutes int

	// RequestThreshold is the maximum acceptable request count per IP within
	// one run interval. It is normalized to a per-run rate by dividing by
	// RunScheduleMinutes.
	RequestThreshold float64

	// CountryThresholds is an optional JSON-encoded mapping of ISO country
	// code to request threshold, e.g. `{"US": 300, "CN": 100}`. Clause order
	// in the generated HAVING predicate follows the document's key order.
	CountryThresholds string

	GroupBy GroupBy

	RunScheduleMinutes int
}

// window bounds a scan; start is always strictly before end.
type window struct {
	start time.Time
	end   time.Time
}

func newWindow(end time.Time, minutes int) window {
	return window{start: end.Add(-time.Duration(minutes) * time.Minute), end: end}
}

// timestampLiteral renders t the way the per-minute counting stage compares
// datetimes, second precision without a zone.
func timestampLiteral(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// pad2 zero-pads month, day and hour partition values to width 2.
func pad2(v int) string {
	if v < 10 {
		return "0" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

// formatRate renders a normalized threshold rate. Integral values keep a
// trailing ".0".
func formatRate(rate float64) string {
	s := strconv.FormatFloat(rate, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
