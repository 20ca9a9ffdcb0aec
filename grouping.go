package querybuilder

import "strings"

// GroupBy selects the extra columns carried through SELECT and GROUP BY in
// WAF queries.
type GroupBy int

const (
	GroupByNone GroupBy = iota
	GroupByCountry
	GroupByURI
	GroupByCountryAndURI

	// groupByUnrecognized stands in for any value ParseGroupBy could not map.
	// It resolves to empty fragments rather than failing, even when
	// per-country thresholds are configured.
	groupByUnrecognized
)

// ParseGroupBy maps a caller-supplied grouping mode onto a GroupBy.
// Matching is case-insensitive; unrecognized values (including the empty
// string) resolve to empty column fragments downstream.
func ParseGroupBy(value string) GroupBy {
	switch strings.ToLower(value) {
	case "none":
		return GroupByNone
	case "country":
		return GroupByCountry
	case "uri":
		return GroupByURI
	case "country and uri":
		return GroupByCountryAndURI
	default:
		return groupByUnrecognized
	}
}

func (g GroupBy) String() string {
	switch g {
	case GroupByNone:
		return "none"
	case GroupByCountry:
		return "country"
	case GroupByURI:
		return "uri"
	case GroupByCountryAndURI:
		return "country and uri"
	default:
		return "unrecognized"
	}
}

// grouping carries the two column fragments a grouping mode resolves to.
// selectColumns holds the WAF field paths with a trailing comma so it splices
// directly after the client_ip extraction of the inner select; groupColumns is
// the bare column list with a leading comma, appended to every SELECT and
// GROUP BY list downstream.
type grouping struct {
	selectColumns string
	groupColumns  string
}

// resolveGrouping decides which extra columns appear in the inner select and
// in every GROUP BY list of a WAF query.
//
// A configured per-country threshold forces country grouping when the mode is
// none, and adds country alongside uri, because the HAVING clause it produces
// references the country column.
func resolveGrouping(mode GroupBy, hasCountryThresholds bool) grouping {
	country := grouping{"httprequest.country as country,", ", country"}
	countryAndURI := grouping{"httprequest.country as country, httprequest.uri as uri,", ", country, uri"}

	switch mode {
	case GroupByCountry:
		return country
	case GroupByNone:
		if hasCountryThresholds {
			return country
		}
		return grouping{}
	case GroupByURI:
		if hasCountryThresholds {
			return countryAndURI
		}
		return grouping{"httprequest.uri as uri,", ", uri"}
	case GroupByCountryAndURI:
		return countryAndURI
	default:
		return grouping{}
	}
}
