package querybuilder

import (
	"strconv"

	"github.com/rs/zerolog"
)

// BuildAppAccessQuery assembles the query that flags client IPs whose
// per-minute count of bad requests (status 400/401/403/404/405) reached
// ErrorThreshold anywhere inside the window. The result ranks offenders by
// their worst minute and is capped at 10000 rows.
//
// The logger only carries diagnostics; it does not influence the output.
// Identical parameters always produce a byte-identical query.
func BuildAppAccessQuery(log zerolog.Logger, p AppAccessParams) string {
	w := newWindow(p.EndTime, p.WindowMinutes)
	log.Info().
		Str("log_type", p.LogType.String()).
		Time("window_start", w.start).
		Time("window_end", w.end).
		Msg("building app access query")

	sourceSelect := newSourceSelectBuilder(p.LogType).sourceSelect(p.Database, p.Table, grouping{})
	partitionPredicate := buildPartitionPredicate(w)
	log.Debug().
		Str("source_select", sourceSelect).
		Str("partition_predicate", partitionPredicate).
		Msg("assembled query fragments")

	query := sourceSelect +
		partitionPredicate +
		appAccessCountingStage(p.ErrorThreshold, w)

	log.Debug().Str("query", query).Msg("app access query built")
	return query
}

// BuildWAFQuery assembles the query that flags client IPs, optionally grouped
// by country and/or URI, whose per-minute request count reached the normalized
// request threshold anywhere inside the window. Same ranking and 10000-row cap
// as the app-access variant.
//
// It fails when CountryThresholds is not valid JSON or when
// RunScheduleMinutes is zero.
func BuildWAFQuery(log zerolog.Logger, p WAFParams) (string, error) {
	w := newWindow(p.EndTime, p.WindowMinutes)
	log.Info().
		Str("group_by", p.GroupBy.String()).
		Time("window_start", w.start).
		Time("window_end", w.end).
		Msg("building WAF query")

	byCountry, err := parseCountryThresholds(p.CountryThresholds)
	if err != nil {
		return "", err
	}
	havingClause, err := buildHavingClause(p.RequestThreshold, byCountry, p.RunScheduleMinutes)
	if err != nil {
		return "", err
	}
	cols := resolveGrouping(p.GroupBy, len(byCountry) > 0)

	sourceSelect := wafSelectBuilder{}.sourceSelect(p.Database, p.Table, cols)
	partitionPredicate := buildPartitionPredicate(w)
	log.Debug().
		Str("source_select", sourceSelect).
		Str("partition_predicate", partitionPredicate).
		Str("having_clause", havingClause).
		Msg("assembled query fragments")

	query := sourceSelect +
		partitionPredicate +
		wafCountingStage(havingClause, cols.groupColumns, w)

	log.Debug().Str("query", query).Msg("WAF query built")
	return query, nil
}

// appAccessCountingStage closes the inner select and adds the per-minute
// counting subquery with the fixed bad-status filter, then the outer grouping,
// ordering and limit.
func appAccessCountingStage(errorThreshold int, w window) string {
	return "\n\t)\n" +
		"\tSELECT\n" +
		"\t\tclient_ip,\n" +
		"\t\tCOUNT(*) as counter\n" +
		"\tFROM\n" +
		"\t\tlogs_with_concat_data\n" +
		"\tWHERE\n" +
		"\t\tdatetime > TIMESTAMP '" + timestampLiteral(w.start) + "'" +
		"\n\t\tAND status = ANY (VALUES '400', '401', '403', '404', '405')\n" +
		"\tGROUP BY\n" +
		"\t\tclient_ip,\n" +
		"\t\tdate_trunc('minute', datetime)\n" +
		"\tHAVING\n" +
		"\t\tCOUNT(*) >= " + strconv.Itoa(errorThreshold) +
		"\n) GROUP BY\n" +
		"\tclient_ip\n" +
		"ORDER BY\n" +
		"\tmax_counter_per_min DESC\n" +
		"LIMIT " + strconv.Itoa(resultLimit) + ";"
}

// wafCountingStage is the WAF counterpart: no status filter, grouping columns
// threaded through every list, HAVING supplied by the threshold builder.
func wafCountingStage(havingClause, groupColumns string, w window) string {
	return "\n\t)\n" +
		"\tSELECT\n" +
		"\t\tclient_ip" + groupColumns + ",\n" +
		"\t\tCOUNT(*) as counter\n" +
		"\tFROM\n" +
		"\t\tlogs_with_concat_data\n" +
		"\tWHERE\n" +
		"\t\tdatetime > TIMESTAMP '" + timestampLiteral(w.start) + "'" +
		"\n\tGROUP BY\n" +
		"\t\tclient_ip" + groupColumns + ",\n" +
		"\t\tdate_trunc('minute', datetime)\n" +
		"\tHAVING\n" +
		havingClause +
		"\n) GROUP BY\n" +
		"\tclient_ip" + groupColumns + "\n" +
		"ORDER BY\n" +
		"\tmax_counter_per_min DESC\n" +
		"LIMIT " + strconv.Itoa(resultLimit) + ";"
}
