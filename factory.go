package querybuilder

// sourceSelectBuilder builds the first query stage for one log shape: the
// outer aggregation header plus the dialect-specific inner SELECT (client IP
// extraction, status normalization, timestamp parsing), reading from
// database.table embedded literally.
//
// cols carries the grouping column fragments; only the WAF shape splices them
// in, the app-access shapes group by client_ip alone.
type sourceSelectBuilder interface {
	sourceSelect(database, table string, cols grouping) string
}

// newSourceSelectBuilder picks the inner-select variant for a log type.
// Application access logs that are not CloudFront are treated as ALB logs,
// so an unmapped value falls through to the ALB builder.
func newSourceSelectBuilder(logType LogType) sourceSelectBuilder {
	switch logType {
	case LogTypeCloudFront:
		return cloudFrontSelectBuilder{}
	case LogTypeWAF:
		return wafSelectBuilder{}
	default:
		return albSelectBuilder{}
	}
}
