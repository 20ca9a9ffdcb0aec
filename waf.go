package querybuilder

// wafSelectBuilder handles AWS WAF logs. Client IP, country and URI live
// under the nested httprequest record and the event time is an epoch
// millisecond value, converted through from_unixtime. The grouping fragments
// splice the optional country/uri columns into both the aggregation header
// and the inner extraction.
type wafSelectBuilder struct{}

func (wafSelectBuilder) sourceSelect(database, table string, cols grouping) string {
	return "SELECT\n" +
		"\tclient_ip" + cols.groupColumns + ",\n" +
		"\tMAX_BY(counter, counter) as max_counter_per_min\n" +
		" FROM (\n" +
		"\tWITH logs_with_concat_data AS (\n" +
		"\t\tSELECT\n" +
		"\t\t\thttprequest.clientip as client_ip," + cols.selectColumns + "\n" +
		"\t\t\tfrom_unixtime(timestamp/1000) as datetime\n" +
		"\t\tFROM\n" +
		"\t\t\t" + database + "." + table
}
