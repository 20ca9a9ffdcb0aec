package querybuilder

// cloudFrontSelectBuilder handles CloudFront access logs. The log format
// splits the event time across separate date and time columns, so the inner
// select concatenates them before parsing, and the numeric status column is
// cast to varchar for the fixed status-code filter downstream.
type cloudFrontSelectBuilder struct{}

func (cloudFrontSelectBuilder) sourceSelect(database, table string, _ grouping) string {
	return "SELECT\n" +
		"\tclient_ip,\n" +
		"\tMAX_BY(counter, counter) as max_counter_per_min\n" +
		" FROM (\n" +
		"\tWITH logs_with_concat_data AS (\n" +
		"\t\tSELECT\n" +
		"\t\t\trequestip as client_ip,\n" +
		"\t\t\tcast(status as varchar) as status,\n" +
		"\t\t\tparse_datetime( concat( concat( format_datetime(date, 'yyyy-MM-dd'), '-' ), time ), 'yyyy-MM-dd-HH:mm:ss') AS datetime\n" +
		"\t\tFROM\n" +
		"\t\t\t" + database + "." + table
}
