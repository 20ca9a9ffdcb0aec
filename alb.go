package querybuilder

// albSelectBuilder handles ALB access logs, which already expose client_ip
// and a textual target_status_code and stamp each entry with an ISO8601
// timestamp.
type albSelectBuilder struct{}

func (albSelectBuilder) sourceSelect(database, table string, _ grouping) string {
	return "SELECT\n" +
		"\tclient_ip,\n" +
		"\tMAX_BY(counter, counter) as max_counter_per_min\n" +
		" FROM (\n" +
		"\tWITH logs_with_concat_data AS (\n" +
		"\t\tSELECT\n" +
		"\t\t\tclient_ip,\n" +
		"\t\t\ttarget_status_code AS status,\n" +
		"\t\t\tparse_datetime(time, 'yyyy-MM-dd''T''HH:mm:ss.SSSSSS''Z') AS datetime\n" +
		"\t\tFROM\n" +
		"\t\t\t" + database + "." + table
}
