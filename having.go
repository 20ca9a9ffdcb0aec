package querybuilder

// buildHavingClause converts the default request threshold and the optional
// per-country overrides into the HAVING predicate of the per-minute counting
// stage. Every threshold is an "events per run interval" count and is
// normalized by real division through the run schedule.
//
// Without per-country overrides the clause is a single COUNT(*) comparison.
// With overrides it is one disjunct per listed country, in mapping order,
// OR'd with a fallback disjunct applying the default threshold to every
// unlisted country.
func buildHavingClause(defaultThreshold float64, byCountry []countryThreshold, runScheduleMinutes int) (string, error) {
	if runScheduleMinutes == 0 {
		return "", ErrZeroRunSchedule
	}
	defaultRate := formatRate(defaultThreshold / float64(runScheduleMinutes))

	if len(byCountry) == 0 {
		return "\t\tCOUNT(*) >= " + defaultRate, nil
	}

	clause := ""
	listedCountries := ""
	for i, ct := range byCountry {
		rate := formatRate(ct.threshold / float64(runScheduleMinutes))
		clause += "\t\t(COUNT(*) >= " + rate + " AND country = '" + ct.country + "') OR \n"
		if i > 0 {
			listedCountries += ","
		}
		listedCountries += "'" + ct.country + "'"
	}
	clause += "\t\t(COUNT(*) >= " + defaultRate + " AND country NOT IN (" + listedCountries + "))"
	return clause, nil
}
