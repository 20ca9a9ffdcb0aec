package querybuilder

import "strconv"

// buildPartitionPredicate produces the WHERE fragment that prunes the table
// scan to the year/month/day/hour partitions overlapping the window. Month,
// day and hour values are zero-padded to width 2; year is not padded.
//
// Three cases:
//   - start and end fall on the same calendar day: one year/month/day triplet
//     plus an hour range;
//   - same year, different day (and possibly month): two day-qualified
//     disjuncts, each additionally month-qualified when the months differ;
//   - different years: two fully independent year/month/day/hour disjuncts.
//
// Only the window's start and end days are ever referenced. A window spanning
// more than two calendar days therefore under-scans the middle days.
func buildPartitionPredicate(w window) string {
	startYear := strconv.Itoa(w.start.Year())
	startMonth := pad2(int(w.start.Month()))
	startDay := pad2(w.start.Day())
	startHour := pad2(w.start.Hour())
	endYear := strconv.Itoa(w.end.Year())
	endMonth := pad2(int(w.end.Month()))
	endDay := pad2(w.end.Day())
	endHour := pad2(w.end.Hour())

	sameDay := w.start.Year() == w.end.Year() &&
		w.start.Month() == w.end.Month() &&
		w.start.Day() == w.end.Day()

	switch {
	case sameDay:
		return "\n\t\tWHERE year = " + startYear + "\n" +
			"\t\tAND month = " + startMonth + "\n" +
			"\t\tAND day = " + startDay + "\n" +
			"\t\tAND hour between " + startHour + " and " + endHour

	case w.start.Year() == w.end.Year():
		if w.start.Month() == w.end.Month() {
			return "\n\t\tWHERE year = " + startYear + "\n" +
				"\t\tAND month = " + startMonth + "\n" +
				"\t\tAND (\n" +
				"\t\t\t(day = " + startDay + " AND hour >= " + startHour + ")\n" +
				"\t\t\tOR (day = " + endDay + " AND hour <= " + endHour + ")\n" +
				"\t\t)\n"
		}
		return "\n\t\tWHERE year = " + startYear + "\n" +
			"\t\tAND (\n" +
			"\t\t\t(month = " + startMonth + " AND day = " + startDay + " AND hour >= " + startHour + ")\n" +
			"\t\t\tOR (month = " + endMonth + " AND day = " + endDay + " AND hour <= " + endHour + ")\n" +
			"\t\t)\n"

	default:
		return "\n\t\tWHERE (year = " + startYear + "\n" +
			"\t\t\tAND month = " + startMonth + "\n" +
			"\t\t\tAND day = " + startDay + "\n" +
			"\t\t\tAND hour >= " + startHour + ")\n" +
			"\t\tOR (year = " + endYear + "\n" +
			"\t\t\tAND month = " + endMonth + "\n" +
			"\t\t\tAND day = " + endDay + "\n" +
			"\t\t\tAND hour <= " + endHour + ")\n"
	}
}
