package querybuilder

import (
	"strings"
	"testing"
	"time"
)

func ts(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func TestPartitionPredicateSameDay(t *testing.T) {
	w := window{start: ts(2024, time.January, 15, 9, 55), end: ts(2024, time.January, 15, 10, 0)}
	got := buildPartitionPredicate(w)
	want := "\n\t\tWHERE year = 2024\n" +
		"\t\tAND month = 01\n" +
		"\t\tAND day = 15\n" +
		"\t\tAND hour between 09 and 10"
	if got != want {
		t.Fatalf("unexpected predicate:\n%q\nwant:\n%q", got, want)
	}
}

func TestPartitionPredicateCrossDaySameMonth(t *testing.T) {
	w := window{start: ts(2024, time.January, 14, 23, 30), end: ts(2024, time.January, 15, 0, 25)}
	got := buildPartitionPredicate(w)
	want := "\n\t\tWHERE year = 2024\n" +
		"\t\tAND month = 01\n" +
		"\t\tAND (\n" +
		"\t\t\t(day = 14 AND hour >= 23)\n" +
		"\t\t\tOR (day = 15 AND hour <= 00)\n" +
		"\t\t)\n"
	if got != want {
		t.Fatalf("unexpected predicate:\n%q\nwant:\n%q", got, want)
	}
}

func TestPartitionPredicateCrossMonth(t *testing.T) {
	w := window{start: ts(2024, time.January, 31, 23, 30), end: ts(2024, time.February, 1, 0, 25)}
	got := buildPartitionPredicate(w)
	want := "\n\t\tWHERE year = 2024\n" +
		"\t\tAND (\n" +
		"\t\t\t(month = 01 AND day = 31 AND hour >= 23)\n" +
		"\t\t\tOR (month = 02 AND day = 01 AND hour <= 00)\n" +
		"\t\t)\n"
	if got != want {
		t.Fatalf("unexpected predicate:\n%q\nwant:\n%q", got, want)
	}
}

func TestPartitionPredicateCrossYear(t *testing.T) {
	w := window{start: ts(2023, time.December, 31, 23, 30), end: ts(2024, time.January, 1, 0, 25)}
	got := buildPartitionPredicate(w)
	want := "\n\t\tWHERE (year = 2023\n" +
		"\t\t\tAND month = 12\n" +
		"\t\t\tAND day = 31\n" +
		"\t\t\tAND hour >= 23)\n" +
		"\t\tOR (year = 2024\n" +
		"\t\t\tAND month = 01\n" +
		"\t\t\tAND day = 01\n" +
		"\t\t\tAND hour <= 00)\n"
	if got != want {
		t.Fatalf("unexpected predicate:\n%q\nwant:\n%q", got, want)
	}
}

func TestPartitionPredicateShape(t *testing.T) {
	tests := []struct {
		name       string
		w          window
		yearCount  int
		dayCount   int
		hourRange  bool
		disjunctOR int
	}{
		{
			name:      "same day has one triplet and an hour range",
			w:         window{start: ts(2024, time.June, 2, 3, 0), end: ts(2024, time.June, 2, 7, 0)},
			yearCount: 1, dayCount: 1, hourRange: true,
		},
		{
			name:      "same year cross day has two day disjuncts",
			w:         window{start: ts(2024, time.June, 2, 22, 0), end: ts(2024, time.June, 3, 2, 0)},
			yearCount: 1, dayCount: 2, disjunctOR: 1,
		},
		{
			name:      "cross year has two independent year disjuncts",
			w:         window{start: ts(2023, time.December, 31, 22, 0), end: ts(2024, time.January, 1, 2, 0)},
			yearCount: 2, dayCount: 2, disjunctOR: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildPartitionPredicate(tt.w)
			if n := strings.Count(got, "year = "); n != tt.yearCount {
				t.Fatalf("expected %d year terms, got %d in %q", tt.yearCount, n, got)
			}
			if n := strings.Count(got, "day = "); n != tt.dayCount {
				t.Fatalf("expected %d day terms, got %d in %q", tt.dayCount, n, got)
			}
			if tt.hourRange != strings.Contains(got, "hour between ") {
				t.Fatalf("hour range presence mismatch in %q", got)
			}
			if n := strings.Count(got, "OR ("); n != tt.disjunctOR {
				t.Fatalf("expected %d OR'd disjuncts, got %d in %q", tt.disjunctOR, n, got)
			}
		})
	}
}

// Windows longer than two calendar days only reference the start and end day
// partitions. That under-scan is the documented behavior for oversized
// windows, so pin it.
func TestPartitionPredicateSkipsMiddleDays(t *testing.T) {
	w := window{start: ts(2024, time.June, 1, 10, 0), end: ts(2024, time.June, 4, 10, 0)}
	got := buildPartitionPredicate(w)
	if strings.Contains(got, "day = 02") || strings.Contains(got, "day = 03") {
		t.Fatalf("middle days must not be enumerated: %q", got)
	}
	if !strings.Contains(got, "day = 01") || !strings.Contains(got, "day = 04") {
		t.Fatalf("expected boundary days only: %q", got)
	}
}
