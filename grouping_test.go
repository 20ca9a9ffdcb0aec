package querybuilder

import "testing"

func TestParseGroupBy(t *testing.T) {
	tests := []struct {
		value string
		want  GroupBy
	}{
		{"none", GroupByNone},
		{"NONE", GroupByNone},
		{"country", GroupByCountry},
		{"Country", GroupByCountry},
		{"uri", GroupByURI},
		{"URI", GroupByURI},
		{"country and uri", GroupByCountryAndURI},
		{"Country and URI", GroupByCountryAndURI},
		{"", groupByUnrecognized},
		{"region", groupByUnrecognized},
	}
	for _, tt := range tests {
		if got := ParseGroupBy(tt.value); got != tt.want {
			t.Fatalf("ParseGroupBy(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestResolveGrouping(t *testing.T) {
	tests := []struct {
		name          string
		mode          GroupBy
		hasThresholds bool
		selectColumns string
		groupColumns  string
	}{
		{"none without thresholds", GroupByNone, false, "", ""},
		{"none with thresholds forces country", GroupByNone, true, "httprequest.country as country,", ", country"},
		{"uri without thresholds", GroupByURI, false, "httprequest.uri as uri,", ", uri"},
		{"uri with thresholds adds country", GroupByURI, true, "httprequest.country as country, httprequest.uri as uri,", ", country, uri"},
		{"country without thresholds", GroupByCountry, false, "httprequest.country as country,", ", country"},
		{"country with thresholds", GroupByCountry, true, "httprequest.country as country,", ", country"},
		{"country and uri", GroupByCountryAndURI, false, "httprequest.country as country, httprequest.uri as uri,", ", country, uri"},
		{"country and uri with thresholds", GroupByCountryAndURI, true, "httprequest.country as country, httprequest.uri as uri,", ", country, uri"},
		{"unrecognized stays empty even with thresholds", groupByUnrecognized, true, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveGrouping(tt.mode, tt.hasThresholds)
			if got.selectColumns != tt.selectColumns {
				t.Fatalf("select columns = %q, want %q", got.selectColumns, tt.selectColumns)
			}
			if got.groupColumns != tt.groupColumns {
				t.Fatalf("group columns = %q, want %q", got.groupColumns, tt.groupColumns)
			}
		})
	}
}
