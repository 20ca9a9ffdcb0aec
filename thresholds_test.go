package querybuilder

import (
	"errors"
	"testing"
)

func TestParseCountryThresholdsEmpty(t *testing.T) {
	for _, raw := range []string{"", "   ", "{}"} {
		got, err := parseCountryThresholds(raw)
		if err != nil {
			t.Fatalf("parseCountryThresholds(%q): unexpected error: %v", raw, err)
		}
		if len(got) != 0 {
			t.Fatalf("parseCountryThresholds(%q): expected no thresholds, got %v", raw, got)
		}
	}
}

func TestParseCountryThresholdsPreservesOrder(t *testing.T) {
	got, err := parseCountryThresholds(`{"US": 300, "CN": 100, "RU": 50}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []countryThreshold{
		{country: "US", threshold: 300},
		{country: "CN", threshold: 100},
		{country: "RU", threshold: 50},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d thresholds, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("threshold %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParseCountryThresholdsMalformed(t *testing.T) {
	tests := []string{
		`{"US": 300`,
		`["US"]`,
		`{"US": "many"}`,
		`not json`,
	}
	for _, raw := range tests {
		_, err := parseCountryThresholds(raw)
		if !errors.Is(err, ErrInvalidCountryThresholds) {
			t.Fatalf("parseCountryThresholds(%q): expected ErrInvalidCountryThresholds, got %v", raw, err)
		}
	}
}
