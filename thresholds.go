package querybuilder

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// countryThreshold pairs an ISO country code with its request threshold.
type countryThreshold struct {
	country   string
	threshold float64
}

// parseCountryThresholds decodes the JSON-encoded country→threshold mapping.
// The slice preserves the document's key order so the generated HAVING clause
// is deterministic for a given input string. An empty or blank input and an
// empty object both decode to no thresholds.
func parseCountryThresholds(raw string) ([]countryThreshold, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCountryThresholds, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: expected a JSON object, got %v", ErrInvalidCountryThresholds, tok)
	}

	var thresholds []countryThreshold
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCountryThresholds, err)
		}
		country, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: non-string key %v", ErrInvalidCountryThresholds, keyTok)
		}
		var threshold float64
		if err := dec.Decode(&threshold); err != nil {
			return nil, fmt.Errorf("%w: threshold for %q: %v", ErrInvalidCountryThresholds, country, err)
		}
		thresholds = append(thresholds, countryThreshold{country: country, threshold: threshold})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCountryThresholds, err)
	}
	return thresholds, nil
}
