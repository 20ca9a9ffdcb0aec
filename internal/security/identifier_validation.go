// Package security holds the allowlist checks callers apply before handing
// values to the query builder, which embeds them into SQL literally.
package security

import "regexp"

var (
	identRegex   = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
	countryRegex = regexp.MustCompile(`^[A-Z]{2}$`)
)

// IsSafeIdentifier reports whether value is acceptable as an Athena database
// or table name.
func IsSafeIdentifier(value string) bool {
	return identRegex.MatchString(value)
}

// IsCountryCode reports whether value looks like an ISO 3166-1 alpha-2
// country code.
func IsCountryCode(value string) bool {
	return countryRegex.MatchString(value)
}
