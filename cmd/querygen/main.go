// Command querygen generates one detection query and prints it to stdout.
// Parameters come either from flags or from a named profile in a YAML config
// file; diagnostics go to stderr so the output stays pipeable into a query
// execution service.
package main

import (
	"fmt"
	"os"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	querybuilder "waf-querybuilder"
	"waf-querybuilder/internal/security"
)

var (
	configPath  = pflag.String("config", "", "path to a YAML profile config")
	profileName = pflag.String("profile", "", "profile name inside --config")

	logType             = pflag.String("log-type", "waf", "log type: cloudfront, alb or waf")
	database            = pflag.String("database", "", "Athena/Glue database name")
	table               = pflag.String("table", "", "Athena/Glue table name")
	endTime             = pflag.String("end", "", "window end as RFC3339; defaults to now (UTC)")
	windowMinutes       = pflag.Int("window-minutes", 240, "scanned window length in minutes")
	errorThreshold      = pflag.Int("error-threshold", 50, "bad requests per minute per IP (app access logs)")
	requestThreshold    = pflag.Float64("request-threshold", 100, "requests per run interval per IP (waf logs)")
	thresholdsByCountry = pflag.String("thresholds-by-country", "", "JSON mapping of country code to request threshold")
	groupBy             = pflag.String("group-by", "none", "grouping: none, country, uri or 'country and uri'")
	runSchedule         = pflag.Int("run-schedule-minutes", 5, "query run schedule in minutes")
	logLevel            = pflag.String("log-level", "warn", "diagnostic log level")
)

func main() {
	pflag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	log := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	profile := profileFromFlags()
	if *configPath != "" {
		cfg, err := LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		profile, err = cfg.Profile(*profileName)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to select profile")
		}
	}

	sql, err := generate(log, profile, *endTime)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to generate query")
	}
	fmt.Println(sql)
}

func profileFromFlags() Profile {
	return Profile{
		LogType:             *logType,
		Database:            *database,
		Table:               *table,
		WindowMinutes:       *windowMinutes,
		ErrorThreshold:      *errorThreshold,
		RequestThreshold:    *requestThreshold,
		ThresholdsByCountry: *thresholdsByCountry,
		GroupBy:             *groupBy,
		RunScheduleMinutes:  *runSchedule,
	}
}

func generate(log zerolog.Logger, profile Profile, end string) (string, error) {
	parsedType, err := querybuilder.ParseLogType(profile.LogType)
	if err != nil {
		return "", err
	}
	if !security.IsSafeIdentifier(profile.Database) {
		return "", fmt.Errorf("database %q is not a safe identifier", profile.Database)
	}
	if !security.IsSafeIdentifier(profile.Table) {
		return "", fmt.Errorf("table %q is not a safe identifier", profile.Table)
	}
	if profile.WindowMinutes <= 0 {
		return "", fmt.Errorf("window must be greater than zero minutes")
	}
	if err := validateCountryCodes(profile.ThresholdsByCountry); err != nil {
		return "", err
	}

	endAt := time.Now().UTC()
	if end != "" {
		endAt, err = time.Parse(time.RFC3339, end)
		if err != nil {
			return "", fmt.Errorf("invalid end time: %w", err)
		}
	}

	if parsedType == querybuilder.LogTypeWAF {
		return querybuilder.BuildWAFQuery(log, querybuilder.WAFParams{
			Database:           profile.Database,
			Table:              profile.Table,
			EndTime:            endAt,
			WindowMinutes:      profile.WindowMinutes,
			RequestThreshold:   profile.RequestThreshold,
			CountryThresholds:  profile.ThresholdsByCountry,
			GroupBy:            querybuilder.ParseGroupBy(profile.GroupBy),
			RunScheduleMinutes: profile.RunScheduleMinutes,
		})
	}

	return querybuilder.BuildAppAccessQuery(log, querybuilder.AppAccessParams{
		LogType:        parsedType,
		Database:       profile.Database,
		Table:          profile.Table,
		EndTime:        endAt,
		WindowMinutes:  profile.WindowMinutes,
		ErrorThreshold: profile.ErrorThreshold,
	}), nil
}

func validateCountryCodes(raw string) error {
	if raw == "" {
		return nil
	}
	var byCountry map[string]float64
	if err := json.Unmarshal([]byte(raw), &byCountry); err != nil {
		return fmt.Errorf("thresholds by country is not a valid JSON mapping: %w", err)
	}
	for country := range byCountry {
		if !security.IsCountryCode(country) {
			return fmt.Errorf("invalid country code %q", country)
		}
	}
	return nil
}
