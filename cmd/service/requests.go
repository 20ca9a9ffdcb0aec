package main

import (
	"time"

	"waf-querybuilder/cmd/service/internal/sources"
)

type appAccessRequest struct {
	SourceRef string               `json:"sourceRef"`
	Source    sources.SourceConfig `json:"source"`

	EndTime        time.Time `json:"endTime"`
	WindowMinutes  int       `json:"windowMinutes"`
	ErrorThreshold int       `json:"errorThreshold"`
}

type wafRequest struct {
	SourceRef string               `json:"sourceRef"`
	Source    sources.SourceConfig `json:"source"`

	EndTime             time.Time `json:"endTime"`
	WindowMinutes       int       `json:"windowMinutes"`
	RequestThreshold    float64   `json:"requestThreshold"`
	ThresholdsByCountry string    `json:"thresholdsByCountry"`
	GroupBy             string    `json:"groupBy"`
	RunScheduleMinutes  int       `json:"runScheduleMinutes"`
}

type queryResponse struct {
	SQL string `json:"sql"`
}
