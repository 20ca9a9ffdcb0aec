package main

import (
	"testing"

	json "github.com/goccy/go-json"
)

func TestAppAccessRequestContract(t *testing.T) {
	payload := []byte(`{
		"sourceRef": "prod-cloudfront",
		"source": {
			"logType": "CLOUDFRONT",
			"database": "glue_db",
			"table": "cloudfront_logs"
		},
		"endTime": "2024-01-15T10:00:00Z",
		"windowMinutes": 240,
		"errorThreshold": 100
	}`)
	var req appAccessRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		t.Fatalf("failed to unmarshal appAccessRequest: %v", err)
	}
	if req.SourceRef != "prod-cloudfront" {
		t.Fatalf("unexpected sourceRef: %s", req.SourceRef)
	}
	if req.Source.LogType != "CLOUDFRONT" || req.Source.Database != "glue_db" {
		t.Fatalf("unexpected source fields: %+v", req.Source)
	}
	if req.WindowMinutes != 240 || req.ErrorThreshold != 100 {
		t.Fatalf("unexpected numeric fields: %+v", req)
	}
}

func TestWAFRequestContract(t *testing.T) {
	payload := []byte(`{
		"source": {
			"logType": "WAF",
			"database": "glue_db",
			"table": "waf_logs"
		},
		"endTime": "2024-01-15T10:00:00Z",
		"windowMinutes": 240,
		"requestThreshold": 1000,
		"thresholdsByCountry": "{\"US\": 300}",
		"groupBy": "country",
		"runScheduleMinutes": 5
	}`)
	var req wafRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		t.Fatalf("failed to unmarshal wafRequest: %v", err)
	}
	if req.Source.Table != "waf_logs" {
		t.Fatalf("unexpected table: %s", req.Source.Table)
	}
	if req.ThresholdsByCountry != `{"US": 300}` {
		t.Fatalf("unexpected thresholds string: %s", req.ThresholdsByCountry)
	}
	if req.GroupBy != "country" || req.RunScheduleMinutes != 5 {
		t.Fatalf("unexpected fields: %+v", req)
	}
}
