package telemetry_test

import (
	"strings"
	"testing"

	"github.com/ualcz/exame-backend-dtlabs-2025/internal/telemetry"
)

func f64(v float64) *float64 { return &v }

func TestIngestRequestValidate(t *testing.T) {
	valid := telemetry.IngestRequest{
		ServerID:    "srv-1",
		Timestamp:   "2025-03-01T12:00:00Z",
		Temperature: f64(21.5),
	}

	tests := []struct {
		name      string
		mutate    func(r *telemetry.IngestRequest)
		violation string // substring expected in one of the violations; "" means valid
	}{
		{name: "valid single channel", mutate: func(r *telemetry.IngestRequest) {}},
		{
			name: "valid all channels",
			mutate: func(r *telemetry.IngestRequest) {
				r.Humidity = f64(55)
				r.Voltage = f64(12.1)
				r.Current = f64(0.4)
			},
		},
		{
			name:   "humidity lower bound",
			mutate: func(r *telemetry.IngestRequest) { r.Humidity = f64(0) },
		},
		{
			name:   "humidity upper bound",
			mutate: func(r *telemetry.IngestRequest) { r.Humidity = f64(100) },
		},
		{
			name:      "humidity below range",
			mutate:    func(r *telemetry.IngestRequest) { r.Humidity = f64(-1) },
			violation: "humidity",
		},
		{
			name:      "humidity above range",
			mutate:    func(r *telemetry.IngestRequest) { r.Humidity = f64(101) },
			violation: "humidity",
		},
		{
			name:      "no channels",
			mutate:    func(r *telemetry.IngestRequest) { r.Temperature = nil },
			violation: "at least one sensor value",
		},
		{
			name:      "missing server id",
			mutate:    func(r *telemetry.IngestRequest) { r.ServerID = "" },
			violation: "server_id",
		},
		{
			name:      "missing timestamp",
			mutate:    func(r *telemetry.IngestRequest) { r.Timestamp = "" },
			violation: "timestamp",
		},
		{
			name:      "garbage timestamp",
			mutate:    func(r *telemetry.IngestRequest) { r.Timestamp = "yesterday" },
			violation: "timestamp",
		},
		{
			name:      "timestamp without zone",
			mutate:    func(r *telemetry.IngestRequest) { r.Timestamp = "2025-03-01T12:00:00" },
			violation: "timestamp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			reading, violations := req.Validate()

			if tt.violation == "" {
				if len(violations) != 0 {
					t.Fatalf("expected valid, got violations: %v", violations)
				}
				if reading.Timestamp.IsZero() {
					t.Error("expected parsed timestamp")
				}
				return
			}

			found := false
			for _, v := range violations {
				if strings.Contains(v, tt.violation) {
					found = true
				}
			}
			if !found {
				t.Errorf("expected a violation mentioning %q, got %v", tt.violation, violations)
			}
		})
	}
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	req := telemetry.IngestRequest{Humidity: f64(150)}

	_, violations := req.Validate()
	// server_id, timestamp, humidity range; the humidity value still counts
	// as a provided channel.
	if len(violations) != 3 {
		t.Errorf("expected 3 violations, got %d: %v", len(violations), violations)
	}
}

func TestValidChannel(t *testing.T) {
	for _, c := range telemetry.Channels {
		if !telemetry.ValidChannel(c) {
			t.Errorf("expected %q to be valid", c)
		}
	}
	for _, c := range []string{"", "pressure", "Temperature", "temp"} {
		if telemetry.ValidChannel(c) {
			t.Errorf("expected %q to be invalid", c)
		}
	}
}

func TestValidAggregation(t *testing.T) {
	for _, l := range telemetry.AggregationLevels {
		if !telemetry.ValidAggregation(l) {
			t.Errorf("expected %q to be valid", l)
		}
	}
	for _, l := range []string{"", "second", "week", "Minute"} {
		if telemetry.ValidAggregation(l) {
			t.Errorf("expected %q to be invalid", l)
		}
	}
}
