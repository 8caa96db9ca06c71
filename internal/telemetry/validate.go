package telemetry

import "time"

// Sensor channel names accepted by the ingest payload and the sensor_type
// query filter.
const (
	ChannelTemperature = "temperature"
	ChannelHumidity    = "humidity"
	ChannelVoltage     = "voltage"
	ChannelCurrent     = "current"
)

// Channels lists the recognized channel names in response order.
var Channels = []string{ChannelTemperature, ChannelHumidity, ChannelVoltage, ChannelCurrent}

// ValidChannel reports whether name is one of the four recognized channels.
func ValidChannel(name string) bool {
	for _, c := range Channels {
		if c == name {
			return true
		}
	}
	return false
}

// Aggregation levels accepted by the aggregation query filter.
var AggregationLevels = []string{"minute", "hour", "day"}

// ValidAggregation reports whether level is a recognized bucket size.
func ValidAggregation(level string) bool {
	for _, l := range AggregationLevels {
		if l == level {
			return true
		}
	}
	return false
}

// IngestRequest is the body of POST /data. The timestamp is kept as a string
// so an unparseable value surfaces as a listed violation instead of a decode
// error.
type IngestRequest struct {
	ServerID    string   `json:"server_id" example:"9f1c2d3e-4b5a-6c7d-8e9f-0a1b2c3d4e5f"`
	Timestamp   string   `json:"timestamp" example:"2025-03-01T12:00:00Z"`
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	Voltage     *float64 `json:"voltage"`
	Current     *float64 `json:"current"`
}

// Reading is a validated ingest payload ready for persistence.
type Reading struct {
	ServerID    string
	Timestamp   time.Time
	Temperature *float64
	Humidity    *float64
	Voltage     *float64
	Current     *float64
}

// Validate checks every payload constraint and returns the parsed reading
// together with the list of violated constraints. The reading is only
// meaningful when the list is empty; all violations are collected in one
// pass so the client sees them all at once.
func (r IngestRequest) Validate() (Reading, []string) {
	var violations []string

	if r.ServerID == "" {
		violations = append(violations, "server_id is required")
	}

	var ts time.Time
	switch {
	case r.Timestamp == "":
		violations = append(violations, "timestamp is required")
	default:
		var err error
		ts, err = time.Parse(time.RFC3339, r.Timestamp)
		if err != nil {
			violations = append(violations, "timestamp must be an ISO 8601 instant with time zone")
		}
	}

	if r.Humidity != nil && (*r.Humidity < 0 || *r.Humidity > 100) {
		violations = append(violations, "humidity must be between 0 and 100")
	}

	if r.Temperature == nil && r.Humidity == nil && r.Voltage == nil && r.Current == nil {
		violations = append(violations, "at least one sensor value must be provided")
	}

	return Reading{
		ServerID:    r.ServerID,
		Timestamp:   ts,
		Temperature: r.Temperature,
		Humidity:    r.Humidity,
		Voltage:     r.Voltage,
		Current:     r.Current,
	}, violations
}
