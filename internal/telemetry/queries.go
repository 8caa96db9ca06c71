// Package telemetry implements sensor data ingestion and the filtered /
// aggregated query endpoints.
package telemetry

// SQL for the telemetry package. The SELECT bases are completed in store.go
// with a WHERE clause assembled from the caller's filters; every filter value
// is passed as a bind parameter.
const (
	// queryTouchServer refreshes the server's liveness timestamp.
	// RETURNING true distinguishes a real update from an unknown server so
	// ingestion can fail without inserting anything.
	queryTouchServer = `
UPDATE servers
SET last_seen = $2
WHERE server_id = $1
RETURNING true`

	// queryInsertReading appends one reading. No dedup: identical reposts
	// create new rows.
	queryInsertReading = `
INSERT INTO sensor_data (id, server_id, timestamp, temperature, humidity, voltage, current)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	// querySelectBase is the unaggregated read path. Joining servers applies
	// ownership scoping before any caller-supplied filter.
	querySelectBase = `
SELECT d.timestamp, d.temperature, d.humidity, d.voltage, d.current
FROM sensor_data d
JOIN servers s ON s.server_id = d.server_id`

	// queryAggregateBase buckets readings with date_trunc and averages each
	// channel. AVG ignores NULLs, so a channel with no values in a bucket
	// yields NULL rather than an error. The %s is the bucket level, checked
	// against the aggregation enum before it reaches SQL.
	queryAggregateBase = `
SELECT date_trunc('%s', d.timestamp) AS bucket,
       AVG(d.temperature), AVG(d.humidity), AVG(d.voltage), AVG(d.current)
FROM sensor_data d
JOIN servers s ON s.server_id = d.server_id`
)
