// Package servers implements the device registry: registration of
// sensor-bearing servers and the liveness-derived health endpoints.
package servers

// SQL queries for the servers package.
const (
	// queryInsertServer registers a new server. last_seen starts at the
	// registration clock so a fresh server reports online immediately.
	queryInsertServer = `
INSERT INTO servers (server_id, server_name, owner_id, last_seen)
VALUES ($1, $2, $3, $4)`

	// queryServerOwned loads a server only when it belongs to the given
	// owner. Absent and unowned are indistinguishable on purpose.
	queryServerOwned = `
SELECT server_id, server_name, owner_id, last_seen
FROM servers
WHERE server_id = $1 AND owner_id = $2`

	// queryServersByOwner lists every server the owner has registered.
	queryServersByOwner = `
SELECT server_id, server_name, owner_id, last_seen
FROM servers
WHERE owner_id = $1
ORDER BY server_id`
)
