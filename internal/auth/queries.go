// Package auth implements user accounts and bearer-token authentication:
// registration, login, JWT issue/resolve, and the middleware that turns an
// Authorization header into a request-scoped user.
package auth

// SQL queries for the auth package.
const (
	// queryInsertUser inserts a new account. ON CONFLICT DO NOTHING with
	// RETURNING true lets the store distinguish an insert from a unique
	// violation without a second round-trip.
	queryInsertUser = `
INSERT INTO users (id, username, email, full_name, hashed_password, disabled)
VALUES ($1, $2, $3, $4, $5, FALSE)
ON CONFLICT DO NOTHING
RETURNING true`

	// queryUserByUsername loads a full account row including the password
	// hash. Callers must never serialize the hash.
	queryUserByUsername = `
SELECT id, username, email, full_name, hashed_password, disabled
FROM users
WHERE username = $1`
)
