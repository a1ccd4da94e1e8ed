package globals

type contextKey string

// UserEmailKey carries the authenticated principal's email through request context.
const UserEmailKey contextKey = "userEmail"
