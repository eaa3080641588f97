package contextkeys

// Custom key type avoids collisions with other packages writing to context.
type contextKey string

// DBContextKey is the key under which the active *gorm.DB (pool or test
// transaction) travels through the request context.
const DBContextKey = contextKey("db")
