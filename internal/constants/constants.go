package constants

// Pagination bounds
const (
	MinPage         = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// DefaultQueueKey is the Redis list the deferred-update worker consumes.
const DefaultQueueKey = "task_update_jobs"
