package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/mochizukey/task-rest-api/internal/models"
)

// UpdateJob is the queue payload: the target task and the fields to apply.
type UpdateJob struct {
	TaskID   uint64   `json:"task_id"`
	TaskData TaskData `json:"task_data"`
}

// TaskData mirrors the update request body; nil fields are left untouched.
type TaskData struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Priority    *models.TaskPriority `json:"priority"`
	DueDate     *time.Time           `json:"due_date"`
}

// Queue supplies update jobs to the worker. PopJob blocks for a bounded
// interval and returns (nil, nil) when no job arrived, so callers can check
// for cancellation between polls.
type Queue interface {
	PopJob(ctx context.Context) (*UpdateJob, error)
}

// popTimeout bounds each blocking pop so the consuming loop can observe
// context cancellation.
const popTimeout = 1 * time.Second

// RedisQueue consumes JSON update jobs from a Redis list
type RedisQueue struct {
	pool *redis.Pool
	key  string
}

// NewRedisQueue creates a queue consumer for the given Redis address and list key
func NewRedisQueue(addr, key string) *RedisQueue {
	pool := &redis.Pool{
		MaxIdle:     3,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", addr)
		},
	}
	return &RedisQueue{pool: pool, key: key}
}

// PopJob blocks on the queue key for up to popTimeout and decodes the payload
func (q *RedisQueue) PopJob(ctx context.Context) (*UpdateJob, error) {
	conn, err := q.pool.GetContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get redis connection: %w", err)
	}
	defer conn.Close()

	values, err := redis.Values(conn.Do("BRPOP", q.key, popTimeout.Seconds()))
	if err != nil {
		if err == redis.ErrNil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to pop job: %w", err)
	}

	// BRPOP replies [key, value]
	var key string
	var payload []byte
	if _, err := redis.Scan(values, &key, &payload); err != nil {
		return nil, fmt.Errorf("unexpected BRPOP reply: %w", err)
	}

	var job UpdateJob
	if err := json.Unmarshal(payload, &job); err != nil {
		return nil, fmt.Errorf("malformed job payload: %w", err)
	}

	return &job, nil
}

// Close releases the underlying connection pool
func (q *RedisQueue) Close() error {
	return q.pool.Close()
}
