package worker

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mochizukey/task-rest-api/internal/services"
)

// placeholderBase keeps placeholder IDs in a range disjoint from
// store-generated task IDs.
const placeholderBase uint64 = 1 << 32

// failureDelay is slept after a failed pop so the loop never hot-spins
// against a broken queue.
const failureDelay = 2 * time.Second

// Worker applies deferred task mutations: update jobs pulled from an external
// queue, and create requests accepted over the async endpoint. Both paths are
// best-effort. The pending-placeholder set is process-local and lost on
// restart; it only exists so immediate polls on a placeholder ID can be
// answered before the row is persisted.
type Worker struct {
	service *services.TaskService
	queue   Queue

	mu      sync.RWMutex
	pending map[uint64]struct{}
	seq     atomic.Uint64
}

// New creates a Worker over the given service and queue
func New(service *services.TaskService, queue Queue) *Worker {
	w := &Worker{
		service: service,
		queue:   queue,
		pending: make(map[uint64]struct{}),
	}
	w.seq.Store(placeholderBase)
	return w
}

// Run consumes update jobs until the context is cancelled. A failing job is
// logged and skipped; the loop itself never dies on a single failure.
func (w *Worker) Run(ctx context.Context) {
	log.Println("Deferred-update worker started")
	for {
		select {
		case <-ctx.Done():
			log.Println("Deferred-update worker stopped")
			return
		default:
		}

		job, err := w.queue.PopJob(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Deferred-update worker stopped")
				return
			}
			log.Printf("Failed to pop update job: %v", err)
			w.sleep(ctx, failureDelay)
			continue
		}
		if job == nil {
			continue
		}

		if err := w.applyUpdate(job); err != nil {
			log.Printf("Failed to apply update job for task %d: %v", job.TaskID, err)
		}
	}
}

func (w *Worker) applyUpdate(job *UpdateJob) error {
	input := services.UpdateTaskInput{
		Title:       job.TaskData.Title,
		Description: job.TaskData.Description,
		Priority:    job.TaskData.Priority,
		DueDate:     job.TaskData.DueDate,
	}
	_, err := w.service.UpdateTask(job.TaskID, input)
	return err
}

// EnqueueCreate registers a placeholder and persists the task from a
// background goroutine. The returned placeholder ID can be polled immediately;
// it disappears once the create settles, successfully or not.
func (w *Worker) EnqueueCreate(input services.CreateTaskInput) uint64 {
	id := w.seq.Add(1)

	w.mu.Lock()
	w.pending[id] = struct{}{}
	w.mu.Unlock()

	go w.processCreate(id, input)

	return id
}

func (w *Worker) processCreate(placeholderID uint64, input services.CreateTaskInput) {
	defer func() {
		w.mu.Lock()
		delete(w.pending, placeholderID)
		w.mu.Unlock()
	}()

	task, err := w.service.CreateTask(input)
	if err != nil {
		log.Printf("Failed to process async create %d: %v", placeholderID, err)
		return
	}
	log.Printf("Async create %d persisted as task %d", placeholderID, task.TaskID)
}

// Pending reports whether the ID belongs to a create that has not settled yet
func (w *Worker) Pending(id uint64) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.pending[id]
	return ok
}

func (w *Worker) sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
