package services

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/fxdsilva/alertia/internal/config"
	"github.com/fxdsilva/alertia/pkg/logger"
	"github.com/hibiken/asynq"
)

const (
	TaskTypeReport = "report:generate"
)

// ReportTask is a queued report generation job.
type ReportTask struct {
	JobID         string `json:"job_id"`
	Scope         string `json:"scope"` // global, school
	InstitutionID *uint  `json:"institution_id,omitempty"`
}

// TaskQueue is the interface for background report processing.
type TaskQueue interface {
	// Enqueue adds a task to the queue.
	Enqueue(task *ReportTask) error
	// IsAsync returns true if the queue processes tasks out of process.
	IsAsync() bool
	// Close gracefully shuts down the queue.
	Close() error
}

var (
	globalTaskQueue TaskQueue
	taskQueueOnce   sync.Once
)

// InitTaskQueue initializes the global task queue. Redis-backed asynq when
// enabled and reachable, in-process sync mode otherwise.
func InitTaskQueue(cfg *config.Config) TaskQueue {
	taskQueueOnce.Do(func() {
		if cfg.Redis.Enabled {
			queue, err := NewAsyncQueue(&cfg.Redis)
			if err != nil {
				logger.Warnf("[TaskQueue] Redis unavailable, falling back to sync mode: %v", err)
				globalTaskQueue = NewSyncQueue()
			} else {
				logger.Infof("[TaskQueue] Async queue initialized with Redis at %s", cfg.Redis.Addr)
				globalTaskQueue = queue
			}
		} else {
			logger.Infof("[TaskQueue] Sync queue initialized (Redis disabled)")
			globalTaskQueue = NewSyncQueue()
		}
	})
	return globalTaskQueue
}

// GetTaskQueue returns the global task queue instance.
func GetTaskQueue() TaskQueue {
	return globalTaskQueue
}

// AsyncQueue implements TaskQueue on asynq (Redis-based).
type AsyncQueue struct {
	client *asynq.Client
}

func NewAsyncQueue(cfg *config.RedisConfig) (*AsyncQueue, error) {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	client := asynq.NewClient(redisOpt)

	// Verify the connection before committing to async mode.
	inspector := asynq.NewInspector(redisOpt)
	defer inspector.Close()
	if _, err := inspector.Queues(); err != nil {
		client.Close()
		return nil, err
	}

	return &AsyncQueue{client: client}, nil
}

func (q *AsyncQueue) Enqueue(task *ReportTask) error {
	payload, err := json.Marshal(task)
	if err != nil {
		return err
	}

	t := asynq.NewTask(TaskTypeReport, payload)
	info, err := q.client.Enqueue(t,
		asynq.Queue("default"),
		asynq.MaxRetry(0),
	)
	if err != nil {
		return err
	}

	logger.Infof("[AsyncQueue] Report task enqueued: id=%s, job=%s", info.ID, task.JobID)
	return nil
}

func (q *AsyncQueue) IsAsync() bool {
	return true
}

func (q *AsyncQueue) Close() error {
	return q.client.Close()
}

// SyncQueue implements TaskQueue with in-process execution (no Redis).
type SyncQueue struct {
	processor func(context.Context, *ReportTask) error
	wg        sync.WaitGroup
}

func NewSyncQueue() *SyncQueue {
	return &SyncQueue{}
}

// SetProcessor sets the function that processes tasks.
func (q *SyncQueue) SetProcessor(processor func(context.Context, *ReportTask) error) {
	q.processor = processor
}

// Enqueue processes the task in a goroutine so the caller is not blocked.
func (q *SyncQueue) Enqueue(task *ReportTask) error {
	if q.processor == nil {
		logger.Warnf("[SyncQueue] no processor set, report task %s dropped", task.JobID)
		return nil
	}

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		if err := q.processor(context.Background(), task); err != nil {
			logger.Errorf("[SyncQueue] report task %s failed: %v", task.JobID, err)
		}
	}()

	return nil
}

func (q *SyncQueue) IsAsync() bool {
	return false
}

// Close waits for in-flight tasks so shutdown does not abandon them.
func (q *SyncQueue) Close() error {
	q.wg.Wait()
	return nil
}
