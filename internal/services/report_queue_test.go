package services

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fxdsilva/alertia/internal/models"
)

func TestTaskTypeReport_Constant(t *testing.T) {
	if TaskTypeReport != "report:generate" {
		t.Errorf("TaskTypeReport = %q, expected %q", TaskTypeReport, "report:generate")
	}
}

func TestReportTask_Structure(t *testing.T) {
	instID := uint(3)
	task := ReportTask{
		JobID:         "job-1",
		Scope:         models.ReportScopeSchool,
		InstitutionID: &instID,
	}

	if task.JobID != "job-1" {
		t.Errorf("JobID = %q, expected %q", task.JobID, "job-1")
	}
	if task.Scope != models.ReportScopeSchool {
		t.Errorf("Scope = %q, expected %q", task.Scope, models.ReportScopeSchool)
	}
	if task.InstitutionID == nil || *task.InstitutionID != 3 {
		t.Error("InstitutionID should be 3")
	}
}

func TestSyncQueue_New(t *testing.T) {
	queue := NewSyncQueue()
	if queue == nil {
		t.Error("NewSyncQueue should not return nil")
	}
}

func TestSyncQueue_IsAsync(t *testing.T) {
	queue := NewSyncQueue()
	if queue.IsAsync() {
		t.Error("SyncQueue.IsAsync() should return false")
	}
}

func TestSyncQueue_Close(t *testing.T) {
	queue := NewSyncQueue()
	if err := queue.Close(); err != nil {
		t.Errorf("SyncQueue.Close() should return nil, got %v", err)
	}
}

func TestSyncQueue_EnqueueWithoutProcessor(t *testing.T) {
	queue := NewSyncQueue()
	task := &ReportTask{JobID: "job-1", Scope: models.ReportScopeGlobal}

	if err := queue.Enqueue(task); err != nil {
		t.Errorf("Enqueue without processor should not error, got %v", err)
	}
}

func TestSyncQueue_ProcessorReceivesTask(t *testing.T) {
	queue := NewSyncQueue()

	var mu sync.Mutex
	var received *ReportTask
	done := make(chan struct{})

	queue.SetProcessor(func(ctx context.Context, task *ReportTask) error {
		mu.Lock()
		received = task
		mu.Unlock()
		close(done)
		return nil
	})

	if err := queue.Enqueue(&ReportTask{JobID: "job-2", Scope: models.ReportScopeGlobal}); err != nil {
		t.Fatalf("Enqueue() error: %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("processor was not invoked")
	}

	mu.Lock()
	defer mu.Unlock()
	if received.JobID != "job-2" {
		t.Errorf("JobID = %q, expected %q", received.JobID, "job-2")
	}
	if received.Scope != models.ReportScopeGlobal {
		t.Errorf("Scope = %q, expected %q", received.Scope, models.ReportScopeGlobal)
	}
}

func TestSyncQueue_CloseWaitsForInFlightTask(t *testing.T) {
	queue := NewSyncQueue()

	var done atomic.Bool
	queue.SetProcessor(func(ctx context.Context, task *ReportTask) error {
		time.Sleep(100 * time.Millisecond)
		done.Store(true)
		return nil
	})

	if err := queue.Enqueue(&ReportTask{JobID: "job-3", Scope: models.ReportScopeGlobal}); err != nil {
		t.Fatalf("Enqueue() error: %v", err)
	}

	if err := queue.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if !done.Load() {
		t.Error("Close() returned before the in-flight task finished")
	}
}

func TestAsyncQueue_IsAsync(t *testing.T) {
	queue := &AsyncQueue{}
	if !queue.IsAsync() {
		t.Error("AsyncQueue.IsAsync() should return true")
	}
}
