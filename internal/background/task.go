package background

import (
	"context"
	"errors"
	"sync"
	"time"

	"resumeforge/pkg/models"
)

// TaskStatus is the lifecycle state of a background task
type TaskStatus string

const (
	TaskStatusAccepted   TaskStatus = "ACCEPTED"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusSuccess    TaskStatus = "SUCCESS"
	TaskStatusFailure    TaskStatus = "FAILURE"
)

// TaskType identifies the kind of work a task performs
type TaskType string

const (
	TaskTypeEnhance TaskType = "enhance"
)

// ErrTaskNotFound is returned when no task exists for a process ID
var ErrTaskNotFound = errors.New("task not found")

// TaskResult is the stored state of a task, updated as it moves through its
// lifecycle and returned verbatim to status polls.
type TaskResult struct {
	ProcessID      string                 `json:"processId"`
	Type           TaskType               `json:"type"`
	Status         TaskStatus             `json:"status"`
	Data           interface{}            `json:"data,omitempty"`
	Error          string                 `json:"error,omitempty"`
	CreatedAt      time.Time              `json:"createdAt"`
	CompletedAt    *time.Time             `json:"completedAt,omitempty"`
	ProcessingTime *time.Duration         `json:"processingTime,omitempty"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
}

// EnhanceTaskData is the completion payload of an enhance task: the raw
// collaborator output together with its normalized canonical form.
type EnhanceTaskData struct {
	Raw    *models.RawResumeDocument `json:"raw,omitempty"`
	Resume *models.ResumeDocument    `json:"resume,omitempty"`
}

// TaskStore persists task results between submission and polling
type TaskStore interface {
	Store(ctx context.Context, result *TaskResult) error
	Get(ctx context.Context, processID string) (*TaskResult, error)
	Update(ctx context.Context, result *TaskResult) error
	Delete(ctx context.Context, processID string) error

	// Cleanup drops results older than maxAge
	Cleanup(ctx context.Context, maxAge time.Duration) error

	// List returns every stored result, for monitoring
	List(ctx context.Context) ([]*TaskResult, error)
}

// InMemoryTaskStore keeps task results in a mutex-guarded map. Results do not
// survive a restart; pollers get ErrTaskNotFound after one, which clients
// treat as a terminal state.
type InMemoryTaskStore struct {
	mu      sync.RWMutex
	results map[string]*TaskResult
}

// NewInMemoryTaskStore creates an empty in-memory task store
func NewInMemoryTaskStore() *InMemoryTaskStore {
	return &InMemoryTaskStore{results: make(map[string]*TaskResult)}
}

func (s *InMemoryTaskStore) Store(ctx context.Context, result *TaskResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[result.ProcessID] = result
	return nil
}

func (s *InMemoryTaskStore) Get(ctx context.Context, processID string) (*TaskResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.results[processID]
	if !ok {
		return nil, ErrTaskNotFound
	}
	return result, nil
}

func (s *InMemoryTaskStore) Update(ctx context.Context, result *TaskResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.results[result.ProcessID]; !ok {
		return ErrTaskNotFound
	}
	s.results[result.ProcessID] = result
	return nil
}

func (s *InMemoryTaskStore) Delete(ctx context.Context, processID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.results[processID]; !ok {
		return ErrTaskNotFound
	}
	delete(s.results, processID)
	return nil
}

func (s *InMemoryTaskStore) Cleanup(ctx context.Context, maxAge time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := time.Now().Add(-maxAge)
	for processID, result := range s.results {
		if result.CreatedAt.Before(cutoff) {
			delete(s.results, processID)
		}
	}
	return nil
}

func (s *InMemoryTaskStore) List(ctx context.Context) ([]*TaskResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	results := make([]*TaskResult, 0, len(s.results))
	for _, result := range s.results {
		results = append(results, result)
	}
	return results, nil
}
