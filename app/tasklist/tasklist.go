// Package tasklist implements task list operations on top of the task file. Each operation is a full
// read, decode, mutate, encode and write pipeline. The list is loaded from the file on every call and
// nothing is kept in memory between calls. Ids are 1-based positions, after every write they are exactly 1..n.
package tasklist

import (
	"bytes"
	"errors"
	"fmt"
	"iter"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/tasklist/app/codec"
	"github.com/umputun/tasklist/app/store"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/codec.go -pkg mocks -skip-ensure -fmt goimports . Codec

// status labels reported by List
const (
	StatusCompleted  = "completed"
	StatusIncomplete = "incomplete"
)

// Service runs task list operations against a single task file
type Service struct {
	Store Store
	Codec Codec
}

// Store defines byte-level access to the task file
type Store interface {
	Read() (store.ReadResult, error)
	Write(data []byte) error
	String() string
}

// Codec converts the list of tasks to and from the file content
type Codec interface {
	Decode(data []byte) ([]codec.Task, error)
	Encode(tasks []codec.Task) ([]byte, error)
}

// Entry is a single item produced by List
type Entry struct {
	ID          int
	Description string
	Status      string
}

// NotFoundError reported when id doesn't match any task
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %d not found", e.ID)
}

// IsNotFound checks if err is (or wraps) NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// New makes Service for the task file at path
func New(path string) (*Service, error) {
	c, err := codec.New()
	if err != nil {
		return nil, fmt.Errorf("failed to make codec: %w", err)
	}
	return &Service{Store: store.New(path), Codec: c}, nil
}

// Add appends a new incomplete task and returns it
func (s *Service) Add(description string) (codec.Task, error) {
	tasks, err := s.load()
	if err != nil {
		return codec.Task{}, err
	}
	task := codec.Task{ID: len(tasks) + 1, Description: description}
	tasks = append(tasks, task)
	if err := s.save(tasks); err != nil {
		return codec.Task{}, err
	}
	log.Printf("[DEBUG] added task %d to %s", task.ID, s.Store)
	return task, nil
}

// List returns a sequence of entries for all tasks. The file is never written.
func (s *Service) List() (iter.Seq[Entry], error) {
	tasks, err := s.load()
	if err != nil {
		return nil, err
	}
	return func(yield func(Entry) bool) {
		for _, t := range tasks {
			status := StatusIncomplete
			if t.Completed {
				status = StatusCompleted
			}
			if !yield(Entry{ID: t.ID, Description: t.Description, Status: status}) {
				return
			}
		}
	}, nil
}

// Tasks returns all tasks as stored in the file
func (s *Service) Tasks() ([]codec.Task, error) {
	return s.load()
}

// Toggle flips completion of the task with given id and returns the updated task
func (s *Service) Toggle(id int) (codec.Task, error) {
	tasks, err := s.load()
	if err != nil {
		return codec.Task{}, err
	}
	if id < 1 || id > len(tasks) {
		return codec.Task{}, &NotFoundError{ID: id}
	}
	tasks[id-1].Completed = !tasks[id-1].Completed
	if err := s.save(tasks); err != nil {
		return codec.Task{}, err
	}
	log.Printf("[DEBUG] task %d completed=%v in %s", id, tasks[id-1].Completed, s.Store)
	return tasks[id-1], nil
}

// Remove deletes the task with given id and renumbers the rest. Returns the removed task.
// Unknown id is reported with NotFoundError and the file is left untouched.
func (s *Service) Remove(id int) (codec.Task, error) {
	tasks, err := s.load()
	if err != nil {
		return codec.Task{}, err
	}

	idx := -1
	for i, t := range tasks {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return codec.Task{}, &NotFoundError{ID: id}
	}

	removed := tasks[idx]
	res := make([]codec.Task, 0, len(tasks)-1)
	res = append(res, tasks[:idx]...)
	res = append(res, tasks[idx+1:]...)
	for i := range res {
		res[i].ID = i + 1
	}
	if err := s.save(res); err != nil {
		return codec.Task{}, err
	}
	log.Printf("[DEBUG] removed task %d from %s, %d left", id, s.Store, len(res))
	return removed, nil
}

// load reads the file and decodes it. Empty file is an empty list, decoder is not called for it.
func (s *Service) load() ([]codec.Task, error) {
	res, err := s.Store.Read()
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(res.Content)) == 0 {
		if res.Created {
			log.Printf("[INFO] new task file %s", s.Store)
		}
		return []codec.Task{}, nil
	}
	tasks, err := s.Codec.Decode(res.Content)
	if err != nil {
		return nil, fmt.Errorf("can't load tasks from %s: %w", s.Store, err)
	}
	return tasks, nil
}

func (s *Service) save(tasks []codec.Task) error {
	data, err := s.Codec.Encode(tasks)
	if err != nil {
		return fmt.Errorf("can't encode tasks: %w", err)
	}
	return s.Store.Write(data)
}
