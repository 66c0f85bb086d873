// Package taskstore holds the in-memory task list behind the todo screen.
//
// A Store is not safe for concurrent use. It is driven by a single event
// loop (the Bubble Tea Update method or the script runner) and every
// operation completes before returning.
package taskstore

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/model"
)

// Store owns the task list and the id counter.
type Store struct {
	tasks  []model.Task // always in display order
	nextID int
	log    *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger routes mutation logs to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// New returns an empty store whose first task gets id 1.
func New(opts ...Option) *Store {
	s := &Store{
		nextID: 1,
		log:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) allocID() int {
	id := s.nextID
	s.nextID++
	return id
}

func (s *Store) index(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) resort() { Sort(s.tasks) }

func validate(title string, p model.Priority) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", &ValidationError{Field: "title", Err: ErrEmptyTitle}
	}
	if !p.Valid() {
		return "", &ValidationError{Field: "priority", Err: ErrInvalidPriority}
	}
	return title, nil
}

// Add creates an open task with the next id.
func (s *Store) Add(title string, p model.Priority) (model.Task, error) {
	title, err := validate(title, p)
	if err != nil {
		return model.Task{}, err
	}
	t := model.Task{ID: s.allocID(), Title: title, Priority: p}
	s.tasks = append(s.tasks, t)
	s.resort()
	s.log.Debug("task added", "id", t.ID, "priority", t.Priority)
	return t, nil
}

// Edit replaces the title and priority of a task. ID and completion are kept.
func (s *Store) Edit(id int, title string, p model.Priority) (model.Task, error) {
	i := s.index(id)
	if i < 0 {
		return model.Task{}, &NotFoundError{ID: id}
	}
	title, err := validate(title, p)
	if err != nil {
		return model.Task{}, err
	}
	s.tasks[i].Title = title
	s.tasks[i].Priority = p
	t := s.tasks[i]
	s.resort()
	s.log.Debug("task edited", "id", id, "priority", p)
	return t, nil
}

// Toggle flips the completed flag of a task.
func (s *Store) Toggle(id int) (model.Task, error) {
	i := s.index(id)
	if i < 0 {
		return model.Task{}, &NotFoundError{ID: id}
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	t := s.tasks[i]
	s.resort()
	s.log.Debug("task toggled", "id", id, "completed", t.Completed)
	return t, nil
}

// Delete removes a task and returns a snapshot that Restore accepts.
func (s *Store) Delete(id int) (model.Snapshot, error) {
	i := s.index(id)
	if i < 0 {
		return model.Snapshot{}, &NotFoundError{ID: id}
	}
	snap := s.tasks[i].Snapshot()
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.log.Debug("task deleted", "id", id)
	return snap, nil
}

// Restore puts a deleted task back with its original id and fields.
// The id counter is not touched, so the restored id may be lower than ids
// allocated after the delete.
func (s *Store) Restore(snap model.Snapshot) (model.Task, error) {
	if s.index(snap.ID) >= 0 {
		return model.Task{}, &ConflictError{ID: snap.ID}
	}
	t := snap.Task()
	if _, err := validate(t.Title, t.Priority); err != nil {
		return model.Task{}, err
	}
	s.tasks = append(s.tasks, t)
	s.resort()
	s.log.Debug("task restored", "id", t.ID)
	return t, nil
}

// DeleteCompleted removes every completed task and returns how many went.
// There is no snapshot; callers should confirm with the user first.
func (s *Store) DeleteCompleted() int {
	kept := s.tasks[:0]
	n := 0
	for _, t := range s.tasks {
		if t.Completed {
			n++
			continue
		}
		kept = append(kept, t)
	}
	// zero the tail so removed titles are not retained by the backing array
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = model.Task{}
	}
	s.tasks = kept
	s.log.Debug("completed tasks deleted", "count", n)
	return n
}

// MarkAll sets every task's completed flag and returns how many changed.
func (s *Store) MarkAll(completed bool) int {
	n := 0
	for i := range s.tasks {
		if s.tasks[i].Completed != completed {
			s.tasks[i].Completed = completed
			n++
		}
	}
	s.resort()
	s.log.Debug("all tasks marked", "completed", completed, "count", n)
	return n
}

// Get returns a copy of a single task.
func (s *Store) Get(id int) (model.Task, error) {
	i := s.index(id)
	if i < 0 {
		return model.Task{}, &NotFoundError{ID: id}
	}
	return s.tasks[i], nil
}

// Len is the number of tasks.
func (s *Store) Len() int { return len(s.tasks) }

// Tasks returns a copy of the list in display order.
func (s *Store) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Rows returns the grouped view of the current list.
func (s *Store) Rows() []Row { return Group(s.Tasks()) }

// Stats returns the current counts.
func (s *Store) Stats() model.Stats { return ComputeStats(s.tasks) }
