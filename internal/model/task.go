package model

// Task is the domain model for a todo entry.
// The store hands these out by value; mutating a copy never touches the list.
type Task struct {
	ID        int      `json:"id" yaml:"id"`
	Title     string   `json:"title" yaml:"title"`
	Priority  Priority `json:"priority" yaml:"priority"`
	Completed bool     `json:"completed" yaml:"completed"`
}

// Snapshot returns a full copy of t suitable for undoing a delete.
func (t Task) Snapshot() Snapshot {
	return Snapshot{
		ID:        t.ID,
		Title:     t.Title,
		Priority:  t.Priority,
		Completed: t.Completed,
	}
}

// Snapshot is an immutable record of a deleted task.
type Snapshot struct {
	ID        int
	Title     string
	Priority  Priority
	Completed bool
}

// Task rebuilds the task the snapshot was taken from.
func (s Snapshot) Task() Task {
	return Task{
		ID:        s.ID,
		Title:     s.Title,
		Priority:  s.Priority,
		Completed: s.Completed,
	}
}

// Stats summarises a task list for the header line.
type Stats struct {
	Total      int `json:"total" yaml:"total"`
	Completed  int `json:"completed" yaml:"completed"`
	Remaining  int `json:"remaining" yaml:"remaining"`
	Percentage int `json:"percentage" yaml:"percentage"`
}
