package taskstore

import (
	"sort"

	"github.com/Makepad-fr/tada/internal/model"
)

// Less is the display order: open tasks before completed ones, then by
// priority rank.
func Less(a, b model.Task) bool {
	if a.Completed != b.Completed {
		return !a.Completed
	}
	return a.Priority.Rank() < b.Priority.Rank()
}

// Sort orders tasks in place. Equal keys keep their relative order so that
// editing one task does not shuffle its neighbours.
func Sort(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return Less(tasks[i], tasks[j])
	})
}

// GroupKind names the two display sections.
type GroupKind int

const (
	GroupTodo GroupKind = iota
	GroupDone
)

func (g GroupKind) String() string {
	if g == GroupDone {
		return "done"
	}
	return "todo"
}

func groupOf(t model.Task) GroupKind {
	if t.Completed {
		return GroupDone
	}
	return GroupTodo
}

// Row is one line of the grouped view: either a section header or a task.
type Row struct {
	Header bool
	Group  GroupKind
	Task   model.Task // zero for headers
}

// Group interleaves header rows into an already sorted task sequence.
// A header precedes the first task, and the first completed task that
// follows an open one. Group does not modify tasks.
func Group(tasks []model.Task) []Row {
	if len(tasks) == 0 {
		return nil
	}
	rows := make([]Row, 0, len(tasks)+2)
	for i, t := range tasks {
		if i == 0 || (!tasks[i-1].Completed && t.Completed) {
			rows = append(rows, Row{Header: true, Group: groupOf(t)})
		}
		rows = append(rows, Row{Group: groupOf(t), Task: t})
	}
	return rows
}

// ComputeStats counts tasks. Percentage is truncated, never rounded.
func ComputeStats(tasks []model.Task) model.Stats {
	st := model.Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			st.Completed++
		}
	}
	st.Remaining = st.Total - st.Completed
	if st.Total > 0 {
		st.Percentage = st.Completed * 100 / st.Total
	}
	return st
}
