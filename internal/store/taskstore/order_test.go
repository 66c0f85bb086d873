package taskstore

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Makepad-fr/tada/internal/model"
)

func TestSort(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Priority: model.Low, Completed: true},
		{ID: 2, Priority: model.Low},
		{ID: 3, Priority: model.High, Completed: true},
		{ID: 4, Priority: model.Medium},
		{ID: 5, Priority: model.High},
		{ID: 6, Priority: model.Low},
	}
	Sort(tasks)

	var got []int
	for _, task := range tasks {
		got = append(got, task.ID)
	}
	if diff := cmp.Diff([]int{5, 4, 2, 6, 3, 1}, got); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}
}

func TestGroup(t *testing.T) {
	open := model.Task{ID: 1, Title: "open"}
	done := model.Task{ID: 2, Title: "done", Completed: true}

	tests := []struct {
		name  string
		tasks []model.Task
		want  []Row
	}{
		{
			name:  "empty",
			tasks: nil,
			want:  nil,
		},
		{
			name:  "open only",
			tasks: []model.Task{open},
			want: []Row{
				{Header: true, Group: GroupTodo},
				{Group: GroupTodo, Task: open},
			},
		},
		{
			name:  "done only",
			tasks: []model.Task{done},
			want: []Row{
				{Header: true, Group: GroupDone},
				{Group: GroupDone, Task: done},
			},
		},
		{
			name:  "both",
			tasks: []model.Task{open, done},
			want: []Row{
				{Header: true, Group: GroupTodo},
				{Group: GroupTodo, Task: open},
				{Header: true, Group: GroupDone},
				{Group: GroupDone, Task: done},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Group(tt.tasks)); diff != "" {
				t.Errorf("Group (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGroupDoesNotMutate(t *testing.T) {
	tasks := []model.Task{{ID: 1}, {ID: 2, Completed: true}}
	orig := append([]model.Task(nil), tasks...)
	Group(tasks)
	if diff := cmp.Diff(orig, tasks); diff != "" {
		t.Errorf("input mutated (-want +got):\n%s", diff)
	}
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		completed int
		want      model.Stats
	}{
		{"empty", 0, 0, model.Stats{}},
		{"one of three", 3, 1, model.Stats{Total: 3, Completed: 1, Remaining: 2, Percentage: 33}},
		{"two of three", 3, 2, model.Stats{Total: 3, Completed: 2, Remaining: 1, Percentage: 66}},
		{"all", 4, 4, model.Stats{Total: 4, Completed: 4, Percentage: 100}},
		{"one of seven", 7, 1, model.Stats{Total: 7, Completed: 1, Remaining: 6, Percentage: 14}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := make([]model.Task, tt.total)
			for i := 0; i < tt.completed; i++ {
				tasks[i].Completed = true
			}
			if diff := cmp.Diff(tt.want, ComputeStats(tasks)); diff != "" {
				t.Errorf("stats (-want +got):\n%s", diff)
			}
		})
	}
}
