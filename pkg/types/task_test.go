package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaskSetStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		initial       string
		target        string
		wantErr       error
		wantCompleted bool
	}{
		{
			name:    "todo to doing",
			initial: TaskStatusTodo,
			target:  TaskStatusDoing,
		},
		{
			name:          "doing to done stamps CompletedAt",
			initial:       TaskStatusDoing,
			target:        TaskStatusDone,
			wantCompleted: true,
		},
		{
			name:    "done back to todo clears CompletedAt",
			initial: TaskStatusDone,
			target:  TaskStatusTodo,
		},
		{
			name:    "invalid status rejected",
			initial: TaskStatusTodo,
			target:  "blocked",
			wantErr: ErrInvalidState,
		},
		{
			name:    "empty status rejected",
			initial: TaskStatusTodo,
			target:  "",
			wantErr: ErrInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &Task{ID: "t1", Status: tt.initial}
			err := task.SetStatus(tt.target, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.initial, task.Status)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.target, task.Status)
			assert.Equal(t, now, task.UpdatedAt)
			if tt.wantCompleted {
				assert.NotNil(t, task.CompletedAt)
				assert.Equal(t, now, *task.CompletedAt)
			} else {
				assert.Nil(t, task.CompletedAt)
			}
		})
	}
}

func TestTaskSetPriority(t *testing.T) {
	now := time.Now()
	task := &Task{ID: "t1", Priority: PriorityLow}

	assert.NoError(t, task.SetPriority(PriorityHigh, now))
	assert.Equal(t, PriorityHigh, task.Priority)

	assert.ErrorIs(t, task.SetPriority("urgent", now), ErrInvalidState)
	assert.Equal(t, PriorityHigh, task.Priority)
}

func TestTaskClone(t *testing.T) {
	due := time.Now().Add(24 * time.Hour)
	task := Task{
		ID:        "t1",
		TabIDs:    []string{"a", "b"},
		Checklist: []ChecklistItem{{ID: "c1", Text: "step"}},
		DueDate:   &due,
	}

	clone := task.Clone()
	clone.TabIDs[0] = "z"
	clone.Checklist[0].Completed = true
	*clone.DueDate = due.Add(time.Hour)

	assert.Equal(t, "a", task.TabIDs[0])
	assert.False(t, task.Checklist[0].Completed)
	assert.Equal(t, due, *task.DueDate)
}
