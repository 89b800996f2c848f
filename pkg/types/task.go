package types

import "time"

// Task statuses. A task progresses todo -> doing -> done, though any
// transition is allowed.
const (
	TaskStatusTodo  = "todo"
	TaskStatusDoing = "doing"
	TaskStatusDone  = "done"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

var validTaskStatuses = map[string]bool{
	TaskStatusTodo:  true,
	TaskStatusDoing: true,
	TaskStatusDone:  true,
}

var validPriorities = map[string]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
}

// ChecklistItem is a single line in a task's checklist.
type ChecklistItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Task is a work item. TabIDs are weak references to tabs; deleting a
// tab does not cascade here, and consumers skip ids that no longer
// resolve. CompletedSessions counts pomodoro completions linked to this
// task.
type Task struct {
	ID                string          `json:"id"`
	Title             string          `json:"title"`
	Description       string          `json:"description,omitempty"`
	Status            string          `json:"status"`
	Priority          string          `json:"priority"`
	DueDate           *time.Time      `json:"dueDate,omitempty"`
	CompletedAt       *time.Time      `json:"completedAt,omitempty"`
	BoardID           string          `json:"boardId,omitempty"`
	FolderID          string          `json:"folderId,omitempty"`
	TabIDs            []string        `json:"tabIds"`
	Checklist         []ChecklistItem `json:"checklist"`
	CompletedSessions int             `json:"completedSessions"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// EntityID returns the task id.
func (t Task) EntityID() string { return t.ID }

// Touch refreshes the modification timestamp.
func (t *Task) Touch(now time.Time) { t.UpdatedAt = now }

// SetStatus sets the task status and stamps CompletedAt when entering
// done. Returns ErrInvalidState if the status is not recognized.
func (t *Task) SetStatus(status string, now time.Time) error {
	if !validTaskStatuses[status] {
		return ErrInvalidState
	}
	t.Status = status
	if status == TaskStatusDone {
		done := now
		t.CompletedAt = &done
	} else {
		t.CompletedAt = nil
	}
	t.UpdatedAt = now
	return nil
}

// SetPriority sets the task priority. Returns ErrInvalidState if the
// priority is not recognized.
func (t *Task) SetPriority(priority string, now time.Time) error {
	if !validPriorities[priority] {
		return ErrInvalidState
	}
	t.Priority = priority
	t.UpdatedAt = now
	return nil
}

// Clone returns a deep copy. Task carries slices, so the shallow copy
// the collection hands out would alias them.
func (t Task) Clone() Task {
	c := t
	c.TabIDs = append([]string(nil), t.TabIDs...)
	c.Checklist = append([]ChecklistItem(nil), t.Checklist...)
	if t.DueDate != nil {
		d := *t.DueDate
		c.DueDate = &d
	}
	if t.CompletedAt != nil {
		d := *t.CompletedAt
		c.CompletedAt = &d
	}
	return c
}
