package store

import (
	"github.com/petar-djukic/satchel/pkg/types"
)

// AddTask inserts a task. Local origin assigns id, defaults, and
// timestamps, and queues persist and notify effects; remote origin is
// idempotent on id.
func (s *Store) AddTask(task types.Task, origin Origin) types.Task {
	if origin == OriginLocal {
		if task.ID == "" {
			task.ID = newID()
		}
		if task.Status == "" {
			task.Status = types.TaskStatusTodo
		}
		if task.Priority == "" {
			task.Priority = types.PriorityMedium
		}
		now := s.now()
		task.CreatedAt = now
		task.UpdatedAt = now
	}
	if task.TabIDs == nil {
		task.TabIDs = []string{}
	}
	if task.Checklist == nil {
		task.Checklist = []types.ChecklistItem{}
	}
	if !s.tasks.insert(task) {
		return task
	}
	if origin == OriginLocal {
		s.persistUpsert(types.TasksTable, task.ID, task)
		s.notify(types.EntityAdded{Kind: types.TasksTable, Entity: task})
	}
	s.changed(types.TasksTable)
	return task
}

// UpdateTask applies patch to the matching task and refreshes
// UpdatedAt. No-op if the id is unknown.
func (s *Store) UpdateTask(id string, patch func(*types.Task), origin Origin) {
	task, ok := s.tasks.get(id)
	if !ok {
		return
	}
	task = task.Clone()
	patch(&task)
	task.ID = id
	task.Touch(s.now())
	s.tasks.replace(task)
	if origin == OriginLocal {
		s.persistUpsert(types.TasksTable, id, task)
		s.notify(types.EntityUpdated{Kind: types.TasksTable, Entity: task})
	}
	s.changed(types.TasksTable)
}

// ReplaceTask overwrites the stored task wholesale; inserts when
// absent.
func (s *Store) ReplaceTask(task types.Task) {
	if !s.tasks.replace(task) {
		s.tasks.insert(task)
	}
	s.changed(types.TasksTable)
}

// DeleteTask removes a task.
func (s *Store) DeleteTask(id string, origin Origin) {
	if _, ok := s.tasks.remove(id); !ok {
		return
	}
	if origin == OriginLocal {
		s.persistDelete(types.TasksTable, id)
		s.notify(types.EntityDeleted{Kind: types.TasksTable, ID: id})
	}
	s.changed(types.TasksTable)
}

// IncrementTaskSessions bumps a task's completed-pomodoro counter. The
// timer store calls this when a work session tied to a task finishes.
func (s *Store) IncrementTaskSessions(id string) {
	s.UpdateTask(id, func(t *types.Task) {
		t.CompletedSessions++
	}, OriginLocal)
}
