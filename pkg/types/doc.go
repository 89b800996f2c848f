// Package types defines the Cupboard and Table storage interfaces, the
// workspace entity types (boards, folders, tabs, tasks, notes, sessions,
// history), the change-message model exchanged with the background service,
// and standard error values for the Satchel storage system.
package types
