// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskFlow Authors

package models

import "time"

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	StatusCreated    TaskStatus = "Created"
	StatusInProgress TaskStatus = "InProgress"
	StatusCompleted  TaskStatus = "Completed"
)

// TaskStatuses lists every accepted status value.
var TaskStatuses = []TaskStatus{StatusCreated, StatusInProgress, StatusCompleted}

// IsValid reports whether s is one of [TaskStatuses].
func (s TaskStatus) IsValid() bool {
	for _, status := range TaskStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// String implements [fmt.Stringer].
func (s TaskStatus) String() string {
	return string(s)
}

// Task is a unit of work owned by exactly one user.
type Task struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`

	// Title is stored trimmed and is never empty.
	Title string `json:"title"`

	// Description is free text, empty when not provided.
	Description string `json:"description"`

	// Status defaults to [StatusCreated].
	Status TaskStatus `json:"status"`

	// DueDate is an optional calendar date, serialized as YYYY-MM-DD or null.
	DueDate *Date `json:"due_date"`

	// UserID is the owner. Every store query is scoped by it.
	UserID int64 `json:"user_id"`

	// ExternalTicketID is the number of the mirrored GitHub issue, if any.
	ExternalTicketID *int64 `json:"external_ticket_id"`

	// CreatedAt is set once by the database at insert time.
	CreatedAt time.Time `json:"created_at"`
}

// TaskFilter narrows an owner-scoped task listing.
// Empty Status and Query mean "no restriction".
type TaskFilter struct {
	UserID int64

	// Status keeps tasks whose status equals it exactly.
	Status TaskStatus

	// Query keeps tasks whose title contains it, case-insensitively.
	Query string
}

// StatusChange is the result of a status update: the updated task and the
// status it had before the update.
type StatusChange struct {
	Task           Task
	PreviousStatus TaskStatus
}
