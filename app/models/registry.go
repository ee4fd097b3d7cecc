package models

import "time"

// FieldDescriptor describes one displayable/manageable attribute of the
// student schema. Built-in descriptors come from the registry package;
// custom ones are stored in the registry_fields table.
type FieldDescriptor struct {
	ID       string `json:"id" validate:"required"`
	Label    string `json:"label" validate:"required"`
	Category string `json:"category"`
	Custom   bool   `json:"custom"`
}

// PendingUpdateRequest marks one field of one section as needing an update
// from students. The set for a section is replaced wholesale on each sync.
type PendingUpdateRequest struct {
	Section    string    `json:"section"`
	FieldLabel string    `json:"field_label"`
	CreatedAt  time.Time `json:"created_at"`
}

// Notification is a best-effort broadcast row for students of a section.
type Notification struct {
	Section   string    `json:"section"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
