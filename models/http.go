package models

// Credentials is the body of POST /register and POST /login.
type Credentials struct {
	Username string `json:"username" validate:"required,max=80"`
	Password string `json:"password" validate:"required,max_bytes=72"`
}

// CreateTaskRequest is the body of POST /tasks.
// DueDate is kept as raw text so that an empty string can mean "no date".
type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required,max=100"`
	Description string  `json:"description" validate:"max=500"`
	DueDate     *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateStatusRequest is the body of PUT /tasks/{id}/status.
type UpdateStatusRequest struct {
	Status TaskStatus `json:"status" validate:"required,task_status"`
}
