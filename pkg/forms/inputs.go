package forms

import "time"

// Sanitized inputs produced by the composites in this package. Pointer fields
// are nil when the key was absent from the raw input. JSON names match the
// raw input keys.

type SignUpInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type SignInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordInput struct {
	Email string `json:"email"`
}

// ChangePasswordInput drops the confirmation once it has been matched.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type UpdateProfileInput struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

type CreateProjectInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type UpdateProjectInput struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type CreateColumnInput struct {
	ProjectID string `json:"projectId"`
	Name      string `json:"name"`
}

type UpdateColumnInput struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateTaskInput struct {
	ProjectID   string     `json:"projectId"`
	ColumnID    string     `json:"columnId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	DueTime     string     `json:"dueTime,omitempty"`
	AssigneeID  *string    `json:"assigneeId,omitempty"`
}

type UpdateTaskInput struct {
	ID          string     `json:"id"`
	ColumnID    *string    `json:"columnId,omitempty"`
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	Status      *string    `json:"status,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	DueTime     *string    `json:"dueTime,omitempty"`
	AssigneeID  *string    `json:"assigneeId,omitempty"`
}

type TaskRefInput struct {
	ID string `json:"id"`
}

type AddMemberInput struct {
	ProjectID string `json:"projectId"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

type SearchInput struct {
	Query     string  `json:"query,omitempty"`
	Status    *string `json:"status,omitempty"`
	Priority  *string `json:"priority,omitempty"`
	ProjectID *string `json:"projectId,omitempty"`
}

// IsEmpty reports whether no filter narrows the search.
func (s SearchInput) IsEmpty() bool {
	return s.Query == "" && s.Status == nil && s.Priority == nil && s.ProjectID == nil
}
