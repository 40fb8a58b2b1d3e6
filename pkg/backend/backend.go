package backend

import (
	"context"
	"time"

	"github.com/dmitrymomot/choreboard/pkg/forms"
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Session identifies the signed in user.
type Session struct {
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Profile struct {
	UserID    string    `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Project struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Column struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
	Position  int    `json:"position"`
}

type Task struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id"`
	ColumnID    string     `json:"column_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	DueTime     string     `json:"due_time,omitempty"`
	AssigneeID  string     `json:"assignee_id,omitempty"`
	CreatedBy   string     `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type Member struct {
	ProjectID string `json:"project_id"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// Auth covers account and session operations.
type Auth interface {
	// SignUp creates the account and its profile and starts a session.
	SignUp(ctx context.Context, in forms.SignUpInput) (*User, error)
	SignIn(ctx context.Context, in forms.SignInInput) (*Session, error)
	// SignOut ends the current session. It returns ErrSessionMissing when none is active.
	SignOut(ctx context.Context) error
	// ResetPassword requests a reset link. Unknown addresses are not reported.
	ResetPassword(ctx context.Context, in forms.ForgotPasswordInput) error
	UpdatePassword(ctx context.Context, userID string, in forms.ChangePasswordInput) error
	// CurrentSession returns nil without error when nobody is signed in.
	CurrentSession(ctx context.Context) (*Session, error)
}

type Profiles interface {
	UpdateProfile(ctx context.Context, userID string, in forms.UpdateProfileInput) (*Profile, error)
}

// Board covers projects, columns, tasks and membership. userID is the acting user.
type Board interface {
	CreateProject(ctx context.Context, userID string, in forms.CreateProjectInput) (*Project, error)
	UpdateProject(ctx context.Context, userID string, in forms.UpdateProjectInput) (*Project, error)
	CreateColumn(ctx context.Context, userID string, in forms.CreateColumnInput) (*Column, error)
	UpdateColumn(ctx context.Context, userID string, in forms.UpdateColumnInput) (*Column, error)
	CreateTask(ctx context.Context, userID string, in forms.CreateTaskInput) (*Task, error)
	UpdateTask(ctx context.Context, userID string, in forms.UpdateTaskInput) (*Task, error)
	DeleteTask(ctx context.Context, userID string, in forms.TaskRefInput) error
	AddMember(ctx context.Context, userID string, in forms.AddMemberInput) (*Member, error)
	SearchTasks(ctx context.Context, userID string, in forms.SearchInput) ([]Task, error)
}

// Client is the full backend surface.
type Client interface {
	Auth
	Profiles
	Board
}
