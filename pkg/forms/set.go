package forms

import (
	"time"

	"github.com/dmitrymomot/choreboard/pkg/schema"
	"github.com/dmitrymomot/choreboard/pkg/validator"
)

// Option configures a Set.
type Option func(*options)

type options struct {
	password validator.PasswordStrengthConfig
	lenient  bool
	testIDs  bool
	now      func() time.Time
}

// WithLenientPasswords applies only the length bounds to new passwords.
// Intended for test and seeded environments.
func WithLenientPasswords() Option {
	return func(o *options) {
		o.password = validator.LenientPasswordStrength()
		o.lenient = true
	}
}

// WithPasswordStrength sets an explicit strength policy.
func WithPasswordStrength(cfg validator.PasswordStrengthConfig) Option {
	return func(o *options) {
		o.password = cfg
		o.lenient = false
	}
}

// WithTestIDs accepts token identifiers in addition to UUIDs.
func WithTestIDs() Option {
	return func(o *options) {
		o.testIDs = true
	}
}

// WithClock sets the clock used for due date bounds.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// Set holds the composite schemas for one configuration. It is immutable
// and safe for concurrent use.
type Set struct {
	lenient bool
	testIDs bool

	signUp         schema.Schema[SignUpInput]
	signIn         schema.Schema[SignInInput]
	forgotPassword schema.Schema[ForgotPasswordInput]
	changePassword schema.Schema[ChangePasswordInput]
	updateProfile  schema.Schema[UpdateProfileInput]
	createProject  schema.Schema[CreateProjectInput]
	updateProject  schema.Schema[UpdateProjectInput]
	createColumn   schema.Schema[CreateColumnInput]
	updateColumn   schema.Schema[UpdateColumnInput]
	createTask     schema.Schema[CreateTaskInput]
	updateTask     schema.Schema[UpdateTaskInput]
	taskRef        schema.Schema[TaskRefInput]
	addMember      schema.Schema[AddMemberInput]
	search         schema.Schema[SearchInput]
}

// New builds every composite once. Defaults: strict passwords, UUID-only
// identifiers, time.Now.
func New(opts ...Option) *Set {
	o := options{
		password: validator.DefaultPasswordStrength(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	id := ID
	if o.testIDs {
		id = IDOrTestID
	}

	s := &Set{
		lenient: o.lenient,
		testIDs: o.testIDs,
	}
	s.buildAuth(o)
	s.buildProjects(id)
	s.buildTasks(id, o.now)
	return s
}

// Lenient reports whether the set was built with WithLenientPasswords.
func (s *Set) Lenient() bool { return s.lenient }

// TestIDs reports whether token identifiers are accepted.
func (s *Set) TestIDs() bool { return s.testIDs }

func (s *Set) SignUp() schema.Schema[SignUpInput]                 { return s.signUp }
func (s *Set) SignIn() schema.Schema[SignInInput]                 { return s.signIn }
func (s *Set) ForgotPassword() schema.Schema[ForgotPasswordInput] { return s.forgotPassword }
func (s *Set) ChangePassword() schema.Schema[ChangePasswordInput] { return s.changePassword }
func (s *Set) UpdateProfile() schema.Schema[UpdateProfileInput]   { return s.updateProfile }
func (s *Set) CreateProject() schema.Schema[CreateProjectInput]   { return s.createProject }
func (s *Set) UpdateProject() schema.Schema[UpdateProjectInput]   { return s.updateProject }
func (s *Set) CreateColumn() schema.Schema[CreateColumnInput]     { return s.createColumn }
func (s *Set) UpdateColumn() schema.Schema[UpdateColumnInput]     { return s.updateColumn }
func (s *Set) CreateTask() schema.Schema[CreateTaskInput]         { return s.createTask }
func (s *Set) UpdateTask() schema.Schema[UpdateTaskInput]         { return s.updateTask }
func (s *Set) TaskRef() schema.Schema[TaskRefInput]               { return s.taskRef }
func (s *Set) AddMember() schema.Schema[AddMemberInput]           { return s.addMember }
func (s *Set) Search() schema.Schema[SearchInput]                 { return s.search }

func (s *Set) buildAuth(o options) {
	email := Email("email", "Email")

	s.signUp = schema.Map(schema.NewObject(
		schema.Required("email", email),
		schema.Required("password", Password("password", "Password", o.password)),
		schema.Required("firstName", Name("firstName", "First name")),
		schema.Required("lastName", Name("lastName", "Last name")),
	), func(v schema.Values) SignUpInput {
		return SignUpInput{
			Email:     v.String("email"),
			Password:  v.String("password"),
			FirstName: v.String("firstName"),
			LastName:  v.String("lastName"),
		}
	})

	s.signIn = schema.Map(schema.NewObject(
		schema.Required("email", email),
		schema.Required("password", ExistingPassword("password", "Password")),
	), func(v schema.Values) SignInInput {
		return SignInInput{Email: v.String("email"), Password: v.String("password")}
	})

	s.forgotPassword = schema.Map(schema.NewObject(
		schema.Required("email", email),
	), func(v schema.Values) ForgotPasswordInput {
		return ForgotPasswordInput{Email: v.String("email")}
	})

	newPassword := Password("newPassword", "New password", o.password)
	changePassword := schema.NewObject(
		schema.Required("currentPassword", ExistingPassword("currentPassword", "Current password")),
		schema.Required("newPassword", newPassword),
		schema.Required("confirmPassword", ExistingPassword("confirmPassword", "Password confirmation")),
	).Refine("Password confirmation", func(v schema.Values) validator.Rule {
		return validator.EqualString("confirmPassword", v.String("confirmPassword"), v.String("newPassword"), "the new password")
	}).Refine("New password", func(v schema.Values) validator.Rule {
		return validator.NotEqualString("newPassword", v.String("newPassword"), v.String("currentPassword"), "the current password")
	})
	s.changePassword = schema.Map(changePassword, func(v schema.Values) ChangePasswordInput {
		return ChangePasswordInput{
			CurrentPassword: v.String("currentPassword"),
			NewPassword:     v.String("newPassword"),
		}
	})

	s.updateProfile = schema.Map(schema.NewObject(
		schema.Optional("firstName", Name("firstName", "First name")),
		schema.Optional("lastName", Name("lastName", "Last name")),
	), func(v schema.Values) UpdateProfileInput {
		return UpdateProfileInput{
			FirstName: v.StringPtr("firstName"),
			LastName:  v.StringPtr("lastName"),
		}
	})
}

func (s *Set) buildProjects(id func(field, label string) *schema.String) {
	s.createProject = schema.Map(schema.NewObject(
		schema.Required("name", ProjectName()),
		schema.Optional("description", Description()),
	), func(v schema.Values) CreateProjectInput {
		return CreateProjectInput{Name: v.String("name"), Description: v.String("description")}
	})

	s.updateProject = schema.Map(schema.NewObject(
		schema.Required("id", id("id", "Project ID")),
		schema.Optional("name", ProjectName()),
		schema.Optional("description", Description()),
	), func(v schema.Values) UpdateProjectInput {
		return UpdateProjectInput{
			ID:          v.String("id"),
			Name:        v.StringPtr("name"),
			Description: v.StringPtr("description"),
		}
	})

	s.createColumn = schema.Map(schema.NewObject(
		schema.Required("projectId", id("projectId", "Project ID")),
		schema.Required("name", ColumnName()),
	), func(v schema.Values) CreateColumnInput {
		return CreateColumnInput{ProjectID: v.String("projectId"), Name: v.String("name")}
	})

	s.updateColumn = schema.Map(schema.NewObject(
		schema.Required("id", id("id", "Column ID")),
		schema.Required("name", ColumnName()),
	), func(v schema.Values) UpdateColumnInput {
		return UpdateColumnInput{ID: v.String("id"), Name: v.String("name")}
	})

	s.addMember = schema.Map(schema.NewObject(
		schema.Required("projectId", id("projectId", "Project ID")),
		schema.Required("email", Email("email", "Email")),
		schema.Required("role", Role()),
	), func(v schema.Values) AddMemberInput {
		return AddMemberInput{
			ProjectID: v.String("projectId"),
			Email:     v.String("email"),
			Role:      v.String("role"),
		}
	})
}

func (s *Set) buildTasks(id func(field, label string) *schema.String, now func() time.Time) {
	due := DueDate(now)
	dueTime := TimeOfDay("dueTime", "Due time")

	s.createTask = schema.Map(schema.NewObject(
		schema.Required("projectId", id("projectId", "Project ID")),
		schema.Required("columnId", id("columnId", "Column ID")),
		schema.Required("title", TaskTitle()),
		schema.Optional("description", Description()),
		schema.Required("priority", Priority()),
		schema.Required("status", Status()),
		schema.Optional("dueDate", due),
		schema.Optional("dueTime", dueTime),
		schema.Optional("assigneeId", OptionalID(id, "assigneeId", "Assignee ID")),
	), func(v schema.Values) CreateTaskInput {
		return CreateTaskInput{
			ProjectID:   v.String("projectId"),
			ColumnID:    v.String("columnId"),
			Title:       v.String("title"),
			Description: v.String("description"),
			Priority:    v.String("priority"),
			Status:      v.String("status"),
			DueDate:     v.Time("dueDate"),
			DueTime:     v.String("dueTime"),
			AssigneeID:  v.StringPtr("assigneeId"),
		}
	})

	s.updateTask = schema.Map(schema.NewObject(
		schema.Required("id", id("id", "Task ID")),
		schema.Optional("columnId", id("columnId", "Column ID")),
		schema.Optional("title", TaskTitle()),
		schema.Optional("description", Description()),
		schema.Optional("priority", Priority()),
		schema.Optional("status", Status()),
		schema.Optional("dueDate", due),
		schema.Optional("dueTime", dueTime),
		schema.Optional("assigneeId", OptionalID(id, "assigneeId", "Assignee ID")),
	), func(v schema.Values) UpdateTaskInput {
		return UpdateTaskInput{
			ID:          v.String("id"),
			ColumnID:    v.StringPtr("columnId"),
			Title:       v.StringPtr("title"),
			Description: v.StringPtr("description"),
			Priority:    v.StringPtr("priority"),
			Status:      v.StringPtr("status"),
			DueDate:     v.Time("dueDate"),
			DueTime:     v.StringPtr("dueTime"),
			AssigneeID:  v.StringPtr("assigneeId"),
		}
	})

	s.taskRef = schema.Map(schema.NewObject(
		schema.Required("id", id("id", "Task ID")),
	), func(v schema.Values) TaskRefInput {
		return TaskRefInput{ID: v.String("id")}
	})

	s.search = schema.Map(schema.NewObject(
		schema.Optional("query", SearchQuery()),
		schema.Optional("status", Status()),
		schema.Optional("priority", Priority()),
		schema.Optional("projectId", id("projectId", "Project ID")),
	), func(v schema.Values) SearchInput {
		return SearchInput{
			Query:     v.String("query"),
			Status:    v.StringPtr("status"),
			Priority:  v.StringPtr("priority"),
			ProjectID: v.StringPtr("projectId"),
		}
	})
}
