package board_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/choreboard/pkg/backend"
	"github.com/dmitrymomot/choreboard/pkg/forms"
)

// MockClient is a mock implementation of backend.Client.
type MockClient struct {
	mock.Mock
}

var _ backend.Client = (*MockClient)(nil)

func (m *MockClient) SignUp(ctx context.Context, in forms.SignUpInput) (*backend.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.User), args.Error(1)
}

func (m *MockClient) SignIn(ctx context.Context, in forms.SignInInput) (*backend.Session, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.Session), args.Error(1)
}

func (m *MockClient) SignOut(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockClient) ResetPassword(ctx context.Context, in forms.ForgotPasswordInput) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

func (m *MockClient) UpdatePassword(ctx context.Context, userID string, in forms.ChangePasswordInput) error {
	args := m.Called(ctx, userID, in)
	return args.Error(0)
}

func (m *MockClient) CurrentSession(ctx context.Context) (*backend.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.Session), args.Error(1)
}

func (m *MockClient) UpdateProfile(ctx context.Context, userID string, in forms.UpdateProfileInput) (*backend.Profile, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.Profile), args.Error(1)
}

func (m *MockClient) CreateProject(ctx context.Context, userID string, in forms.CreateProjectInput) (*backend.Project, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.Project), args.Error(1)
}

func (m *MockClient) UpdateProject(ctx context.Context, userID string, in forms.UpdateProjectInput) (*backend.Project, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.Project), args.Error(1)
}

func (m *MockClient) CreateColumn(ctx context.Context, userID string, in forms.CreateColumnInput) (*backend.Column, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.Column), args.Error(1)
}

func (m *MockClient) UpdateColumn(ctx context.Context, userID string, in forms.UpdateColumnInput) (*backend.Column, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.Column), args.Error(1)
}

func (m *MockClient) CreateTask(ctx context.Context, userID string, in forms.CreateTaskInput) (*backend.Task, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.Task), args.Error(1)
}

func (m *MockClient) UpdateTask(ctx context.Context, userID string, in forms.UpdateTaskInput) (*backend.Task, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.Task), args.Error(1)
}

func (m *MockClient) DeleteTask(ctx context.Context, userID string, in forms.TaskRefInput) error {
	args := m.Called(ctx, userID, in)
	return args.Error(0)
}

func (m *MockClient) AddMember(ctx context.Context, userID string, in forms.AddMemberInput) (*backend.Member, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.Member), args.Error(1)
}

func (m *MockClient) SearchTasks(ctx context.Context, userID string, in forms.SearchInput) ([]backend.Task, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]backend.Task), args.Error(1)
}
