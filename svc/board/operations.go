package board

import (
	"context"

	"github.com/dmitrymomot/choreboard/pkg/backend"
	"github.com/dmitrymomot/choreboard/pkg/outcome"
)

// Operation names used in logs.
const (
	OpSignUp         = "sign_up"
	OpSignIn         = "sign_in"
	OpSignOut        = "sign_out"
	OpForgotPassword = "forgot_password"
	OpChangePassword = "change_password"
	OpUpdateProfile  = "update_profile"
	OpCreateProject  = "create_project"
	OpUpdateProject  = "update_project"
	OpCreateColumn   = "create_column"
	OpUpdateColumn   = "update_column"
	OpCreateTask     = "create_task"
	OpUpdateTask     = "update_task"
	OpDeleteTask     = "delete_task"
	OpAddMember      = "add_member"
	OpSearch         = "search_tasks"
)

func (s *Service) SignUp(ctx context.Context, raw any) outcome.Outcome[*backend.User] {
	return run(ctx, s, OpSignUp, s.forms.SignUp(), raw, s.client.SignUp,
		outcome.WithSuccessToast("Account created. Welcome to ChoreBoard!"),
		outcome.WithErrorMessage("Could not create your account."),
	)
}

func (s *Service) SignIn(ctx context.Context, raw any) outcome.Outcome[*backend.Session] {
	return run(ctx, s, OpSignIn, s.forms.SignIn(), raw, s.client.SignIn,
		outcome.WithSuccessToast("Welcome back!"),
		outcome.WithErrorMessage("Could not sign you in."),
	)
}

// SignOut succeeds even when the session has already lapsed.
func (s *Service) SignOut(ctx context.Context) outcome.Outcome[struct{}] {
	ctx = s.scope(ctx, OpSignOut)
	return outcome.WrapSignOut(ctx, s.wrapper, s.client.SignOut,
		outcome.WithOperation(OpSignOut),
		outcome.WithSuccessToast("You have been signed out."),
		outcome.WithErrorMessage("Could not sign you out."),
	)
}

// ForgotPassword reports only whether the reset request was accepted.
func (s *Service) ForgotPassword(ctx context.Context, raw any) bool {
	ctx, res, opts := validate(ctx, s, OpForgotPassword, s.forms.ForgotPassword(), raw, []outcome.Option{
		outcome.WithSuccessToast("If an account exists for that email, a reset link is on its way."),
		outcome.WithErrorMessage("Could not send the reset link."),
	})
	if !res.Success {
		return outcome.Reject[struct{}](ctx, s.wrapper, res.Error, opts...).Success
	}
	return outcome.WrapBool(ctx, s.wrapper, func(ctx context.Context) error {
		return s.client.ResetPassword(ctx, res.Data)
	}, opts...)
}

func (s *Service) ChangePassword(ctx context.Context, raw any) outcome.Outcome[struct{}] {
	return runAsUser(ctx, s, OpChangePassword, s.forms.ChangePassword(), raw, done(s.client.UpdatePassword),
		outcome.WithSuccessToast("Your password has been changed."),
		outcome.WithErrorMessage("Could not change your password."),
	)
}

func (s *Service) UpdateProfile(ctx context.Context, raw any) outcome.Outcome[*backend.Profile] {
	return runAsUser(ctx, s, OpUpdateProfile, s.forms.UpdateProfile(), raw, s.client.UpdateProfile,
		outcome.WithSuccessToast("Profile updated."),
		outcome.WithErrorMessage("Could not update your profile."),
	)
}

func (s *Service) CreateProject(ctx context.Context, raw any) outcome.Outcome[*backend.Project] {
	return runAsUser(ctx, s, OpCreateProject, s.forms.CreateProject(), raw, s.client.CreateProject,
		outcome.WithSuccessToast("Project created."),
		outcome.WithErrorMessage("Could not create the project."),
	)
}

func (s *Service) UpdateProject(ctx context.Context, raw any) outcome.Outcome[*backend.Project] {
	return runAsUser(ctx, s, OpUpdateProject, s.forms.UpdateProject(), raw, s.client.UpdateProject,
		outcome.WithSuccessToast("Project updated."),
		outcome.WithErrorMessage("Could not update the project."),
	)
}

func (s *Service) CreateColumn(ctx context.Context, raw any) outcome.Outcome[*backend.Column] {
	return runAsUser(ctx, s, OpCreateColumn, s.forms.CreateColumn(), raw, s.client.CreateColumn,
		outcome.WithErrorMessage("Could not add the column."),
	)
}

func (s *Service) UpdateColumn(ctx context.Context, raw any) outcome.Outcome[*backend.Column] {
	return runAsUser(ctx, s, OpUpdateColumn, s.forms.UpdateColumn(), raw, s.client.UpdateColumn,
		outcome.WithErrorMessage("Could not rename the column."),
	)
}

func (s *Service) CreateTask(ctx context.Context, raw any) outcome.Outcome[*backend.Task] {
	return runAsUser(ctx, s, OpCreateTask, s.forms.CreateTask(), raw, s.client.CreateTask,
		outcome.WithSuccessToast("Task created."),
		outcome.WithErrorMessage("Could not create the task."),
	)
}

func (s *Service) UpdateTask(ctx context.Context, raw any) outcome.Outcome[*backend.Task] {
	return runAsUser(ctx, s, OpUpdateTask, s.forms.UpdateTask(), raw, s.client.UpdateTask,
		outcome.WithErrorMessage("Could not update the task."),
	)
}

// DeleteTask reports only whether the task was removed.
func (s *Service) DeleteTask(ctx context.Context, raw any) bool {
	ctx, res, opts := validate(ctx, s, OpDeleteTask, s.forms.TaskRef(), raw, []outcome.Option{
		outcome.WithSuccessToast("Task deleted."),
		outcome.WithErrorMessage("Could not delete the task."),
	})
	if !res.Success {
		return outcome.Reject[struct{}](ctx, s.wrapper, res.Error, opts...).Success
	}
	return outcome.WrapBoolWithSession(ctx, s.wrapper, s.Session, func(ctx context.Context, userID string) error {
		return s.client.DeleteTask(ctx, userID, res.Data)
	}, opts...)
}

func (s *Service) AddMember(ctx context.Context, raw any) outcome.Outcome[*backend.Member] {
	return runAsUser(ctx, s, OpAddMember, s.forms.AddMember(), raw, s.client.AddMember,
		outcome.WithSuccessToast("Member added."),
		outcome.WithErrorMessage("Could not add the member."),
	)
}

// Search runs without toasts on success; an empty filter lists every
// visible task.
func (s *Service) Search(ctx context.Context, raw any) outcome.Outcome[[]backend.Task] {
	return runAsUser(ctx, s, OpSearch, s.forms.Search(), raw, s.client.SearchTasks,
		outcome.WithErrorMessage("Search failed."),
	)
}
