package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/dmitrymomot/choreboard/pkg/backend"
	"github.com/dmitrymomot/choreboard/pkg/forms"
	"github.com/dmitrymomot/choreboard/pkg/sanitizer"
)

func (b *Backend) CreateProject(ctx context.Context, userID string, in forms.CreateProjectInput) (*backend.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.accounts[userID]; !ok {
		return nil, backend.ErrPermissionDenied
	}

	p := backend.Project{
		ID:          uuid.NewString(),
		OwnerID:     userID,
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   b.now(),
	}
	b.projects[p.ID] = p
	return &p, nil
}

func (b *Backend) UpdateProject(ctx context.Context, userID string, in forms.UpdateProjectInput) (*backend.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	p, ok := b.projects[in.ID]
	if !ok {
		return nil, backend.ErrNotFound
	}
	if !b.canManage(userID, p.ID) {
		return nil, backend.ErrPermissionDenied
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	b.projects[p.ID] = p
	return &p, nil
}

func (b *Backend) CreateColumn(ctx context.Context, userID string, in forms.CreateColumnInput) (*backend.Column, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.projects[in.ProjectID]; !ok {
		return nil, backend.ErrInvalidReference
	}
	if !b.canManage(userID, in.ProjectID) {
		return nil, backend.ErrPermissionDenied
	}

	position := 0
	for _, c := range b.columns {
		if c.ProjectID == in.ProjectID {
			position = max(position, c.Position+1)
		}
	}

	c := backend.Column{ID: uuid.NewString(), ProjectID: in.ProjectID, Name: in.Name, Position: position}
	b.columns[c.ID] = c
	return &c, nil
}

func (b *Backend) UpdateColumn(ctx context.Context, userID string, in forms.UpdateColumnInput) (*backend.Column, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	c, ok := b.columns[in.ID]
	if !ok {
		return nil, backend.ErrNotFound
	}
	if !b.canManage(userID, c.ProjectID) {
		return nil, backend.ErrPermissionDenied
	}
	c.Name = in.Name
	b.columns[c.ID] = c
	return &c, nil
}

func (b *Backend) CreateTask(ctx context.Context, userID string, in forms.CreateTaskInput) (*backend.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkTaskRefs(in.ProjectID, in.ColumnID, in.AssigneeID); err != nil {
		return nil, err
	}
	if !b.canEdit(userID, in.ProjectID) {
		return nil, backend.ErrPermissionDenied
	}

	now := b.now()
	t := backend.Task{
		ID:          uuid.NewString(),
		ProjectID:   in.ProjectID,
		ColumnID:    in.ColumnID,
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		Status:      in.Status,
		DueDate:     in.DueDate,
		DueTime:     in.DueTime,
		CreatedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.AssigneeID != nil {
		t.AssigneeID = *in.AssigneeID
	}
	b.tasks[t.ID] = t
	return &t, nil
}

func (b *Backend) UpdateTask(ctx context.Context, userID string, in forms.UpdateTaskInput) (*backend.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	t, ok := b.tasks[in.ID]
	if !ok {
		return nil, backend.ErrNotFound
	}
	if !b.canEdit(userID, t.ProjectID) {
		return nil, backend.ErrPermissionDenied
	}

	columnID := t.ColumnID
	if in.ColumnID != nil {
		columnID = *in.ColumnID
	}
	if err := b.checkTaskRefs(t.ProjectID, columnID, in.AssigneeID); err != nil {
		return nil, err
	}

	t.ColumnID = columnID
	setIf(&t.Title, in.Title)
	setIf(&t.Description, in.Description)
	setIf(&t.Priority, in.Priority)
	setIf(&t.Status, in.Status)
	setIf(&t.DueTime, in.DueTime)
	setIf(&t.AssigneeID, in.AssigneeID)
	if in.DueDate != nil {
		t.DueDate = in.DueDate
	}
	t.UpdatedAt = b.now()

	b.tasks[t.ID] = t
	return &t, nil
}

func (b *Backend) DeleteTask(ctx context.Context, userID string, in forms.TaskRefInput) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	t, ok := b.tasks[in.ID]
	if !ok {
		return backend.ErrNotFound
	}
	if !b.canEdit(userID, t.ProjectID) {
		return backend.ErrPermissionDenied
	}
	delete(b.tasks, in.ID)
	return nil
}

func (b *Backend) AddMember(ctx context.Context, userID string, in forms.AddMemberInput) (*backend.Member, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.projects[in.ProjectID]; !ok {
		return nil, backend.ErrInvalidReference
	}
	if !b.canManage(userID, in.ProjectID) {
		return nil, backend.ErrPermissionDenied
	}

	memberID, ok := b.byEmail[sanitizer.NormalizeEmail(in.Email)]
	if !ok {
		return nil, backend.ErrUserNotFound
	}
	if b.isOwner(memberID, in.ProjectID) {
		return nil, backend.ErrDuplicate
	}
	if _, exists := b.members[in.ProjectID][memberID]; exists {
		return nil, backend.ErrDuplicate
	}

	m := backend.Member{ProjectID: in.ProjectID, UserID: memberID, Email: in.Email, Role: in.Role}
	if b.members[in.ProjectID] == nil {
		b.members[in.ProjectID] = make(map[string]backend.Member)
	}
	b.members[in.ProjectID][memberID] = m
	return &m, nil
}

// SearchTasks returns tasks from projects the user can see, oldest first.
// The query matches title or description case-insensitively.
func (b *Backend) SearchTasks(ctx context.Context, userID string, in forms.SearchInput) ([]backend.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	out := []backend.Task{}
	for _, t := range b.tasks {
		if !b.canView(userID, t.ProjectID) {
			continue
		}
		if in.ProjectID != nil && t.ProjectID != *in.ProjectID {
			continue
		}
		if in.Status != nil && t.Status != *in.Status {
			continue
		}
		if in.Priority != nil && t.Priority != *in.Priority {
			continue
		}
		if in.Query != "" && !containsFold(t.Title, in.Query) && !containsFold(t.Description, in.Query) {
			continue
		}
		out = append(out, t)
	}

	slices.SortFunc(out, func(x, y backend.Task) int {
		if c := x.CreatedAt.Compare(y.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(x.ID, y.ID)
	})
	return out, nil
}

func (b *Backend) checkTaskRefs(projectID, columnID string, assigneeID *string) error {
	if _, ok := b.projects[projectID]; !ok {
		return backend.ErrInvalidReference
	}
	if c, ok := b.columns[columnID]; !ok || c.ProjectID != projectID {
		return backend.ErrInvalidReference
	}
	if assigneeID != nil && *assigneeID != "" && !b.canView(*assigneeID, projectID) {
		return backend.ErrInvalidReference
	}
	return nil
}

func (b *Backend) isOwner(userID, projectID string) bool {
	p, ok := b.projects[projectID]
	return ok && p.OwnerID == userID
}

func (b *Backend) role(userID, projectID string) string {
	if b.isOwner(userID, projectID) {
		return forms.RoleAdmin
	}
	return b.members[projectID][userID].Role
}

func (b *Backend) canView(userID, projectID string) bool {
	return b.role(userID, projectID) != ""
}

func (b *Backend) canEdit(userID, projectID string) bool {
	r := b.role(userID, projectID)
	return r == forms.RoleAdmin || r == forms.RoleMember
}

func (b *Backend) canManage(userID, projectID string) bool {
	return b.role(userID, projectID) == forms.RoleAdmin
}

func setIf(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
