// Package memory is an in-process backend.Client. State lives in maps guarded
// by one RWMutex; passwords are stored as bcrypt hashes. Like a browser
// client it holds a single current session.
package memory

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/choreboard/pkg/backend"
	"github.com/dmitrymomot/choreboard/pkg/forms"
	"github.com/dmitrymomot/choreboard/pkg/sanitizer"
)

// SessionTTL is how long a session started by SignUp or SignIn lasts.
const SessionTTL = 24 * time.Hour

type account struct {
	user backend.User
	hash []byte
}

// Backend implements backend.Client in memory.
type Backend struct {
	mu sync.RWMutex

	now        func() time.Time
	bcryptCost int

	accounts map[string]*account // by user id
	byEmail  map[string]string   // normalized email -> user id
	profiles map[string]backend.Profile
	projects map[string]backend.Project
	columns  map[string]backend.Column
	tasks    map[string]backend.Task
	members  map[string]map[string]backend.Member // project id -> user id -> member
	resets   []string
	session  *backend.Session
}

var _ backend.Client = (*Backend)(nil)

// Option configures a Backend.
type Option func(*Backend)

func WithClock(now func() time.Time) Option {
	return func(b *Backend) {
		if now != nil {
			b.now = now
		}
	}
}

// WithBcryptCost sets the hashing cost. Tests use bcrypt.MinCost.
func WithBcryptCost(cost int) Option {
	return func(b *Backend) {
		b.bcryptCost = cost
	}
}

func New(opts ...Option) *Backend {
	b := &Backend{
		now:        time.Now,
		bcryptCost: bcrypt.DefaultCost,
		accounts:   make(map[string]*account),
		byEmail:    make(map[string]string),
		profiles:   make(map[string]backend.Profile),
		projects:   make(map[string]backend.Project),
		columns:    make(map[string]backend.Column),
		tasks:      make(map[string]backend.Task),
		members:    make(map[string]map[string]backend.Member),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Backend) SignUp(ctx context.Context, in forms.SignUpInput) (*backend.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword(prehash(in.Password), b.bcryptCost)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	key := sanitizer.NormalizeEmail(in.Email)
	if _, ok := b.byEmail[key]; ok {
		return nil, backend.ErrUserExists
	}

	now := b.now()
	user := backend.User{ID: uuid.NewString(), Email: in.Email, CreatedAt: now}
	b.accounts[user.ID] = &account{user: user, hash: hash}
	b.byEmail[key] = user.ID
	b.profiles[user.ID] = backend.Profile{
		UserID:    user.ID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		UpdatedAt: now,
	}
	b.session = &backend.Session{UserID: user.ID, ExpiresAt: now.Add(SessionTTL)}

	return &user, nil
}

func (b *Backend) SignIn(ctx context.Context, in forms.SignInInput) (*backend.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	acc, ok := b.accounts[b.byEmail[sanitizer.NormalizeEmail(in.Email)]]
	if !ok {
		return nil, backend.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(acc.hash, prehash(in.Password)) != nil {
		return nil, backend.ErrInvalidCredentials
	}

	b.session = &backend.Session{UserID: acc.user.ID, ExpiresAt: b.now().Add(SessionTTL)}
	s := *b.session
	return &s, nil
}

func (b *Backend) SignOut(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.activeSession() == nil {
		b.session = nil
		return backend.ErrSessionMissing
	}
	b.session = nil
	return nil
}

func (b *Backend) ResetPassword(ctx context.Context, in forms.ForgotPasswordInput) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.byEmail[sanitizer.NormalizeEmail(in.Email)]; ok {
		b.resets = append(b.resets, in.Email)
	}
	return nil
}

func (b *Backend) UpdatePassword(ctx context.Context, userID string, in forms.ChangePasswordInput) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	acc, ok := b.accounts[userID]
	if !ok {
		return backend.ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword(acc.hash, prehash(in.CurrentPassword)) != nil {
		return backend.ErrInvalidCredentials
	}
	if in.NewPassword == in.CurrentPassword {
		return backend.ErrSamePassword
	}

	hash, err := bcrypt.GenerateFromPassword(prehash(in.NewPassword), b.bcryptCost)
	if err != nil {
		return err
	}
	acc.hash = hash
	return nil
}

func (b *Backend) CurrentSession(ctx context.Context) (*backend.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	s := b.activeSession()
	if s == nil {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (b *Backend) UpdateProfile(ctx context.Context, userID string, in forms.UpdateProfileInput) (*backend.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	p, ok := b.profiles[userID]
	if !ok {
		return nil, backend.ErrUserNotFound
	}
	if in.FirstName != nil {
		p.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		p.LastName = *in.LastName
	}
	p.UpdatedAt = b.now()
	b.profiles[userID] = p
	return &p, nil
}

// ResetRequests lists the addresses a reset was sent to, oldest first.
func (b *Backend) ResetRequests() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.resets)
}

// Profile returns the stored profile for userID.
func (b *Backend) Profile(userID string) (backend.Profile, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	p, ok := b.profiles[userID]
	return p, ok
}

func (b *Backend) activeSession() *backend.Session {
	if b.session == nil || !b.now().Before(b.session.ExpiresAt) {
		return nil
	}
	return b.session
}

// prehash maps a password of any accepted length to 64 bytes, under the
// 72 byte bcrypt input limit.
func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	dst := make([]byte, hex.EncodedLen(len(sum)))
	hex.Encode(dst, sum[:])
	return dst
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
