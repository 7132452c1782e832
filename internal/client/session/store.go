package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/smrc/smrc-cli/internal/client/repositories/metadata"
	"github.com/smrc/smrc-cli/internal/client/token"
	"github.com/smrc/smrc-cli/internal/common"
	"github.com/smrc/smrc-cli/internal/logging"
)

const (
	// RecordKey holds the serialized Record.
	RecordKey = "session"
	// LastEmailKey remembers the email of the last successful login.
	LastEmailKey = "last_email"
)

// Record is the persisted session: the raw token and the profile decoded
// from it, always written and removed together.
type Record struct {
	Token         string    `json:"token"`
	Profile       Profile   `json:"profile"`
	EstablishedAt time.Time `json:"established_at"`
}

// Store holds the active session in memory and writes every change through
// to a metadata.Repository. It is safe for concurrent use.
type Store struct {
	repo   metadata.Repository
	roles  RoleResolver
	logger logging.Logger
	now    func() time.Time

	mu     sync.RWMutex
	record *Record
}

func NewStore(repo metadata.Repository, roles RoleResolver, logger logging.Logger) *Store {
	return &Store{
		repo:   repo,
		roles:  roles,
		logger: logger.With("component", "session"),
		now:    time.Now,
	}
}

// SetFromToken decodes raw and commits the resulting session. If the token
// cannot be decoded or carries no data object, the failure is logged,
// nothing changes and common.ErrInvalidToken is returned.
func (s *Store) SetFromToken(ctx context.Context, raw string) error {
	return s.commit(ctx, raw, nil)
}

// SetFromLogin is SetFromToken that also remembers email as the last login,
// in the same durable write.
func (s *Store) SetFromLogin(ctx context.Context, raw, email string) error {
	return s.commit(ctx, raw, map[string][]byte{LastEmailKey: []byte(email)})
}

func (s *Store) commit(ctx context.Context, raw string, extra map[string][]byte) error {
	claims, err := token.Decode(raw)
	if err != nil {
		s.logger.Error(ctx, "token decode failed", "error", err)
		return fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}
	if !claims.HasData() {
		s.logger.Error(ctx, "token payload has no data object")
		return fmt.Errorf("%w: missing data", common.ErrInvalidToken)
	}
	profile, err := profileFromData(claims.Data)
	if err != nil {
		s.logger.Error(ctx, "token profile mapping failed", "error", err)
		return fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}

	rec := &Record{Token: raw, Profile: profile, EstablishedAt: s.now().UTC()}
	blob, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	values := map[string][]byte{RecordKey: blob}
	for k, v := range extra {
		values[k] = v
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SetMany(ctx, values); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	s.record = rec

	s.logger.Debug(ctx, "session established", "user_id", profile.ID, "role", s.roles.Resolve(profile.AccountGroupID))
	return nil
}

// Clear forgets the session in memory and in durable storage.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx, RecordKey); err != nil {
		return fmt.Errorf("remove session: %w", err)
	}
	s.record = nil
	return nil
}

// Restore loads a previously persisted session into memory. The token is not
// re-validated. A missing record leaves the store empty and is not an error.
func (s *Store) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := s.repo.Get(ctx, RecordKey)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	if blob == nil {
		s.record = nil
		return nil
	}

	var rec Record
	if err := json.Unmarshal(blob, &rec); err != nil {
		return fmt.Errorf("%w: %w", common.ErrCorruptSession, err)
	}
	s.record = &rec
	return nil
}

// Exists reports whether a session record is present in durable storage.
func (s *Store) Exists(ctx context.Context) (bool, error) {
	blob, err := s.repo.Get(ctx, RecordKey)
	if err != nil {
		return false, fmt.Errorf("load session: %w", err)
	}
	return blob != nil, nil
}

// LastEmail returns the email of the last successful login, if any.
func (s *Store) LastEmail(ctx context.Context) (string, error) {
	b, err := s.repo.Get(ctx, LastEmailKey)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Record returns a copy of the in-memory session.
func (s *Store) Record() (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.record == nil {
		return Record{}, false
	}
	return *s.record, true
}

// Profile returns the active profile.
func (s *Store) Profile() (Profile, bool) {
	rec, ok := s.Record()
	return rec.Profile, ok
}

// Token returns the raw token of the active session, or "".
func (s *Store) Token() string {
	rec, _ := s.Record()
	return rec.Token
}

func (s *Store) UserID() ID {
	p, _ := s.Profile()
	return p.ID
}

func (s *Store) Name() string {
	p, _ := s.Profile()
	return p.Name
}

func (s *Store) Email() string {
	p, _ := s.Profile()
	return p.Email
}

func (s *Store) AccountID() ID {
	p, _ := s.Profile()
	return p.AccountID
}

func (s *Store) AccountGroup() *AccountGroup {
	p, _ := s.Profile()
	return p.AccountGroup
}

// Role resolves the active profile's account group. Without a session it
// is RoleCitizen.
func (s *Store) Role() Role {
	p, _ := s.Profile()
	return s.roles.Resolve(p.AccountGroupID)
}

func (s *Store) IsAuthority() bool {
	return s.Role() == RoleAuthority
}
