// internal/app/store/users/userstore.go
package userstore

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/dalemusser/stratapulse/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
)

var (
	// ErrNotFound is returned when no user has the requested ID.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateID is returned when a replacement list or an explicit
	// create carries an ID that is already taken.
	ErrDuplicateID = errors.New("a user with this ID already exists")
)

// Store holds the working set of directory users in memory. The
// directory service is the system of record; this store is a mutable
// snapshot of it that handlers read and write between syncs.
//
// All read methods return deep copies, so callers can never mutate
// shared state through a returned user.
type Store struct {
	mu       sync.RWMutex
	users    []models.User
	lastSync time.Time
}

func New() *Store {
	return &Store{}
}

// Replace swaps the entire working set, as after a directory sync.
// IDs must be unique within the new list.
func (s *Store) Replace(users []models.User) error {
	seen := make(map[int]struct{}, len(users))
	for _, u := range users {
		if _, dup := seen[u.ID]; dup {
			return ErrDuplicateID
		}
		seen[u.ID] = struct{}{}
	}

	next := make([]models.User, len(users))
	for i, u := range users {
		next[i] = u.Clone()
	}

	s.mu.Lock()
	s.users = next
	s.lastSync = time.Now().UTC()
	s.mu.Unlock()
	return nil
}

// Create adds a new user at the front of the list. A zero ID is
// assigned the next free ID; an explicit ID must be unused.
func (s *Store) Create(u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.ID == 0 {
		u.ID = s.nextIDLocked()
	} else if s.indexOfLocked(u.ID) >= 0 {
		return models.User{}, ErrDuplicateID
	}

	s.users = append([]models.User{u.Clone()}, s.users...)
	return u, nil
}

// Update holds the fields that can be patched on a user. Nil fields
// are left unchanged.
type Update struct {
	FirstName *string
	LastName  *string
	Email     *string
	Image     *string
	Status    *string
	Role      *string
}

// Patch applies a partial update to the user with the given ID and
// returns the updated user.
func (s *Store) Patch(id int, upd Update) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfLocked(id)
	if i < 0 {
		return models.User{}, ErrNotFound
	}

	u := &s.users[i]
	if upd.FirstName != nil {
		u.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		u.LastName = *upd.LastName
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Image != nil {
		u.Image = *upd.Image
	}
	if upd.Status != nil {
		u.Status = *upd.Status
	}
	if upd.Role != nil {
		u.Role = *upd.Role
	}
	return u.Clone(), nil
}

// AppendLogin records a login event for the user, assigns the event
// an ID unique within that user's history, and advances LastActive
// when the event is newer.
func (s *Store) AppendLogin(id int, ev models.LoginEvent) (models.LoginEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOfLocked(id)
	if i < 0 {
		return models.LoginEvent{}, ErrNotFound
	}

	u := &s.users[i]
	maxID := 0
	for _, e := range u.LoginHistory {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	ev.ID = maxID + 1

	// Newest first, matching the order the directory feed uses.
	u.LoginHistory = append([]models.LoginEvent{ev}, u.LoginHistory...)
	if ev.Date.After(u.LastActive) {
		u.LastActive = ev.Date
	}
	return ev, nil
}

// GetByID returns a copy of the user with the given ID.
func (s *Store) GetByID(id int) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOfLocked(id)
	if i < 0 {
		return models.User{}, ErrNotFound
	}
	return s.users[i].Clone(), nil
}

// Snapshot returns a copy of the full working set in list order.
func (s *Store) Snapshot() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, len(s.users))
	for i, u := range s.users {
		out[i] = u.Clone()
	}
	return out
}

// Search returns users whose name, email, or role contains q,
// case/diacritic-insensitively. An empty q returns everyone.
func (s *Store) Search(q string) []models.User {
	folded := text.Fold(strings.TrimSpace(q))
	if folded == "" {
		return s.Snapshot()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.User
	for _, u := range s.users {
		haystack := text.Fold(u.FullName() + " " + u.Email + " " + u.Role)
		if strings.Contains(haystack, folded) {
			out = append(out, u.Clone())
		}
	}
	return out
}

// Count reports the number of users in the working set.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// LastSync reports when Replace last succeeded. Zero until the first
// sync completes.
func (s *Store) LastSync() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSync
}

func (s *Store) indexOfLocked(id int) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) nextIDLocked() int {
	maxID := 0
	for i := range s.users {
		if s.users[i].ID > maxID {
			maxID = s.users[i].ID
		}
	}
	return maxID + 1
}
