// Package directory holds the in-memory user and group directory that task
// scripts operate on.
package directory

import (
	"errors"
	"sort"
)

var (
	// ErrUserExists is returned when creating a user that is already present.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound is returned when an operation names an unknown user.
	ErrUserNotFound = errors.New("user does not exist")
	// ErrUserDisabled is returned when messaging a disabled user.
	ErrUserDisabled = errors.New("user is disabled")
)

// User is a single directory entry.
type User struct {
	Name    string
	Enabled bool
	// Messages is append-only and kept in delivery order.
	Messages []string
	Groups   map[string]struct{}
}

// Store is a map backed Directory. The zero value is not usable, call New.
type Store struct {
	users  map[string]*User
	groups map[string]struct{}
}

// New creates an empty Store.
func New() *Store {
	s := &Store{}
	s.Reset()
	return s
}

// Reset drops every user and group.
func (s *Store) Reset() {
	s.users = make(map[string]*User)
	s.groups = make(map[string]struct{})
}

// CreateUser adds an enabled user with no messages or groups.
func (s *Store) CreateUser(name string) error {
	if _, ok := s.users[name]; ok {
		return ErrUserExists
	}

	s.users[name] = &User{
		Name:    name,
		Enabled: true,
		Groups:  make(map[string]struct{}),
	}
	return nil
}

// DeleteUser removes the user along with any group only it belonged to.
func (s *Store) DeleteUser(name string) error {
	user, ok := s.users[name]
	if !ok {
		return ErrUserNotFound
	}

	delete(s.users, name)
	for group := range user.Groups {
		s.dropGroupIfEmpty(group)
	}
	return nil
}

// DisableUser marks the user disabled. Disabling twice is not an error.
func (s *Store) DisableUser(name string) error {
	user, ok := s.users[name]
	if !ok {
		return ErrUserNotFound
	}

	user.Enabled = false
	return nil
}

// UserExists reports whether the user is present.
func (s *Store) UserExists(name string) bool {
	_, ok := s.users[name]
	return ok
}

// IsUserEnabled reports whether the user is present and enabled.
func (s *Store) IsUserEnabled(name string) bool {
	user, ok := s.users[name]
	return ok && user.Enabled
}

// SendMessage appends a message to an enabled user's history.
func (s *Store) SendMessage(name, message string) error {
	user, ok := s.users[name]
	switch {
	case !ok:
		return ErrUserNotFound
	case !user.Enabled:
		return ErrUserDisabled
	}

	user.Messages = append(user.Messages, message)
	return nil
}

// AddUserToGroup adds the user to the group, creating the group if needed.
func (s *Store) AddUserToGroup(name, group string) error {
	user, ok := s.users[name]
	if !ok {
		return ErrUserNotFound
	}

	user.Groups[group] = struct{}{}
	s.groups[group] = struct{}{}
	return nil
}

// RemoveUserFromGroup removes the user from the group. The user not being a
// member is not an error. Groups with no remaining members are dropped.
func (s *Store) RemoveUserFromGroup(name, group string) error {
	user, ok := s.users[name]
	if !ok {
		return ErrUserNotFound
	}

	delete(user.Groups, group)
	s.dropGroupIfEmpty(group)
	return nil
}

func (s *Store) dropGroupIfEmpty(group string) {
	for _, user := range s.users {
		if _, ok := user.Groups[group]; ok {
			return
		}
	}
	delete(s.groups, group)
}

// ListUsers returns every user name in ascending order.
func (s *Store) ListUsers() []string {
	out := make([]string, 0, len(s.users))
	for name := range s.users {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ListGroups returns every group name in ascending order.
func (s *Store) ListGroups() []string {
	out := make([]string, 0, len(s.groups))
	for group := range s.groups {
		out = append(out, group)
	}
	sort.Strings(out)
	return out
}

// MessageHistory returns a copy of the user's messages in delivery order.
func (s *Store) MessageHistory(name string) ([]string, error) {
	user, ok := s.users[name]
	if !ok {
		return nil, ErrUserNotFound
	}

	return append([]string(nil), user.Messages...), nil
}
