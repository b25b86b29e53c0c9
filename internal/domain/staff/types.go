package staff

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidRole  = errors.New("invalid staff role")
)

type Role string

const (
	RoleViewer    Role = "viewer"
	RoleFrontDesk Role = "front_desk"
	RoleManager   Role = "manager"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleViewer, RoleFrontDesk, RoleManager:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if !emailPattern.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Credentials struct {
	email    Email
	password string
}

func NewCredentials(email Email, password string) Credentials {
	return Credentials{email: email, password: password}
}

func (c Credentials) Email() Email    { return c.email }
func (c Credentials) Password() string { return c.password }
