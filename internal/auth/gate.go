// Package auth resolves login credentials to a role and handles signup.
// It reads and writes the users table only.
//
// Login matches the request password against the stored column value by
// exact equality, the way the service always has: signup stores a bcrypt
// digest, so signup-created accounts authenticate with that digest string,
// while rows seeded with plaintext passwords match their plaintext. No
// hash comparison happens at login.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/hessin2010king/backend/internal/storage/users"
	"github.com/hessin2010king/backend/internal/types"
)

var (
	// ErrInvalidCredentials means no user matched username+password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccessDenied means the credentials matched a user of the wrong role.
	ErrAccessDenied = errors.New("access denied")
	// ErrUsernameTaken means signup was rejected before any mutation.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrBadRole means the signup role override was neither admin nor user.
	ErrBadRole = errors.New("role must be admin or user")
)

type Gate struct {
	users  users.Repository
	hasher Hasher
}

func NewGate(ur users.Repository, h Hasher) *Gate {
	return &Gate{users: ur, hasher: h}
}

// Login authenticates username+password and requires the matched user to
// hold the wanted role. The two failure kinds stay distinct: a missing
// match is ErrInvalidCredentials, a role mismatch is ErrAccessDenied.
func (g *Gate) Login(ctx context.Context, username, password string, want types.Role) (*types.User, error) {
	user, err := g.users.GetByCredentials(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("looking up credentials: %w", err)
	}

	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if user.Role != want {
		return nil, ErrAccessDenied
	}

	return user, nil
}

type SignupRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	// Role is optional; empty defaults to user.
	Role types.Role `json:"role"`
}

// Signup checks username uniqueness first and inserts nothing when the name
// is taken. The password is hashed before storage.
func (g *Gate) Signup(ctx context.Context, req SignupRequest) (*types.User, error) {
	role := req.Role
	if role == "" {
		role = types.RoleUser
	}
	if !role.Valid() {
		return nil, ErrBadRole
	}

	existing, err := g.users.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("checking username: %w", err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	digest, err := g.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user, err := g.users.Create(ctx, &types.User{
		Username:  req.Username,
		Password:  digest,
		Role:      role,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}
