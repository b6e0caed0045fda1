package auth

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hessin2010king/backend/internal/types"
)

type memUsers struct {
	rows   []*types.User
	nextId int64
}

func (m *memUsers) List(ctx context.Context) ([]*types.User, error) {
	return m.rows, nil
}

func (m *memUsers) GetByUsername(ctx context.Context, username string) (*types.User, error) {
	for _, u := range m.rows {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) GetByCredentials(ctx context.Context, username, password string) (*types.User, error) {
	for _, u := range m.rows {
		if u.Username == username && u.Password == password {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUsers) Create(ctx context.Context, user *types.User) (*types.User, error) {
	m.nextId++
	stored := *user
	stored.Id = m.nextId
	m.rows = append(m.rows, &stored)
	return &stored, nil
}

func (m *memUsers) Update(ctx context.Context, id int64, user *types.User) (*types.User, error) {
	ret := *user
	ret.Id = id
	return &ret, nil
}

func (m *memUsers) Delete(ctx context.Context, id int64) error {
	return nil
}

// plainHasher marks digests so tests can tell hashing happened without
// paying bcrypt cost everywhere.
type plainHasher struct{}

func (plainHasher) Hash(plaintext string) (string, error) {
	return "hashed:" + plaintext, nil
}

func seededGate(rows ...*types.User) (*Gate, *memUsers) {
	m := &memUsers{rows: rows, nextId: int64(len(rows))}
	for i, u := range rows {
		u.Id = int64(i + 1)
	}
	return NewGate(m, plainHasher{}), m
}

func TestLogin_AdminSuccess(t *testing.T) {
	gate, _ := seededGate(&types.User{Username: "root", Password: "secret", Role: types.RoleAdmin})

	user, err := gate.Login(context.Background(), "root", "secret", types.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, types.RoleAdmin, user.Role)
}

func TestLogin_WrongRoleIsAccessDenied(t *testing.T) {
	gate, _ := seededGate(&types.User{Username: "reader", Password: "secret", Role: types.RoleUser})

	_, err := gate.Login(context.Background(), "reader", "secret", types.RoleAdmin)

	// valid credentials with the wrong role must not look like a bad password
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUserIsInvalidCredentials(t *testing.T) {
	gate, _ := seededGate(&types.User{Username: "root", Password: "secret", Role: types.RoleAdmin})

	_, err := gate.Login(context.Background(), "nobody", "secret", types.RoleAdmin)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = gate.Login(context.Background(), "root", "wrong", types.RoleAdmin)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UserRoleSymmetric(t *testing.T) {
	gate, _ := seededGate(
		&types.User{Username: "root", Password: "secret", Role: types.RoleAdmin},
		&types.User{Username: "reader", Password: "secret", Role: types.RoleUser},
	)

	_, err := gate.Login(context.Background(), "reader", "secret", types.RoleUser)
	require.NoError(t, err)

	_, err = gate.Login(context.Background(), "root", "secret", types.RoleUser)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestLogin_ComparesStoredValueLiterally(t *testing.T) {
	// Signup stores a digest, so the digest string is what authenticates.
	// Login never hash-compares, it matches the stored column value.
	gate, m := seededGate()

	_, err := gate.Signup(context.Background(), SignupRequest{Username: "eve", Password: "pw"})
	require.NoError(t, err)

	_, err = gate.Login(context.Background(), "eve", "pw", types.RoleUser)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = gate.Login(context.Background(), "eve", m.rows[0].Password, types.RoleUser)
	assert.NoError(t, err)
}

func TestSignup_DefaultsToUserRole(t *testing.T) {
	gate, m := seededGate()

	user, err := gate.Signup(context.Background(), SignupRequest{
		Username:  "reader",
		Password:  "pw",
		FirstName: "Rea",
		LastName:  "Der",
		Email:     "reader@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, types.RoleUser, user.Role)
	assert.NotZero(t, user.Id)
	assert.Equal(t, "hashed:pw", m.rows[0].Password)
}

func TestSignup_RoleOverride(t *testing.T) {
	gate, _ := seededGate()

	user, err := gate.Signup(context.Background(), SignupRequest{
		Username: "boss",
		Password: "pw",
		Role:     types.RoleAdmin,
	})

	require.NoError(t, err)
	assert.Equal(t, types.RoleAdmin, user.Role)
}

func TestSignup_RejectsUnknownRole(t *testing.T) {
	gate, m := seededGate()

	_, err := gate.Signup(context.Background(), SignupRequest{
		Username: "odd",
		Password: "pw",
		Role:     "superuser",
	})

	assert.ErrorIs(t, err, ErrBadRole)
	assert.Empty(t, m.rows)
}

func TestSignup_DuplicateUsernameMutatesNothing(t *testing.T) {
	gate, m := seededGate(&types.User{Username: "taken", Password: "x", Role: types.RoleUser})

	before := len(m.rows)

	_, err := gate.Signup(context.Background(), SignupRequest{Username: "taken", Password: "pw"})

	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.Len(t, m.rows, before)
}

func TestBcryptHasher(t *testing.T) {
	h := BcryptHasher{Cost: bcrypt.MinCost}

	digest, err := h.Hash("opensesame")
	require.NoError(t, err)
	assert.NotEqual(t, "opensesame", digest)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(digest), []byte("opensesame")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(digest), []byte("other")))
}

func TestBcryptHasher_DistinctDigests(t *testing.T) {
	h := BcryptHasher{Cost: bcrypt.MinCost}

	seen := make(map[string]struct{})
	for i := 0; i < 3; i++ {
		digest, err := h.Hash("pw" + strconv.Itoa(i))
		require.NoError(t, err)
		seen[digest] = struct{}{}
	}

	assert.Len(t, seen, 3)
}
