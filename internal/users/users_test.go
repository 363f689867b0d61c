package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type fakeDirectory struct {
	users []User
}

func (f *fakeDirectory) List(ctx context.Context) ([]User, error) {
	return f.users, nil
}

func (f *fakeDirectory) FindByEmail(ctx context.Context, email string) (*User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func TestAuthenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("zaq1@WSX"), bcrypt.MinCost)
	assert.NoError(t, err)

	svc := NewService(&fakeDirectory{users: []User{
		{ID: 1, Email: "john@example.com", Name: "John Smith", PasswordHash: string(hash)},
	}})

	u, err := svc.Authenticate(context.Background(), "john@example.com", "zaq1@WSX")
	assert.NoError(t, err)
	assert.Equal(t, 1, u.ID)

	_, err = svc.Authenticate(context.Background(), "john@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "nobody@example.com", "zaq1@WSX")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
