package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	users  map[int64]*User
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[int64]*User), nextID: 1}
}

func (r *fakeRepo) emailTaken(email string, exceptID int64) bool {
	for _, u := range r.users {
		if u.Email == email && u.ID != exceptID {
			return true
		}
	}
	return false
}

func (r *fakeRepo) Create(_ context.Context, u *User) error {
	if r.emailTaken(u.Email, 0) {
		return ErrEmailTaken
	}
	u.ID = r.nextID
	r.nextID++
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeRepo) List(_ context.Context) ([]*User, error) {
	var out []*User
	for _, u := range r.users {
		copied := *u
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeRepo) Update(_ context.Context, u *User) error {
	if _, ok := r.users[u.ID]; !ok {
		return ErrNotFound
	}
	if r.emailTaken(u.Email, u.ID) {
		return ErrEmailTaken
	}
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func TestUserService(t *testing.T) {
	ctx := context.Background()

	t.Run("create trims fields", func(t *testing.T) {
		svc := NewService(newFakeRepo())
		u, err := svc.Create(ctx, CreateRequest{Name: " Alice ", Email: " alice@example.com "})
		require.NoError(t, err)
		assert.Equal(t, "Alice", u.Name)
		assert.Equal(t, "alice@example.com", u.Email)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		svc := NewService(newFakeRepo())
		_, err := svc.Create(ctx, CreateRequest{Name: "Alice", Email: "a@example.com"})
		require.NoError(t, err)
		_, err = svc.Create(ctx, CreateRequest{Name: "Bob", Email: "a@example.com"})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		svc := NewService(newFakeRepo())
		u, err := svc.Create(ctx, CreateRequest{Name: "Alice", Email: "a@example.com"})
		require.NoError(t, err)

		name := "Alicia"
		updated, err := svc.Update(ctx, u.ID, UpdateRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Alicia", updated.Name)
		assert.Equal(t, "a@example.com", updated.Email)
	})

	t.Run("operations on unknown users fail", func(t *testing.T) {
		svc := NewService(newFakeRepo())
		_, err := svc.GetByID(ctx, 99)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = svc.Update(ctx, 99, UpdateRequest{})
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, svc.Delete(ctx, 99), ErrNotFound)
	})
}
