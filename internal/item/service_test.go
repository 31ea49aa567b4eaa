package item

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peerlend/peerlend-backend/internal/user"
)

type fakeRepo struct {
	items    map[int64]*Item
	comments map[int64][]*Comment
	nextID   int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		items:    make(map[int64]*Item),
		comments: make(map[int64][]*Comment),
		nextID:   1,
	}
}

func (r *fakeRepo) Create(_ context.Context, it *Item) error {
	it.ID = r.nextID
	r.nextID++
	copied := *it
	r.items[it.ID] = &copied
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *it
	return &copied, nil
}

func (r *fakeRepo) ListByOwner(_ context.Context, ownerID int64) ([]*Item, error) {
	var out []*Item
	for _, it := range r.items {
		if it.OwnerID == ownerID {
			copied := *it
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeRepo) Search(_ context.Context, _ string) ([]*Item, error) {
	panic("not used")
}

func (r *fakeRepo) ListByRequest(_ context.Context, _ int64) ([]*Item, error) {
	return nil, nil
}

func (r *fakeRepo) Update(_ context.Context, it *Item) error {
	if _, ok := r.items[it.ID]; !ok {
		return ErrNotFound
	}
	copied := *it
	r.items[it.ID] = &copied
	return nil
}

func (r *fakeRepo) CreateComment(_ context.Context, cm *Comment) error {
	cm.ID = r.nextID
	r.nextID++
	cm.Created = time.Now()
	copied := *cm
	r.comments[cm.ItemID] = append(r.comments[cm.ItemID], &copied)
	return nil
}

func (r *fakeRepo) ListComments(_ context.Context, itemID int64) ([]*Comment, error) {
	return r.comments[itemID], nil
}

type fakeUsers struct {
	users map[int64]*user.User
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) Create(context.Context, user.CreateRequest) (*user.User, error) {
	panic("not used")
}
func (f *fakeUsers) List(context.Context) ([]*user.User, error) { panic("not used") }
func (f *fakeUsers) Update(context.Context, int64, user.UpdateRequest) (*user.User, error) {
	panic("not used")
}
func (f *fakeUsers) Delete(context.Context, int64) error { panic("not used") }

type fakeBookings struct {
	last, next  *BookingWindow
	pastBooking map[int64]map[int64]bool // userID -> itemID -> has one
}

func (f *fakeBookings) Windows(_ context.Context, _ int64) (*BookingWindow, *BookingWindow, error) {
	return f.last, f.next, nil
}

func (f *fakeBookings) HasPastBooking(_ context.Context, userID, itemID int64) (bool, error) {
	return f.pastBooking[userID][itemID], nil
}

const (
	ownerID  = int64(1)
	otherID  = int64(2)
	renterID = int64(3)
)

func newTestService(bookings *fakeBookings) (Service, *fakeRepo) {
	repo := newFakeRepo()
	users := &fakeUsers{users: map[int64]*user.User{
		ownerID:  {ID: ownerID, Name: "Alice", Email: "alice@example.com"},
		otherID:  {ID: otherID, Name: "Bob", Email: "bob@example.com"},
		renterID: {ID: renterID, Name: "Carol", Email: "carol@example.com"},
	}}
	if bookings == nil {
		bookings = &fakeBookings{}
	}
	return NewService(repo, users, bookings), repo
}

func createItem(t *testing.T, svc Service) *Item {
	t.Helper()
	it, err := svc.Create(context.Background(), CreateRequest{
		OwnerID:     ownerID,
		Name:        "Drill",
		Description: "Cordless drill",
		Available:   true,
	})
	require.NoError(t, err)
	return it
}

func TestCreateItem(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(nil)

	t.Run("creates for an existing owner", func(t *testing.T) {
		it := createItem(t, svc)
		assert.Equal(t, ownerID, it.OwnerID)
		assert.NotZero(t, it.ID)
	})

	t.Run("unknown owner fails", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{OwnerID: 99, Name: "x", Description: "y"})
		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}

func TestUpdateItem(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(nil)
	it := createItem(t, svc)

	t.Run("owner updates fields partially", func(t *testing.T) {
		available := false
		updated, err := svc.Update(ctx, ownerID, it.ID, UpdateRequest{Available: &available})
		require.NoError(t, err)
		assert.False(t, updated.Available)
		assert.Equal(t, "Drill", updated.Name)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		name := "Stolen drill"
		_, err := svc.Update(ctx, otherID, it.ID, UpdateRequest{Name: &name})
		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("unknown item fails", func(t *testing.T) {
		_, err := svc.Update(ctx, ownerID, 999, UpdateRequest{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGetItemWindows(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	bookings := &fakeBookings{
		last: &BookingWindow{ID: 7, BookerID: renterID, Start: now.Add(-2 * time.Hour), End: now.Add(-time.Hour)},
		next: &BookingWindow{ID: 8, BookerID: renterID, Start: now.Add(time.Hour), End: now.Add(2 * time.Hour)},
	}
	svc, _ := newTestService(bookings)
	it := createItem(t, svc)

	t.Run("owner sees booking windows", func(t *testing.T) {
		detail, err := svc.GetByID(ctx, ownerID, it.ID)
		require.NoError(t, err)
		require.NotNil(t, detail.LastBooking)
		require.NotNil(t, detail.NextBooking)
		assert.Equal(t, int64(7), detail.LastBooking.ID)
		assert.Equal(t, int64(8), detail.NextBooking.ID)
	})

	t.Run("other viewers do not", func(t *testing.T) {
		detail, err := svc.GetByID(ctx, otherID, it.ID)
		require.NoError(t, err)
		assert.Nil(t, detail.LastBooking)
		assert.Nil(t, detail.NextBooking)
	})
}

func TestSearch(t *testing.T) {
	svc, _ := newTestService(nil)

	t.Run("blank text returns empty without querying", func(t *testing.T) {
		for _, text := range []string{"", "   "} {
			found, err := svc.Search(context.Background(), text)
			require.NoError(t, err)
			assert.Empty(t, found)
		}
	})
}

func TestAddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("allowed after a finished booking", func(t *testing.T) {
		bookings := &fakeBookings{pastBooking: map[int64]map[int64]bool{}}
		svc, _ := newTestService(bookings)
		it := createItem(t, svc)
		bookings.pastBooking[renterID] = map[int64]bool{it.ID: true}

		cm, err := svc.AddComment(ctx, renterID, it.ID, "Great drill")
		require.NoError(t, err)
		assert.Equal(t, "Carol", cm.AuthorName)
		assert.Equal(t, it.ID, cm.ItemID)

		detail, err := svc.GetByID(ctx, otherID, it.ID)
		require.NoError(t, err)
		require.Len(t, detail.Comments, 1)
		assert.Equal(t, "Great drill", detail.Comments[0].Text)
	})

	t.Run("rejected without one", func(t *testing.T) {
		svc, _ := newTestService(nil)
		it := createItem(t, svc)
		_, err := svc.AddComment(ctx, renterID, it.ID, "Never used it")
		assert.ErrorIs(t, err, ErrCommentNotAllowed)
	})

	t.Run("unknown author or item fails", func(t *testing.T) {
		svc, _ := newTestService(nil)
		it := createItem(t, svc)
		_, err := svc.AddComment(ctx, 99, it.ID, "x")
		assert.ErrorIs(t, err, user.ErrNotFound)
		_, err = svc.AddComment(ctx, renterID, 999, "x")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
