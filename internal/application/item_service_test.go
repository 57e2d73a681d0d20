package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shareit-app/backend/internal/domain"
	bookingDomain "github.com/shareit-app/backend/internal/domain/booking"
)

type itemFixture struct {
	users    *fakeUserRepo
	items    *fakeItemRepo
	comments *fakeCommentRepo
	bookings *fakeBookingRepo
	requests *fakeRequestRepo
	service  *ItemService
}

func newItemFixture() *itemFixture {
	users := newFakeUserRepo()
	items := newFakeItemRepo()
	comments := newFakeCommentRepo()
	bookings := newFakeBookingRepo()
	requests := newFakeRequestRepo()
	return &itemFixture{
		users:    users,
		items:    items,
		comments: comments,
		bookings: bookings,
		requests: requests,
		service:  NewItemService(items, comments, bookings, requests, users, zap.NewNop()),
	}
}

func (f *itemFixture) seedBooking(t *testing.T, bookerID, itemID int64, status bookingDomain.Status, start, end time.Time) *bookingDomain.Booking {
	t.Helper()
	it := f.items.items[itemID]
	require.NotNil(t, it)
	booker := f.users.users[bookerID]
	require.NotNil(t, booker)
	b := bookingDomain.Reconstruct(0, start, end, status,
		bookingDomain.ItemSummary{ID: it.ID(), Name: it.Name(), OwnerID: it.OwnerID()},
		bookingDomain.UserSummary{ID: booker.ID(), Name: booker.Name()},
	)
	return f.bookings.add(b)
}

func TestItemService_CreateAndUpdate(t *testing.T) {
	f := newItemFixture()
	owner := f.users.add("owner", "owner@example.com")

	available := true
	dto, err := f.service.Create(context.Background(), owner.ID(), CreateItemRequest{
		Name:        "drill",
		Description: "powerful drill",
		Available:   &available,
	})
	require.NoError(t, err)
	assert.NotZero(t, dto.ID)
	assert.True(t, dto.Available)

	// A non-owner cannot update the item.
	stranger := f.users.add("stranger", "stranger@example.com")
	name := "hammer"
	_, err = f.service.Update(context.Background(), stranger.ID(), dto.ID, UpdateItemRequest{Name: &name})
	k, ok := domain.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindNotFound, k)

	updated, err := f.service.Update(context.Background(), owner.ID(), dto.ID, UpdateItemRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "hammer", updated.Name)
	assert.Equal(t, "powerful drill", updated.Description)
}

func TestItemService_GetByID_OwnerSeesBookingAnnotations(t *testing.T) {
	f := newItemFixture()
	owner := f.users.add("owner", "owner@example.com")
	booker := f.users.add("booker", "booker@example.com")
	it := f.items.add(owner.ID(), "drill", true)

	now := time.Now().UTC()
	last := f.seedBooking(t, booker.ID(), it.ID(), bookingDomain.StatusApproved, now.Add(-3*time.Hour), now.Add(-time.Hour))
	next := f.seedBooking(t, booker.ID(), it.ID(), bookingDomain.StatusApproved, now.Add(time.Hour), now.Add(3*time.Hour))
	// Rejected bookings never surface as annotations.
	f.seedBooking(t, booker.ID(), it.ID(), bookingDomain.StatusRejected, now.Add(4*time.Hour), now.Add(5*time.Hour))

	dto, err := f.service.GetByID(context.Background(), owner.ID(), it.ID())
	require.NoError(t, err)
	require.NotNil(t, dto.LastBooking)
	require.NotNil(t, dto.NextBooking)
	assert.Equal(t, last.ID(), dto.LastBooking.ID)
	assert.Equal(t, booker.ID(), dto.LastBooking.BookerID)
	assert.Equal(t, next.ID(), dto.NextBooking.ID)

	// Anyone else sees the item without annotations.
	asBooker, err := f.service.GetByID(context.Background(), booker.ID(), it.ID())
	require.NoError(t, err)
	assert.Nil(t, asBooker.LastBooking)
	assert.Nil(t, asBooker.NextBooking)
}

// When one item has several finished bookings, the aggregation keeps the
// first booking seen in the ordered stream and ignores later ones.
func TestItemService_GetAllByOwner_FirstBookingPerItemWins(t *testing.T) {
	f := newItemFixture()
	owner := f.users.add("owner", "owner@example.com")
	booker := f.users.add("booker", "booker@example.com")
	it := f.items.add(owner.ID(), "drill", true)

	now := time.Now().UTC()
	newest := f.seedBooking(t, booker.ID(), it.ID(), bookingDomain.StatusApproved, now.Add(-3*time.Hour), now.Add(-time.Hour))
	f.seedBooking(t, booker.ID(), it.ID(), bookingDomain.StatusApproved, now.Add(-8*time.Hour), now.Add(-6*time.Hour))

	soonest := f.seedBooking(t, booker.ID(), it.ID(), bookingDomain.StatusWaiting, now.Add(time.Hour), now.Add(2*time.Hour))
	f.seedBooking(t, booker.ID(), it.ID(), bookingDomain.StatusWaiting, now.Add(5*time.Hour), now.Add(6*time.Hour))

	dtos, err := f.service.GetAllByOwner(context.Background(), owner.ID())
	require.NoError(t, err)
	require.Len(t, dtos, 1)
	require.NotNil(t, dtos[0].LastBooking)
	require.NotNil(t, dtos[0].NextBooking)
	assert.Equal(t, newest.ID(), dtos[0].LastBooking.ID, "the most recently ended booking wins")
	assert.Equal(t, soonest.ID(), dtos[0].NextBooking.ID, "the soonest upcoming booking wins")
}

func TestItemService_GetAllByOwner_ItemsWithoutBookings(t *testing.T) {
	f := newItemFixture()
	owner := f.users.add("owner", "owner@example.com")
	f.items.add(owner.ID(), "drill", true)
	f.items.add(owner.ID(), "saw", false)

	dtos, err := f.service.GetAllByOwner(context.Background(), owner.ID())
	require.NoError(t, err)
	require.Len(t, dtos, 2)
	for _, dto := range dtos {
		assert.Nil(t, dto.LastBooking)
		assert.Nil(t, dto.NextBooking)
	}
}

func TestItemService_Search_BlankTextYieldsEmpty(t *testing.T) {
	f := newItemFixture()
	owner := f.users.add("owner", "owner@example.com")
	f.items.add(owner.ID(), "drill", true)

	got, err := f.service.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, got)

	// Whitespace-only text is blank too and never reaches the store.
	got, err = f.service.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = f.service.Search(context.Background(), " \t ")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = f.service.Search(context.Background(), "drill")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestItemService_AddComment_RequiresFinishedBooking(t *testing.T) {
	f := newItemFixture()
	owner := f.users.add("owner", "owner@example.com")
	booker := f.users.add("booker", "booker@example.com")
	it := f.items.add(owner.ID(), "drill", true)

	// No booking at all: rejected.
	_, err := f.service.AddComment(context.Background(), booker.ID(), it.ID(), CreateCommentRequest{Text: "great"})
	k, ok := domain.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindBadRequest, k)

	// A booking still in the future does not unlock commenting.
	now := time.Now().UTC()
	f.seedBooking(t, booker.ID(), it.ID(), bookingDomain.StatusApproved, now.Add(time.Hour), now.Add(2*time.Hour))
	_, err = f.service.AddComment(context.Background(), booker.ID(), it.ID(), CreateCommentRequest{Text: "great"})
	assert.Error(t, err)

	// A finished booking does.
	f.seedBooking(t, booker.ID(), it.ID(), bookingDomain.StatusApproved, now.Add(-3*time.Hour), now.Add(-time.Hour))
	dto, err := f.service.AddComment(context.Background(), booker.ID(), it.ID(), CreateCommentRequest{Text: "great"})
	require.NoError(t, err)
	assert.Equal(t, "great", dto.Text)
	assert.Equal(t, "booker", dto.AuthorName)
}
