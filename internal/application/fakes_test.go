package application

import (
	"context"
	"sort"
	"time"

	"github.com/shareit-app/backend/internal/domain"
	bookingDomain "github.com/shareit-app/backend/internal/domain/booking"
	itemDomain "github.com/shareit-app/backend/internal/domain/item"
	requestDomain "github.com/shareit-app/backend/internal/domain/request"
	userDomain "github.com/shareit-app/backend/internal/domain/user"
)

// In-memory repository fakes. The booking fake classifies states with the
// same classifier the domain exposes, so service tests exercise the real
// filtering rules without a database.

type fakeUserRepo struct {
	users  map[int64]*userDomain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*userDomain.User{}, nextID: 1}
}

func (r *fakeUserRepo) add(name, email string) *userDomain.User {
	u := userDomain.Reconstruct(r.nextID, name, email)
	r.users[r.nextID] = u
	r.nextID++
	return u
}

func (r *fakeUserRepo) Save(_ context.Context, u *userDomain.User) (*userDomain.User, error) {
	for _, existing := range r.users {
		if existing.Email() == u.Email() {
			return nil, domain.NewConflictError("email already in use")
		}
	}
	saved := userDomain.Reconstruct(r.nextID, u.Name(), u.Email())
	r.users[r.nextID] = saved
	r.nextID++
	return saved, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *userDomain.User) (*userDomain.User, error) {
	if _, ok := r.users[u.ID()]; !ok {
		return nil, domain.NewNotFoundError("User", u.ID())
	}
	r.users[u.ID()] = u
	return u, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*userDomain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.NewNotFoundError("User", id)
	}
	return u, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]*userDomain.User, error) {
	ids := make([]int64, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	users := make([]*userDomain.User, len(ids))
	for i, id := range ids {
		users[i] = r.users[id]
	}
	return users, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.NewNotFoundError("User", id)
	}
	delete(r.users, id)
	return nil
}

type fakeItemRepo struct {
	items  map[int64]*itemDomain.Item
	nextID int64
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[int64]*itemDomain.Item{}, nextID: 1}
}

func (r *fakeItemRepo) add(ownerID int64, name string, available bool) *itemDomain.Item {
	it := itemDomain.Reconstruct(r.nextID, name, name+" description", available, ownerID, nil)
	r.items[r.nextID] = it
	r.nextID++
	return it
}

func (r *fakeItemRepo) Save(_ context.Context, i *itemDomain.Item) (*itemDomain.Item, error) {
	saved := itemDomain.Reconstruct(r.nextID, i.Name(), i.Description(), i.Available(), i.OwnerID(), i.RequestID())
	r.items[r.nextID] = saved
	r.nextID++
	return saved, nil
}

func (r *fakeItemRepo) Update(_ context.Context, i *itemDomain.Item) (*itemDomain.Item, error) {
	if _, ok := r.items[i.ID()]; !ok {
		return nil, domain.NewNotFoundError("Item", i.ID())
	}
	r.items[i.ID()] = i
	return i, nil
}

func (r *fakeItemRepo) FindByID(_ context.Context, id int64) (*itemDomain.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, domain.NewNotFoundError("Item", id)
	}
	return it, nil
}

func (r *fakeItemRepo) FindByOwnerID(_ context.Context, ownerID int64) ([]*itemDomain.Item, error) {
	ids := make([]int64, 0, len(r.items))
	for id, it := range r.items {
		if it.OwnerID() == ownerID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	items := make([]*itemDomain.Item, len(ids))
	for i, id := range ids {
		items[i] = r.items[id]
	}
	return items, nil
}

func (r *fakeItemRepo) FindByRequestID(_ context.Context, requestID int64) ([]*itemDomain.Item, error) {
	var items []*itemDomain.Item
	for _, it := range r.items {
		if it.RequestID() != nil && *it.RequestID() == requestID {
			items = append(items, it)
		}
	}
	return items, nil
}

func (r *fakeItemRepo) Search(_ context.Context, text string) ([]*itemDomain.Item, error) {
	var items []*itemDomain.Item
	for _, it := range r.items {
		if it.Available() {
			items = append(items, it)
		}
	}
	return items, nil
}

type fakeCommentRepo struct {
	comments []*itemDomain.Comment
	nextID   int64
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{nextID: 1}
}

func (r *fakeCommentRepo) Save(_ context.Context, c *itemDomain.Comment) (*itemDomain.Comment, error) {
	saved := itemDomain.ReconstructComment(r.nextID, c.Text(), c.ItemID(), c.AuthorID(), c.AuthorName(), c.Created())
	r.comments = append(r.comments, saved)
	r.nextID++
	return saved, nil
}

func (r *fakeCommentRepo) FindByItemID(_ context.Context, itemID int64) ([]*itemDomain.Comment, error) {
	var out []*itemDomain.Comment
	for _, c := range r.comments {
		if c.ItemID() == itemID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeRequestRepo struct {
	requests map[int64]*requestDomain.ItemRequest
	nextID   int64
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: map[int64]*requestDomain.ItemRequest{}, nextID: 1}
}

func (r *fakeRequestRepo) Save(_ context.Context, req *requestDomain.ItemRequest) (*requestDomain.ItemRequest, error) {
	saved := requestDomain.Reconstruct(r.nextID, req.Description(), req.RequestorID(), req.Created())
	r.requests[r.nextID] = saved
	r.nextID++
	return saved, nil
}

func (r *fakeRequestRepo) FindByID(_ context.Context, id int64) (*requestDomain.ItemRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, domain.NewNotFoundError("ItemRequest", id)
	}
	return req, nil
}

func (r *fakeRequestRepo) FindByRequestorID(_ context.Context, requestorID int64) ([]*requestDomain.ItemRequest, error) {
	var out []*requestDomain.ItemRequest
	for _, req := range r.requests {
		if req.RequestorID() == requestorID {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Created().After(out[j].Created()) })
	return out, nil
}

func (r *fakeRequestRepo) FindOthers(_ context.Context, requestorID int64, page *domain.Page) ([]*requestDomain.ItemRequest, error) {
	var out []*requestDomain.ItemRequest
	for _, req := range r.requests {
		if req.RequestorID() != requestorID {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Created().After(out[j].Created()) })
	return window(out, page), nil
}

type fakeBookingRepo struct {
	bookings map[int64]*bookingDomain.Booking
	owners   map[int64]int64 // itemID -> ownerID
	nextID   int64
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: map[int64]*bookingDomain.Booking{},
		owners:   map[int64]int64{},
		nextID:   1,
	}
}

func (r *fakeBookingRepo) add(b *bookingDomain.Booking) *bookingDomain.Booking {
	saved := bookingDomain.Reconstruct(r.nextID, b.Start(), b.End(), b.Status(), b.Item(), b.Booker())
	r.bookings[r.nextID] = saved
	r.owners[b.Item().ID] = b.Item().OwnerID
	r.nextID++
	return saved
}

func (r *fakeBookingRepo) Save(_ context.Context, b *bookingDomain.Booking) (*bookingDomain.Booking, error) {
	return r.add(b), nil
}

func (r *fakeBookingRepo) FindByIDWithItemAndBooker(_ context.Context, id int64) (*bookingDomain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.NewNotFoundError("Booking", id)
	}
	return b, nil
}

func (r *fakeBookingRepo) FindByBooker(_ context.Context, bookerID int64, state bookingDomain.State, page *domain.Page) ([]*bookingDomain.Booking, error) {
	now := time.Now().UTC()
	out := r.filter(func(b *bookingDomain.Booking) bool {
		return b.IsBooker(bookerID) && state.Matches(b, now)
	})
	sortByStartDesc(out)
	return window(out, page), nil
}

func (r *fakeBookingRepo) FindByOwner(_ context.Context, ownerID int64, state bookingDomain.State, page *domain.Page) ([]*bookingDomain.Booking, error) {
	now := time.Now().UTC()
	out := r.filter(func(b *bookingDomain.Booking) bool {
		return b.IsOwner(ownerID) && state.Matches(b, now)
	})
	sortByStartDesc(out)
	return window(out, page), nil
}

func (r *fakeBookingRepo) FindLastForOwnerItems(_ context.Context, ownerID int64) ([]*bookingDomain.Booking, error) {
	now := time.Now().UTC()
	out := r.filter(func(b *bookingDomain.Booking) bool {
		return b.IsOwner(ownerID) && b.End().Before(now)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].End().After(out[j].End()) })
	return out, nil
}

func (r *fakeBookingRepo) FindNextForOwnerItems(_ context.Context, ownerID int64) ([]*bookingDomain.Booking, error) {
	now := time.Now().UTC()
	out := r.filter(func(b *bookingDomain.Booking) bool {
		return b.IsOwner(ownerID) && b.Start().After(now)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Start().Before(out[j].Start()) })
	return out, nil
}

func (r *fakeBookingRepo) FindPastByItem(_ context.Context, itemID int64) ([]*bookingDomain.Booking, error) {
	now := time.Now().UTC()
	out := r.filter(func(b *bookingDomain.Booking) bool {
		return b.Item().ID == itemID && b.Start().Before(now) && b.Status() != bookingDomain.StatusRejected
	})
	sort.Slice(out, func(i, j int) bool { return out[i].End().After(out[j].End()) })
	return out, nil
}

func (r *fakeBookingRepo) FindFutureByItem(_ context.Context, itemID int64) ([]*bookingDomain.Booking, error) {
	now := time.Now().UTC()
	out := r.filter(func(b *bookingDomain.Booking) bool {
		return b.Item().ID == itemID && b.Start().After(now) && b.Status() != bookingDomain.StatusRejected
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Start().Before(out[j].Start()) })
	return out, nil
}

func (r *fakeBookingRepo) FindFinishedByItemAndBooker(_ context.Context, itemID, bookerID int64) ([]*bookingDomain.Booking, error) {
	now := time.Now().UTC()
	return r.filter(func(b *bookingDomain.Booking) bool {
		return b.Item().ID == itemID && b.IsBooker(bookerID) && b.End().Before(now)
	}), nil
}

func (r *fakeBookingRepo) Transition(_ context.Context, id int64, fn func(*bookingDomain.Booking) error) (*bookingDomain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.NewNotFoundError("Booking", id)
	}
	if err := fn(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *fakeBookingRepo) filter(keep func(*bookingDomain.Booking) bool) []*bookingDomain.Booking {
	out := []*bookingDomain.Booking{}
	ids := make([]int64, 0, len(r.bookings))
	for id := range r.bookings {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		if keep(r.bookings[id]) {
			out = append(out, r.bookings[id])
		}
	}
	return out
}

func sortByStartDesc(bookings []*bookingDomain.Booking) {
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].Start().After(bookings[j].Start()) })
}

func window[T any](items []T, page *domain.Page) []T {
	if page == nil {
		return items
	}
	if page.Offset >= len(items) {
		return []T{}
	}
	end := page.Offset + page.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[page.Offset:end]
}
