package application

import (
	"time"

	bookingDomain "github.com/shareit-app/backend/internal/domain/booking"
	itemDomain "github.com/shareit-app/backend/internal/domain/item"
	requestDomain "github.com/shareit-app/backend/internal/domain/request"
	userDomain "github.com/shareit-app/backend/internal/domain/user"
)

// UserDTO is the response representation of a user.
type UserDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BookerDTO identifies the user who made a booking.
type BookerDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookedItemDTO identifies the item a booking refers to.
type BookedItemDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookingDTO is the full response representation of a booking.
type BookingDTO struct {
	ID     int64         `json:"id"`
	Start  time.Time     `json:"start"`
	End    time.Time     `json:"end"`
	Status string        `json:"status"`
	Booker BookerDTO     `json:"booker"`
	Item   BookedItemDTO `json:"item"`
}

// BookingShortDTO is the compact booking representation embedded in item
// responses.
type BookingShortDTO struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

// CommentDTO is the response representation of a comment.
type CommentDTO struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

// ItemDTO is the response representation of an item. LastBooking and
// NextBooking are populated only for the item's owner.
type ItemDTO struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Available   bool             `json:"available"`
	RequestID   *int64           `json:"requestId,omitempty"`
	LastBooking *BookingShortDTO `json:"lastBooking,omitempty"`
	NextBooking *BookingShortDTO `json:"nextBooking,omitempty"`
	Comments    []CommentDTO     `json:"comments"`
}

// ItemRequestDTO is the response representation of an item request,
// including the items offered in answer to it.
type ItemRequestDTO struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Created     time.Time `json:"created"`
	Items       []ItemDTO `json:"items"`
}

// --- Conversion helpers ---

func toUserDTO(u *userDomain.User) UserDTO {
	return UserDTO{ID: u.ID(), Name: u.Name(), Email: u.Email()}
}

func toBookingDTO(b *bookingDomain.Booking) BookingDTO {
	return BookingDTO{
		ID:     b.ID(),
		Start:  b.Start(),
		End:    b.End(),
		Status: b.Status().String(),
		Booker: BookerDTO{ID: b.Booker().ID, Name: b.Booker().Name},
		Item:   BookedItemDTO{ID: b.Item().ID, Name: b.Item().Name},
	}
}

func toBookingDTOs(bookings []*bookingDomain.Booking) []BookingDTO {
	dtos := make([]BookingDTO, len(bookings))
	for i, b := range bookings {
		dtos[i] = toBookingDTO(b)
	}
	return dtos
}

func toBookingShortDTO(b *bookingDomain.Booking) *BookingShortDTO {
	if b == nil {
		return nil
	}
	return &BookingShortDTO{ID: b.ID(), BookerID: b.Booker().ID}
}

func toCommentDTO(c *itemDomain.Comment) CommentDTO {
	return CommentDTO{
		ID:         c.ID(),
		Text:       c.Text(),
		AuthorName: c.AuthorName(),
		Created:    c.Created(),
	}
}

func toCommentDTOs(comments []*itemDomain.Comment) []CommentDTO {
	dtos := make([]CommentDTO, len(comments))
	for i, c := range comments {
		dtos[i] = toCommentDTO(c)
	}
	return dtos
}

func toItemDTO(i *itemDomain.Item, comments []*itemDomain.Comment) ItemDTO {
	return ItemDTO{
		ID:          i.ID(),
		Name:        i.Name(),
		Description: i.Description(),
		Available:   i.Available(),
		RequestID:   i.RequestID(),
		Comments:    toCommentDTOs(comments),
	}
}

func toItemRequestDTO(r *requestDomain.ItemRequest, items []*itemDomain.Item) ItemRequestDTO {
	itemDTOs := make([]ItemDTO, len(items))
	for i, it := range items {
		itemDTOs[i] = toItemDTO(it, nil)
	}
	return ItemRequestDTO{
		ID:          r.ID(),
		Description: r.Description(),
		Created:     r.Created(),
		Items:       itemDTOs,
	}
}
