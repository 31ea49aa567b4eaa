package item

import (
	"context"
	"strings"

	"github.com/peerlend/peerlend-backend/internal/user"
)

type CreateRequest struct {
	OwnerID     int64
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

type UpdateRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Item, error)
	Update(ctx context.Context, ownerID, id int64, req UpdateRequest) (*Item, error)
	// GetByID returns the item with its comments; booking windows are attached
	// only when the viewer owns the item.
	GetByID(ctx context.Context, viewerID, id int64) (*Detail, error)
	// ListByOwner returns the owner's items annotated with booking windows.
	ListByOwner(ctx context.Context, ownerID int64) ([]*Detail, error)
	// Search returns available items matching the text; blank text yields nothing.
	Search(ctx context.Context, text string) ([]*Item, error)
	AddComment(ctx context.Context, authorID, itemID int64, text string) (*Comment, error)
}

type service struct {
	repo        Repository
	userService user.Service
	bookings    BookingSource
}

func NewService(repo Repository, userService user.Service, bookings BookingSource) Service {
	return &service{
		repo:        repo,
		userService: userService,
		bookings:    bookings,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Item, error) {
	// Validation: the owner must exist.
	if _, err := s.userService.GetByID(ctx, req.OwnerID); err != nil {
		return nil, err
	}

	it := &Item{
		OwnerID:     req.OwnerID,
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
		RequestID:   req.RequestID,
	}

	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) Update(ctx context.Context, ownerID, id int64, req UpdateRequest) (*Item, error) {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if it.OwnerID != ownerID {
		return nil, ErrNotOwner
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		it.Name = *req.Name
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) != "" {
		it.Description = *req.Description
	}
	if req.Available != nil {
		it.Available = *req.Available
	}

	if err := s.repo.Update(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) GetByID(ctx context.Context, viewerID, id int64) (*Detail, error) {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &Detail{Item: *it}

	detail.Comments, err = s.repo.ListComments(ctx, id)
	if err != nil {
		return nil, err
	}

	// Booking windows are owner-facing: other viewers see the plain item.
	if viewerID == it.OwnerID {
		detail.LastBooking, detail.NextBooking, err = s.bookings.Windows(ctx, id)
		if err != nil {
			return nil, err
		}
	}

	return detail, nil
}

func (s *service) ListByOwner(ctx context.Context, ownerID int64) ([]*Detail, error) {
	if _, err := s.userService.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}

	items, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	details := make([]*Detail, 0, len(items))
	for _, it := range items {
		detail := &Detail{Item: *it}

		detail.Comments, err = s.repo.ListComments(ctx, it.ID)
		if err != nil {
			return nil, err
		}
		detail.LastBooking, detail.NextBooking, err = s.bookings.Windows(ctx, it.ID)
		if err != nil {
			return nil, err
		}

		details = append(details, detail)
	}
	return details, nil
}

func (s *service) Search(ctx context.Context, text string) ([]*Item, error) {
	if strings.TrimSpace(text) == "" {
		return []*Item{}, nil
	}
	return s.repo.Search(ctx, text)
}

func (s *service) AddComment(ctx context.Context, authorID, itemID int64, text string) (*Comment, error) {
	author, err := s.userService.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByID(ctx, itemID); err != nil {
		return nil, err
	}

	allowed, err := s.bookings.HasPastBooking(ctx, authorID, itemID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrCommentNotAllowed
	}

	comment := &Comment{
		ItemID:     itemID,
		AuthorID:   authorID,
		AuthorName: author.Name,
		Text:       text,
	}
	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
