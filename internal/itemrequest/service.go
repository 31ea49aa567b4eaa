package itemrequest

import (
	"context"

	"github.com/peerlend/peerlend-backend/internal/item"
	"github.com/peerlend/peerlend-backend/internal/user"
)

type Service interface {
	Create(ctx context.Context, requestorID int64, description string) (*ItemRequest, error)
	// ListOwn returns the user's requests, newest first, with answering items.
	ListOwn(ctx context.Context, requestorID int64) ([]*Detail, error)
	// ListOthers returns other users' requests, newest first, paginated.
	ListOthers(ctx context.Context, viewerID int64, from, size int) ([]*Detail, int, error)
	GetByID(ctx context.Context, viewerID, id int64) (*Detail, error)
}

type service struct {
	repo        Repository
	itemRepo    item.Repository
	userService user.Service
}

func NewService(repo Repository, itemRepo item.Repository, userService user.Service) Service {
	return &service{
		repo:        repo,
		itemRepo:    itemRepo,
		userService: userService,
	}
}

func (s *service) Create(ctx context.Context, requestorID int64, description string) (*ItemRequest, error) {
	if _, err := s.userService.GetByID(ctx, requestorID); err != nil {
		return nil, err
	}

	req := &ItemRequest{
		RequestorID: requestorID,
		Description: description,
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *service) ListOwn(ctx context.Context, requestorID int64) ([]*Detail, error) {
	if _, err := s.userService.GetByID(ctx, requestorID); err != nil {
		return nil, err
	}

	requests, err := s.repo.ListByRequestor(ctx, requestorID)
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, requests)
}

func (s *service) ListOthers(ctx context.Context, viewerID int64, from, size int) ([]*Detail, int, error) {
	if _, err := s.userService.GetByID(ctx, viewerID); err != nil {
		return nil, 0, err
	}

	if from < 0 {
		from = 0
	}
	if size < 1 {
		size = 20
	}

	requests, total, err := s.repo.ListOthers(ctx, viewerID, from, size)
	if err != nil {
		return nil, 0, err
	}

	details, err := s.attachItems(ctx, requests)
	if err != nil {
		return nil, 0, err
	}
	return details, total, nil
}

func (s *service) GetByID(ctx context.Context, viewerID, id int64) (*Detail, error) {
	if _, err := s.userService.GetByID(ctx, viewerID); err != nil {
		return nil, err
	}

	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	details, err := s.attachItems(ctx, []*ItemRequest{req})
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (s *service) attachItems(ctx context.Context, requests []*ItemRequest) ([]*Detail, error) {
	details := make([]*Detail, 0, len(requests))
	for _, req := range requests {
		items, err := s.itemRepo.ListByRequest(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, &Detail{ItemRequest: *req, Items: items})
	}
	return details, nil
}
