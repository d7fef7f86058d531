package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mkadima/resto-api/internal/domain/entity"
	"github.com/mkadima/resto-api/internal/domain/repository"
	"github.com/mkadima/resto-api/pkg/apperror"
	"github.com/mkadima/resto-api/pkg/pagination"
)

// ClientService handles loyalty clients. Point balances are only
// mutated by sale settlement; this service reads them.
type ClientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService creates a new client service
func NewClientService(clientRepo repository.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// CreateClientInput represents the create client input
type CreateClientInput struct {
	Name  string
	Phone *string
	Email *string
}

// CreateClient creates a new client
func (s *ClientService) CreateClient(ctx context.Context, input *CreateClientInput) (*entity.Client, error) {
	client := &entity.Client{
		Name:  input.Name,
		Phone: input.Phone,
		Email: input.Email,
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// UpdateClient updates a client's contact details
func (s *ClientService) UpdateClient(ctx context.Context, id uuid.UUID, input *CreateClientInput) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFound("Client")
	}

	if input.Name != "" {
		client.Name = input.Name
	}
	if input.Phone != nil {
		client.Phone = input.Phone
	}
	if input.Email != nil {
		client.Email = input.Email
	}
	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// DeleteClient soft-deletes a client
func (s *ClientService) DeleteClient(ctx context.Context, id uuid.UUID) error {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return apperror.NewNotFound("Client")
	}
	return s.clientRepo.Delete(ctx, id)
}

// GetClient retrieves a client by ID
func (s *ClientService) GetClient(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFound("Client")
	}
	return client, nil
}

// ListClients lists clients
func (s *ClientService) ListClients(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Client], error) {
	clients, total, err := s.clientRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(clients, pag), nil
}

// ListTransactions lists a client's loyalty history
func (s *ClientService) ListTransactions(ctx context.Context, clientID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.LoyaltyTransaction], error) {
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFound("Client")
	}

	txs, total, err := s.clientRepo.ListTransactions(ctx, clientID, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(txs, pag), nil
}
