package client

import (
	"context"
	"fmt"

	"github.com/staffdeck/staffdeck-backend-go/internal/domain/client"
)

type ClientServiceImpl struct {
	clientRepo client.ClientRepository
}

func NewClientService(clientRepo client.ClientRepository) client.ClientService {
	return &ClientServiceImpl{clientRepo: clientRepo}
}

func (s *ClientServiceImpl) CreateClient(ctx context.Context, req client.CreateClientRequest) (client.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}

	exists, err := s.clientRepo.ExistsByName(ctx, req.Name, nil)
	if err != nil {
		return client.ClientResponse{}, fmt.Errorf("failed to check client name: %w", err)
	}
	if exists {
		return client.ClientResponse{}, client.ErrClientNameExists
	}

	created, err := s.clientRepo.Create(ctx, client.Client{
		Name:         req.Name,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		VATNumber:    req.VATNumber,
		Address:      req.Address,
		Notes:        req.Notes,
	})
	if err != nil {
		return client.ClientResponse{}, err
	}

	return client.ToClientResponse(created), nil
}

func (s *ClientServiceImpl) GetClient(ctx context.Context, id string) (client.ClientResponse, error) {
	found, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return client.ClientResponse{}, err
	}

	return client.ToClientResponse(found), nil
}

func (s *ClientServiceImpl) UpdateClient(ctx context.Context, req client.UpdateClientRequest) (client.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}

	if req.Name != nil {
		exists, err := s.clientRepo.ExistsByName(ctx, *req.Name, &req.ID)
		if err != nil {
			return client.ClientResponse{}, fmt.Errorf("failed to check client name: %w", err)
		}
		if exists {
			return client.ClientResponse{}, client.ErrClientNameExists
		}
	}

	if err := s.clientRepo.Update(ctx, req.ID, req); err != nil {
		return client.ClientResponse{}, err
	}

	return s.GetClient(ctx, req.ID)
}

func (s *ClientServiceImpl) DeleteClient(ctx context.Context, id string) error {
	if _, err := s.clientRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.clientRepo.SoftDelete(ctx, id)
}

func (s *ClientServiceImpl) ListClients(ctx context.Context, filter client.ClientFilter) (client.ListClientResponse, error) {
	if err := filter.Validate(); err != nil {
		return client.ListClientResponse{}, err
	}

	clients, totalCount, err := s.clientRepo.List(ctx, filter)
	if err != nil {
		return client.ListClientResponse{}, err
	}

	result := make([]client.ClientResponse, 0, len(clients))
	for _, c := range clients {
		result = append(result, client.ToClientResponse(c))
	}

	return client.ListClientResponse{
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Clients:    result,
	}, nil
}
