package client

import "context"

type ClientRepository interface {
	GetByID(ctx context.Context, id string) (Client, error)
	ExistsByName(ctx context.Context, name string, excludeID *string) (bool, error)
	Create(ctx context.Context, newClient Client) (Client, error)
	Update(ctx context.Context, id string, req UpdateClientRequest) error
	List(ctx context.Context, filter ClientFilter) ([]Client, int64, error)
	SoftDelete(ctx context.Context, id string) error
}
