package operator

import "context"

type OperatorRepository interface {
	GetByID(ctx context.Context, id string) (Operator, error)
	ExistsByEmail(ctx context.Context, email string, excludeID *string) (bool, error)
	Create(ctx context.Context, newOperator Operator) (Operator, error)
	Update(ctx context.Context, id string, req UpdateOperatorRequest) error
	List(ctx context.Context, filter OperatorFilter) ([]Operator, int64, error)
	SoftDelete(ctx context.Context, id string) error
}
