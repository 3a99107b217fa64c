package operator

import "context"

// OperatorService defines business logic for operator operations
type OperatorService interface {
	CreateOperator(ctx context.Context, req CreateOperatorRequest) (OperatorResponse, error)
	GetOperator(ctx context.Context, id string) (OperatorResponse, error)
	UpdateOperator(ctx context.Context, req UpdateOperatorRequest) (OperatorResponse, error)
	DeleteOperator(ctx context.Context, id string) error
	ListOperators(ctx context.Context, filter OperatorFilter) (ListOperatorResponse, error)
}
