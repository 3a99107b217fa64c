package operator

import (
	"context"
	"fmt"

	"github.com/staffdeck/staffdeck-backend-go/internal/domain/operator"
)

type OperatorServiceImpl struct {
	operatorRepo operator.OperatorRepository
}

func NewOperatorService(operatorRepo operator.OperatorRepository) operator.OperatorService {
	return &OperatorServiceImpl{operatorRepo: operatorRepo}
}

func (s *OperatorServiceImpl) CreateOperator(ctx context.Context, req operator.CreateOperatorRequest) (operator.OperatorResponse, error) {
	if err := req.Validate(); err != nil {
		return operator.OperatorResponse{}, err
	}

	exists, err := s.operatorRepo.ExistsByEmail(ctx, req.Email, nil)
	if err != nil {
		return operator.OperatorResponse{}, fmt.Errorf("failed to check operator email: %w", err)
	}
	if exists {
		return operator.OperatorResponse{}, operator.ErrEmailExists
	}

	created, err := s.operatorRepo.Create(ctx, operator.Operator{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		TaxCode:         req.TaxCode,
		DefaultRateCost: req.DefaultRateCost,
		DefaultRateSell: req.DefaultRateSell,
		IsActive:        true,
		Notes:           req.Notes,
	})
	if err != nil {
		return operator.OperatorResponse{}, err
	}

	return operator.ToOperatorResponse(created), nil
}

func (s *OperatorServiceImpl) GetOperator(ctx context.Context, id string) (operator.OperatorResponse, error) {
	found, err := s.operatorRepo.GetByID(ctx, id)
	if err != nil {
		return operator.OperatorResponse{}, err
	}

	return operator.ToOperatorResponse(found), nil
}

func (s *OperatorServiceImpl) UpdateOperator(ctx context.Context, req operator.UpdateOperatorRequest) (operator.OperatorResponse, error) {
	if err := req.Validate(); err != nil {
		return operator.OperatorResponse{}, err
	}

	if req.Email != nil {
		exists, err := s.operatorRepo.ExistsByEmail(ctx, *req.Email, &req.ID)
		if err != nil {
			return operator.OperatorResponse{}, fmt.Errorf("failed to check operator email: %w", err)
		}
		if exists {
			return operator.OperatorResponse{}, operator.ErrEmailExists
		}
	}

	if err := s.operatorRepo.Update(ctx, req.ID, req); err != nil {
		return operator.OperatorResponse{}, err
	}

	return s.GetOperator(ctx, req.ID)
}

func (s *OperatorServiceImpl) DeleteOperator(ctx context.Context, id string) error {
	if _, err := s.operatorRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return s.operatorRepo.SoftDelete(ctx, id)
}

func (s *OperatorServiceImpl) ListOperators(ctx context.Context, filter operator.OperatorFilter) (operator.ListOperatorResponse, error) {
	if err := filter.Validate(); err != nil {
		return operator.ListOperatorResponse{}, err
	}

	operators, totalCount, err := s.operatorRepo.List(ctx, filter)
	if err != nil {
		return operator.ListOperatorResponse{}, err
	}

	result := make([]operator.OperatorResponse, 0, len(operators))
	for _, o := range operators {
		result = append(result, operator.ToOperatorResponse(o))
	}

	return operator.ListOperatorResponse{
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Operators:  result,
	}, nil
}
