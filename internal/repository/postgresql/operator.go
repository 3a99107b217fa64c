package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/staffdeck/staffdeck-backend-go/internal/domain/operator"
	"github.com/staffdeck/staffdeck-backend-go/internal/pkg/database"
)

type operatorRepositoryImpl struct {
	db *database.DB
}

func NewOperatorRepository(db *database.DB) operator.OperatorRepository {
	return &operatorRepositoryImpl{db: db}
}

const operatorColumns = `id, first_name, last_name, email, phone_number, tax_code,
	default_rate_cost, default_rate_sell, is_active, notes, created_at, updated_at`

func scanOperator(row pgx.Row) (operator.Operator, error) {
	var o operator.Operator
	err := row.Scan(&o.ID, &o.FirstName, &o.LastName, &o.Email, &o.PhoneNumber, &o.TaxCode,
		&o.DefaultRateCost, &o.DefaultRateSell, &o.IsActive, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

// GetByID implements operator.OperatorRepository.
func (r *operatorRepositoryImpl) GetByID(ctx context.Context, id string) (operator.Operator, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + operatorColumns + `
		FROM operators
		WHERE id = $1 AND deleted_at IS NULL
	`

	found, err := scanOperator(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return operator.Operator{}, operator.ErrOperatorNotFound
		}
		return operator.Operator{}, fmt.Errorf("failed to get operator with id %s: %w", id, err)
	}
	return found, nil
}

// ExistsByEmail implements operator.OperatorRepository.
func (r *operatorRepositoryImpl) ExistsByEmail(ctx context.Context, email string, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM operators WHERE lower(email) = lower($1) AND deleted_at IS NULL`
	args := []interface{}{email}
	if excludeID != nil {
		query += ` AND id != $2`
		args = append(args, *excludeID)
	}
	query += `)`

	var exists bool
	if err := q.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Create implements operator.OperatorRepository.
func (r *operatorRepositoryImpl) Create(ctx context.Context, newOperator operator.Operator) (operator.Operator, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO operators (first_name, last_name, email, phone_number, tax_code,
			default_rate_cost, default_rate_sell, is_active, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + operatorColumns

	created, err := scanOperator(q.QueryRow(ctx, query,
		newOperator.FirstName, newOperator.LastName, newOperator.Email, newOperator.PhoneNumber,
		newOperator.TaxCode, newOperator.DefaultRateCost, newOperator.DefaultRateSell,
		newOperator.IsActive, newOperator.Notes))
	if err != nil {
		return operator.Operator{}, fmt.Errorf("failed to create operator: %w", err)
	}
	return created, nil
}

// Update implements operator.OperatorRepository.
func (r *operatorRepositoryImpl) Update(ctx context.Context, id string, req operator.UpdateOperatorRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.TaxCode != nil {
		updates["tax_code"] = *req.TaxCode
	}
	if req.DefaultRateCost != nil {
		updates["default_rate_cost"] = *req.DefaultRateCost
	}
	if req.DefaultRateSell != nil {
		updates["default_rate_sell"] = *req.DefaultRateSell
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := "UPDATE operators SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND deleted_at IS NULL", i)
	args = append(args, id)

	var updatedID string
	if err := q.QueryRow(ctx, sql+" RETURNING id", args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return operator.ErrOperatorNotFound
		}
		return fmt.Errorf("failed to update operator with id %s: %w", id, err)
	}
	return nil
}

// List implements operator.OperatorRepository.
func (r *operatorRepositoryImpl) List(ctx context.Context, filter operator.OperatorFilter) ([]operator.Operator, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"deleted_at IS NULL"}
	args := []interface{}{}
	i := 1

	if filter.Search != nil {
		where = append(where, fmt.Sprintf("(first_name || ' ' || last_name ILIKE $%d OR email ILIKE $%d)", i, i))
		args = append(args, "%"+*filter.Search+"%")
		i++
	}
	if filter.ActiveOnly {
		where = append(where, "is_active = TRUE")
	}

	whereClause := " WHERE " + strings.Join(where, " AND ")

	var totalCount int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM operators"+whereClause, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count operators: %w", err)
	}

	query := "SELECT " + operatorColumns + " FROM operators" + whereClause +
		fmt.Sprintf(" ORDER BY last_name, first_name LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list operators: %w", err)
	}
	defer rows.Close()

	var operators []operator.Operator
	for rows.Next() {
		o, err := scanOperator(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan operator row: %w", err)
		}
		operators = append(operators, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return operators, totalCount, nil
}

// SoftDelete implements operator.OperatorRepository.
func (r *operatorRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE operators
		SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id
	`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if err == pgx.ErrNoRows {
			return operator.ErrOperatorNotFound
		}
		return fmt.Errorf("failed to delete operator with id %s: %w", id, err)
	}
	return nil
}
