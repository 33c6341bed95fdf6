package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/blackriis/nobicha-sub001/internal/domain/branch"
	"github.com/blackriis/nobicha-sub001/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type branchRepository struct {
	db *database.DB
}

func NewBranchRepository(db *database.DB) branch.BranchRepository {
	return &branchRepository{db: db}
}

func (r *branchRepository) GetByID(ctx context.Context, id string) (branch.Branch, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `
		SELECT id, name, address, latitude, longitude, radius_meters,
			   created_at, updated_at
		FROM branches
		WHERE id = $1
	`

	var b branch.Branch
	err := q.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Name, &b.Address, &b.Latitude, &b.Longitude, &b.RadiusMeters,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return branch.Branch{}, branch.ErrBranchNotFound
		}
		return branch.Branch{}, fmt.Errorf("failed to get branch: %w", err)
	}

	return b, nil
}

func (r *branchRepository) List(ctx context.Context) ([]branch.Branch, error) {
	q := database.QuerierFrom(ctx, r.db)

	query := `
		SELECT id, name, address, latitude, longitude, radius_meters,
			   created_at, updated_at
		FROM branches
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer rows.Close()

	var branches []branch.Branch
	for rows.Next() {
		var b branch.Branch
		if err := rows.Scan(
			&b.ID, &b.Name, &b.Address, &b.Latitude, &b.Longitude, &b.RadiusMeters,
			&b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan branch: %w", err)
		}
		branches = append(branches, b)
	}

	return branches, rows.Err()
}
