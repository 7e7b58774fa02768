package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/master/branch"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type branchRepository struct {
	db *database.DB
}

// GetByName implements branch.BranchRepository.
func (r *branchRepository) GetByName(ctx context.Context, name string) (branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT name, latitude, longitude FROM branches WHERE name = $1`

	var (
		b        branch.Branch
		lat, lng *float64
	)
	if err := q.QueryRow(ctx, query, name).Scan(&b.Name, &lat, &lng); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return branch.Branch{}, branch.ErrBranchNotFound
		}
		return branch.Branch{}, fmt.Errorf("failed to get branch: %w", err)
	}

	if lat != nil && lng != nil {
		b.Coordinate = &branch.Coordinate{Latitude: *lat, Longitude: *lng}
	}
	return b, nil
}

func NewBranchRepository(db *database.DB) branch.BranchRepository {
	return &branchRepository{db: db}
}
