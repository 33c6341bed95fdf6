package branch

import "context"

// BranchRepository defines data access methods for branches.
type BranchRepository interface {
	// GetByID retrieves a branch by ID
	GetByID(ctx context.Context, id string) (Branch, error)

	// List retrieves all branches
	List(ctx context.Context) ([]Branch, error)
}
