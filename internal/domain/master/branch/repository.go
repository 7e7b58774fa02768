package branch

import "context"

type BranchRepository interface {
	GetByName(ctx context.Context, name string) (Branch, error)
}
