package leave

import "context"

// BalanceService answers "how many leave days does this employee have left".
type BalanceService interface {
	GetBalance(ctx context.Context, req BalanceRequest) (BalanceResponse, error)
}
