package credit

import "context"

// TransactionManager runs a function inside a database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CodeGenerator mints unique coupon codes.
type CodeGenerator interface {
	GenerateCouponCode() (string, error)
}

type ConvertCreditsExecutor interface {
	Execute(ctx context.Context, cmd ConvertCreditsCommand) (*ConvertCreditsResult, error)
}

type ListCouponsExecutor interface {
	Execute(ctx context.Context, query ListCouponsQuery) (*ListCouponsResult, error)
}

type GetBalanceExecutor interface {
	Execute(ctx context.Context, query GetBalanceQuery) (*GetBalanceResult, error)
}
