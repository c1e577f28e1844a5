package ledgerservice

import (
	"context"
	"fmt"

	"github.com/dmunera/cajero/internal/domain"
)

// Balances holds the three monetary balances of an account.
type Balances struct {
	Capital     int64
	LoanBalance int64
	Debt        int64
}

// Deposit credits amount to the account. While the account is indebted the
// amount pays the debt down first; only the excess reaches the capital.
func (s *Service) Deposit(ctx context.Context, id, rawAmount string) (*domain.Account, error) {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	amount, err := s.checkAmount(ctx, a, domain.OpDeposit, rawAmount)
	if err != nil {
		return nil, err
	}

	if a.Indebted() {
		s.settleDebt(ctx, a, domain.OpDeposit, amount)

		return a, nil
	}

	a.Capital += domain.CoercedInt(amount)

	s.logOp(ctx, a, domain.Operation{
		Type:        domain.OpDeposit,
		Amount:      domain.AmountOf(amount),
		Status:      domain.StatusOK,
		Description: "deposit credited to capital",
	})

	return a, nil
}

// Withdraw debits amount from the capital. Rejected while indebted, when
// funds are short, or when the remaining capital would fall below the
// minimum balance.
func (s *Service) Withdraw(ctx context.Context, id, rawAmount string) (*domain.Account, error) {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if a.Indebted() {
		s.logOp(ctx, a, domain.Operation{
			Type:        domain.OpWithdraw,
			Amount:      domain.AmountOf(0),
			Status:      domain.StatusError,
			Description: "withdrawal blocked by outstanding debt",
		})

		return nil, domain.ErrOutstandingDebt
	}

	amount, err := s.checkAmount(ctx, a, domain.OpWithdraw, rawAmount)
	if err != nil {
		return nil, err
	}

	if amount > int64(a.Capital) {
		s.logOp(ctx, a, domain.Operation{
			Type:        domain.OpWithdraw,
			Amount:      domain.AmountOf(amount),
			Status:      domain.StatusError,
			Description: "insufficient funds",
		})

		return nil, domain.ErrInsufficientFunds
	}

	if int64(a.Capital)-amount < domain.MinBalance {
		s.logOp(ctx, a, domain.Operation{
			Type:        domain.OpWithdraw,
			Amount:      domain.AmountOf(amount),
			Status:      domain.StatusError,
			Description: "capital would fall below the minimum balance",
		})

		return nil, domain.ErrBelowMinBalance
	}

	a.Capital -= domain.CoercedInt(amount)

	s.logOp(ctx, a, domain.Operation{
		Type:        domain.OpWithdraw,
		Amount:      domain.AmountOf(amount),
		Status:      domain.StatusOK,
		Description: "withdrawal completed",
	})

	return a, nil
}

// RequestLoan issues a loan capped at LoanCapFactor times the capital held
// at request time. Proceeds are credited to the capital immediately and the
// account becomes indebted for the full amount.
func (s *Service) RequestLoan(ctx context.Context, id, rawAmount string) (*domain.Account, error) {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if a.Indebted() {
		s.logOp(ctx, a, domain.Operation{
			Type:        domain.OpLoan,
			Amount:      domain.AmountOf(0),
			Status:      domain.StatusError,
			Description: "loan blocked by outstanding debt",
		})

		return nil, domain.ErrOutstandingDebt
	}

	amount, err := s.checkAmount(ctx, a, domain.OpLoan, rawAmount)
	if err != nil {
		return nil, err
	}

	if amount > int64(a.Capital)*domain.LoanCapFactor {
		s.logOp(ctx, a, domain.Operation{
			Type:        domain.OpLoan,
			Amount:      domain.AmountOf(amount),
			Status:      domain.StatusError,
			Description: "requested loan exceeds the cap",
		})

		return nil, domain.ErrLoanCapExceeded
	}

	a.LoanBalance += domain.CoercedInt(amount)
	a.Debt += domain.CoercedInt(amount)
	a.Capital += domain.CoercedInt(amount)

	s.logOp(ctx, a, domain.Operation{
		Type:        domain.OpLoan,
		Amount:      domain.AmountOf(amount),
		Status:      domain.StatusOK,
		Description: "loan approved and credited",
	})

	return a, nil
}

// RepayLoan pays amount against the outstanding debt, with the same
// settlement arithmetic as an indebted deposit.
func (s *Service) RepayLoan(ctx context.Context, id, rawAmount string) (*domain.Account, error) {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !a.Indebted() {
		s.logOp(ctx, a, domain.Operation{
			Type:        domain.OpRepay,
			Amount:      domain.AmountOf(0),
			Status:      domain.StatusError,
			Description: "no outstanding debt",
		})

		return nil, domain.ErrNoOutstandingDebt
	}

	amount, err := s.checkAmount(ctx, a, domain.OpRepay, rawAmount)
	if err != nil {
		return nil, err
	}

	s.settleDebt(ctx, a, domain.OpRepay, amount)

	return a, nil
}

// Transfer moves amount from account id to destID. The destination's own
// debt state is not evaluated: an incoming transfer never settles debt.
func (s *Service) Transfer(ctx context.Context, id, destID, rawAmount string) (*domain.Account, error) {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if a.Indebted() {
		s.logOp(ctx, a, domain.Operation{
			Type:        domain.OpTransferOut,
			Amount:      domain.AmountOf(0),
			Status:      domain.StatusError,
			Description: "transfer blocked by outstanding debt",
		})

		return nil, domain.ErrOutstandingDebt
	}

	if destID == id {
		s.logOp(ctx, a, domain.Operation{
			Type:        domain.OpTransferOut,
			Amount:      domain.AmountOf(0),
			Status:      domain.StatusError,
			Description: "transfer to the same account",
		})

		return nil, domain.ErrSelfTransfer
	}

	if !s.repo.Exists(destID) {
		s.logOp(ctx, a, domain.Operation{
			Type:        domain.OpTransferOut,
			Amount:      domain.AmountOf(0),
			Status:      domain.StatusError,
			Description: "destination account does not exist",
		})

		return nil, domain.ErrDestinationNotFound
	}

	amount, err := s.checkAmount(ctx, a, domain.OpTransferOut, rawAmount)
	if err != nil {
		return nil, err
	}

	if amount > int64(a.Capital) {
		s.logOp(ctx, a, domain.Operation{
			Type:        domain.OpTransferOut,
			Amount:      domain.AmountOf(amount),
			Status:      domain.StatusError,
			Description: "insufficient funds",
		})

		return nil, domain.ErrInsufficientFunds
	}

	if int64(a.Capital)-amount < domain.MinBalance {
		s.logOp(ctx, a, domain.Operation{
			Type:        domain.OpTransferOut,
			Amount:      domain.AmountOf(amount),
			Status:      domain.StatusError,
			Description: "capital would fall below the minimum balance",
		})

		return nil, domain.ErrBelowMinBalance
	}

	dest, err := s.repo.Get(ctx, destID)
	if err != nil {
		return nil, err
	}

	a.Capital -= domain.CoercedInt(amount)
	dest.Capital += domain.CoercedInt(amount)

	s.logOp(ctx, a, domain.Operation{
		Type:        domain.OpTransferOut,
		Amount:      domain.AmountOf(amount),
		Status:      domain.StatusOK,
		Description: fmt.Sprintf("transfer to %s", destID),
		Recipient:   destID,
	})

	s.logOp(ctx, dest, domain.Operation{
		Type:        domain.OpTransferIn,
		Amount:      domain.AmountOf(amount),
		Status:      domain.StatusOK,
		Description: fmt.Sprintf("transfer received from %s", id),
		Recipient:   id,
	})

	return a, nil
}

// Balance returns the three balances of the account and records the query.
func (s *Service) Balance(ctx context.Context, id string) (Balances, error) {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return Balances{}, err
	}

	s.logOp(ctx, a, domain.Operation{
		Type:        domain.OpBalanceQuery,
		Amount:      domain.AmountOf(0),
		Status:      domain.StatusOK,
		Description: "balance queried",
	})

	return Balances{
		Capital:     int64(a.Capital),
		LoanBalance: int64(a.LoanBalance),
		Debt:        int64(a.Debt),
	}, nil
}

// settleDebt applies amount against the account's debt, crediting any
// excess to the capital. When the debt reaches zero the loan balance is
// cleared with it. Shared by Deposit and RepayLoan.
func (s *Service) settleDebt(ctx context.Context, a *domain.Account, tag string, amount int64) {
	debt := int64(a.Debt)

	if amount >= debt {
		excess := amount - debt

		a.Debt = 0
		a.LoanBalance = 0
		a.Capital += domain.CoercedInt(excess)

		s.logOp(ctx, a, domain.Operation{
			Type:        tag,
			Amount:      domain.AmountOf(amount),
			Status:      domain.StatusOK,
			Description: fmt.Sprintf("debt of %d settled, excess %d credited", debt, excess),
		})

		return
	}

	a.Debt -= domain.CoercedInt(amount)

	if int64(a.LoanBalance) < amount {
		a.LoanBalance = 0
	} else {
		a.LoanBalance -= domain.CoercedInt(amount)
	}

	s.logOp(ctx, a, domain.Operation{
		Type:        tag,
		Amount:      domain.AmountOf(amount),
		Status:      domain.StatusOK,
		Description: fmt.Sprintf("partial repayment, %d outstanding", a.Debt),
	})
}
