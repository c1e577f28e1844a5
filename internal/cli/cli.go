// Package cli implements the interactive terminal session: menus,
// prompting and rendering. All business rules live in the ledger service;
// this layer only collects input and prints results.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dmunera/cajero/internal/domain"
	"github.com/dmunera/cajero/internal/ledgerservice"
)

// Session drives one interactive terminal session over the ledger.
type Session struct {
	ledger *ledgerservice.Service
	in     *bufio.Scanner
	out    io.Writer
	logger zerolog.Logger
}

// New returns a session reading from in and writing to out.
func New(ledger *ledgerservice.Service, in io.Reader, out io.Writer, logger zerolog.Logger) *Session {
	return &Session{
		ledger: ledger,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

// Run drives the main menu until the user quits or input ends.
func (s *Session) Run() {
	logger := s.logger.With().Str("session_id", uuid.NewString()).Logger()
	ctx := logger.WithContext(context.Background())

	for {
		s.printf("\n1. Register\n2. Log in\n3. Exit\n")

		choice, ok := s.prompt("Choose: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			s.register(ctx)
		case "2":
			if id, ok := s.login(ctx); ok {
				s.accountMenu(ctx, id)
			}
		case "3":
			s.printf("goodbye\n")
			return
		default:
			s.printf("invalid option\n")
		}
	}
}

func (s *Session) register(ctx context.Context) {
	p := domain.OpenAccountParams{}

	fields := []struct {
		label string
		dst   *string
	}{
		{"Cedula (digits only): ", &p.ID},
		{"First name: ", &p.FirstName},
		{"Last name: ", &p.LastName},
		{"Birth date (YYYY-MM-DD): ", &p.BirthDate},
		{"Gender (M/F/O): ", &p.Gender},
		{"Marital status (U/S/C/D): ", &p.MaritalStatus},
		{"Email (.com): ", &p.Email},
		{"Username: ", &p.Username},
		{"Password (min 4 chars): ", &p.Password},
		{fmt.Sprintf("Opening deposit (min %d, multiple of %d): ", domain.MinBalance, domain.AmountStep), &p.InitialDeposit},
	}

	for _, f := range fields {
		v, ok := s.prompt(f.label)
		if !ok {
			return
		}

		*f.dst = v
	}

	if _, err := s.ledger.OpenAccount(ctx, p); err != nil {
		s.printf("registration failed: %v\n", err)
		return
	}

	s.printf("account opened\n")
}

func (s *Session) login(ctx context.Context) (string, bool) {
	id, ok := s.prompt("Cedula: ")
	if !ok {
		return "", false
	}

	username, ok := s.prompt("Username: ")
	if !ok {
		return "", false
	}

	password, ok := s.prompt("Password: ")
	if !ok {
		return "", false
	}

	a, err := s.ledger.Login(ctx, id, username, password)
	if err != nil {
		s.printf("login failed: %v\n", err)
		return "", false
	}

	s.printf("welcome %s %s\n", a.FirstName, a.LastName)

	return a.ID, true
}

func (s *Session) accountMenu(ctx context.Context, id string) {
	for {
		s.printf("\n1. Balance\n2. Deposit\n3. Withdraw\n4. Request loan\n5. Transfer\n6. Repay loan\n7. History\n8. History by type\n9. Update profile\n10. Log out\n")

		choice, ok := s.prompt("Choose: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			b, err := s.ledger.Balance(ctx, id)
			if err != nil {
				s.printf("error: %v\n", err)
				continue
			}

			s.printf("capital: %d\nloan balance: %d\ndebt: %d\n", b.Capital, b.LoanBalance, b.Debt)
		case "2":
			s.amountOp(ctx, id, "Amount to deposit: ", s.ledger.Deposit)
		case "3":
			s.amountOp(ctx, id, "Amount to withdraw: ", s.ledger.Withdraw)
		case "4":
			s.amountOp(ctx, id, "Loan amount: ", s.ledger.RequestLoan)
		case "5":
			s.transfer(ctx, id)
		case "6":
			s.amountOp(ctx, id, "Repayment amount: ", s.ledger.RepayLoan)
		case "7":
			s.history(ctx, id)
		case "8":
			s.historyByType(ctx, id)
		case "9":
			s.updateProfile(ctx, id)
		case "10":
			return
		default:
			s.printf("invalid option\n")
		}

		if err := s.ledger.SyncError(); err != nil {
			s.printf("warning: changes could not be written to disk: %v\n", err)
		}
	}
}

func (s *Session) amountOp(ctx context.Context, id, label string, op func(context.Context, string, string) (*domain.Account, error)) {
	raw, ok := s.prompt(label)
	if !ok {
		return
	}

	a, err := op(ctx, id, raw)
	if err != nil {
		s.printf("rejected: %v\n", err)
		return
	}

	s.printf("done, capital: %d\n", a.Capital)
}

func (s *Session) transfer(ctx context.Context, id string) {
	dest, ok := s.prompt("Destination cedula: ")
	if !ok {
		return
	}

	raw, ok := s.prompt("Amount to transfer: ")
	if !ok {
		return
	}

	a, err := s.ledger.Transfer(ctx, id, dest, raw)
	if err != nil {
		s.printf("rejected: %v\n", err)
		return
	}

	s.printf("transfer completed, capital: %d\n", a.Capital)
}

func (s *Session) history(ctx context.Context, id string) {
	ops, err := s.ledger.History(ctx, id)
	if err != nil {
		s.printf("error: %v\n", err)
		return
	}

	if len(ops) == 0 {
		s.printf("no operations recorded\n")
		return
	}

	for i, op := range ops {
		s.printOp(i+1, op)
	}
}

func (s *Session) historyByType(ctx context.Context, id string) {
	tags := []string{
		domain.OpDeposit, domain.OpWithdraw, domain.OpTransferOut,
		domain.OpLoan, domain.OpRepay, domain.OpBalanceQuery,
	}

	for i, tag := range tags {
		s.printf("%d. %s\n", i+1, tag)
	}

	choice, ok := s.prompt("Choose: ")
	if !ok {
		return
	}

	idx := 0
	if _, err := fmt.Sscanf(choice, "%d", &idx); err != nil || idx < 1 || idx > len(tags) {
		s.printf("invalid option\n")
		return
	}

	tag := tags[idx-1]

	n := 0

	for page := 0; ; page++ {
		view, err := s.ledger.HistoryByType(ctx, id, tag, page)
		if err != nil {
			s.printf("error: %v\n", err)
			return
		}

		if len(view.Operations) == 0 {
			if page == 0 {
				s.printf("no operations of this type\n")
			}

			return
		}

		for _, op := range view.Operations {
			n++
			s.printOp(n, op)
		}

		if !view.HasMore {
			return
		}

		more, ok := s.prompt("Enter for more, q to stop: ")
		if !ok || more == "q" {
			return
		}
	}
}

func (s *Session) updateProfile(ctx context.Context, id string) {
	s.printf("leave a field empty to keep it\n")

	p := domain.UpdateProfileParams{}

	fields := []struct {
		label string
		dst   *string
	}{
		{"New first name: ", &p.FirstName},
		{"New last name: ", &p.LastName},
		{"New email: ", &p.Email},
		{"New username: ", &p.Username},
		{"New password: ", &p.Password},
	}

	for _, f := range fields {
		v, ok := s.prompt(f.label)
		if !ok {
			return
		}

		*f.dst = v
	}

	if _, err := s.ledger.UpdateProfile(ctx, id, p); err != nil {
		s.printf("update failed: %v\n", err)
		return
	}

	s.printf("profile updated\n")
}

func (s *Session) printOp(n int, op domain.Operation) {
	amount := fmt.Sprintf("%d", op.Amount.Value)
	if op.Amount.Raw != nil {
		amount = string(op.Amount.Raw)
	}

	s.printf("%d. [%s] %s - %s - %s\n", n, op.Date, op.Type, amount, op.Status)

	if op.Description != "" {
		s.printf("      %s\n", op.Description)
	}

	if op.Recipient != "" {
		s.printf("      recipient: %s\n", op.Recipient)
	}
}

func (s *Session) prompt(label string) (string, bool) {
	s.printf("%s", label)

	if !s.in.Scan() {
		return "", false
	}

	return s.in.Text(), true
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
