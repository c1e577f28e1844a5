// Package ledgerservice manages the business logic layer of the ledger:
// account opening, balance mutation, debt settlement, transfers and the
// operation log.
package ledgerservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/dmunera/cajero/internal/domain"
	"github.com/dmunera/cajero/pkg/errorspkg"
	"github.com/dmunera/cajero/pkg/validpkg"
)

const defaultPageSize = 5

// Repo provides the data access layer interface needed by the ledger
// service layer.
type Repo interface {
	Create(ctx context.Context, a domain.Account) (*domain.Account, error)
	Get(ctx context.Context, id string) (*domain.Account, error)
	Exists(id string) bool
	EmailTaken(email, excludeID string) bool
	Save(ctx context.Context) error
	SyncError() error
}

// Service facilitates the ledger business logic. Every public operation
// appends exactly one Operation per acting account, success or rejection,
// and triggers a full-store persist.
type Service struct {
	repo     Repo
	validate *validator.Validate
	pageSize int
	now      func() time.Time
}

// New returns a ledger service over the given repository. pageSize bounds
// the typed history view; values below 1 fall back to the default of 5.
func New(r Repo, pageSize int) *Service {
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	return &Service{
		repo:     r,
		validate: validpkg.New(),
		pageSize: pageSize,
		now:      time.Now,
	}
}

// SyncError reports the persistence health of the store: non-nil while the
// in-memory state has diverged from disk after a failed save.
func (s *Service) SyncError() error {
	return s.repo.SyncError()
}

func (s *Service) stamp() string {
	return s.now().Format(domain.DateTimeLayout)
}

// logOp appends op to the account and persists the whole store. A failed
// persist is reported by Save as a warning and through SyncError; it never
// aborts the mutation that triggered it.
func (s *Service) logOp(ctx context.Context, a *domain.Account, op domain.Operation) {
	op.Date = s.stamp()
	a.Operations = append(a.Operations, op)

	_ = s.repo.Save(ctx)
}

// checkAmount parses and validates raw as a transaction amount, appending
// an ERROR operation under tag on any rejection. An unparsable input is
// preserved verbatim in the operation amount for audit.
func (s *Service) checkAmount(ctx context.Context, a *domain.Account, tag, raw string) (int64, error) {
	amount, err := validpkg.ParseAmount(raw)
	if err != nil {
		s.logOp(ctx, a, domain.Operation{
			Type:        tag,
			Amount:      domain.RawAmount(raw),
			Status:      domain.StatusError,
			Description: "amount is not an integer",
		})

		return 0, domain.ErrInvalidAmount
	}

	if amount <= 0 || amount%domain.AmountStep != 0 {
		s.logOp(ctx, a, domain.Operation{
			Type:        tag,
			Amount:      domain.AmountOf(amount),
			Status:      domain.StatusError,
			Description: "amount not a positive multiple of 10000",
		})

		return 0, domain.ErrNotMultiple
	}

	return amount, nil
}

// OpenAccount validates the given parameters and inserts the account with
// its opening APERTURA operation. The record only reaches the store once
// every field has been accepted.
func (s *Service) OpenAccount(ctx context.Context, p domain.OpenAccountParams) (*domain.Account, error) {
	l := zerolog.Ctx(ctx)

	if err := s.validate.Struct(p); err != nil {
		l.Info().Err(err).Msg("rejected account parameters")

		return nil, fieldError(err)
	}

	age, err := ageAt(p.BirthDate, s.now())
	if err != nil {
		return nil, domain.ErrInvalidBirthDate
	}

	if age < 18 {
		return nil, domain.ErrUnderage
	}

	if s.repo.Exists(p.ID) {
		return nil, domain.ErrIDAlreadyExists
	}

	email := strings.ToLower(strings.TrimSpace(p.Email))
	if s.repo.EmailTaken(email, "") {
		return nil, domain.ErrEmailAlreadyExists
	}

	amount, err := validpkg.ParseAmount(p.InitialDeposit)
	if err != nil {
		return nil, domain.ErrInvalidAmount
	}

	if amount%domain.AmountStep != 0 || amount <= 0 {
		return nil, domain.ErrNotMultiple
	}

	if amount < domain.MinBalance {
		return nil, domain.ErrBelowMinBalance
	}

	account, err := s.repo.Create(ctx, domain.Account{
		ID:            p.ID,
		FirstName:     strings.TrimSpace(p.FirstName),
		LastName:      strings.TrimSpace(p.LastName),
		BirthDate:     p.BirthDate,
		Age:           age,
		Gender:        p.Gender,
		MaritalStatus: p.MaritalStatus,
		Email:         email,
		OpenedAt:      s.stamp(),
		Username:      strings.TrimSpace(p.Username),
		Password:      p.Password,
		Capital:       domain.CoercedInt(amount),
	})
	if err != nil {
		return nil, err
	}

	s.logOp(ctx, account, domain.Operation{
		Type:        domain.OpOpen,
		Amount:      domain.AmountOf(amount),
		Status:      domain.StatusOK,
		Description: "account opened",
	})

	return account, nil
}

// Login verifies the credentials for the given identifier. Credentials are
// stored and compared in plain text: preserved behavior of the system this
// ledger replaces, not a model to copy. A failed attempt is recorded on the
// account's log.
func (s *Service) Login(ctx context.Context, id, username, password string) (*domain.Account, error) {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if a.Username != username || a.Password != password {
		s.logOp(ctx, a, domain.Operation{
			Type:        domain.OpLoginAttempt,
			Amount:      domain.AmountOf(0),
			Status:      domain.StatusError,
			Description: "wrong credentials",
		})

		return nil, domain.ErrWrongPassword
	}

	return a, nil
}

// UpdateProfile applies the non-empty fields of p to the account. Email
// changes keep store-wide uniqueness, excluding the account itself.
func (s *Service) UpdateProfile(ctx context.Context, id string, p domain.UpdateProfileParams) (*domain.Account, error) {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.FirstName != "" {
		if !validpkg.IsValidPersonName(p.FirstName) {
			return nil, domain.ErrInvalidName
		}

		a.FirstName = strings.TrimSpace(p.FirstName)
	}

	if p.LastName != "" {
		if !validpkg.IsValidPersonName(p.LastName) {
			return nil, domain.ErrInvalidName
		}

		a.LastName = strings.TrimSpace(p.LastName)
	}

	if p.Email != "" {
		if !validpkg.IsValidComEmail(p.Email) {
			return nil, domain.ErrInvalidEmail
		}

		email := strings.ToLower(strings.TrimSpace(p.Email))
		if s.repo.EmailTaken(email, id) {
			return nil, domain.ErrEmailAlreadyExists
		}

		a.Email = email
	}

	if p.Username != "" {
		a.Username = strings.TrimSpace(p.Username)
	}

	if p.Password != "" {
		if len(p.Password) < 4 {
			return nil, domain.ErrShortPassword
		}

		a.Password = p.Password
	}

	s.logOp(ctx, a, domain.Operation{
		Type:        domain.OpUpdate,
		Amount:      domain.AmountOf(0),
		Status:      domain.StatusOK,
		Description: "profile updated",
	})

	return a, nil
}

// fieldError maps the first validator violation to its domain sentinel.
func fieldError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errorspkg.ErrInternal
	}

	switch verrs[0].StructField() {
	case "ID":
		return domain.ErrInvalidID
	case "FirstName", "LastName":
		return domain.ErrInvalidName
	case "BirthDate":
		return domain.ErrInvalidBirthDate
	case "Gender":
		return domain.ErrInvalidGender
	case "MaritalStatus":
		return domain.ErrInvalidMaritalStatus
	case "Email":
		return domain.ErrInvalidEmail
	case "Username":
		return domain.ErrInvalidUsername
	case "Password":
		return domain.ErrShortPassword
	case "InitialDeposit":
		return domain.ErrInvalidAmount
	}

	return errorspkg.ErrInternal
}

func ageAt(birthDate string, now time.Time) (int, error) {
	d, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return 0, err
	}

	age := now.Year() - d.Year()
	if now.Month() < d.Month() || (now.Month() == d.Month() && now.Day() < d.Day()) {
		age--
	}

	return age, nil
}
