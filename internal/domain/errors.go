package domain

import "errors"

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrIDAlreadyExists indicates that the identifier is already registered.
	ErrIDAlreadyExists = errors.New("identifier already registered")
	// ErrEmailAlreadyExists indicates that another account already uses the email.
	ErrEmailAlreadyExists = errors.New("email already registered")
	// ErrWrongPassword indicates that the given credentials do not match.
	ErrWrongPassword = errors.New("wrong credentials")

	// ErrInvalidAmount indicates that the amount is not a valid integer.
	ErrInvalidAmount = errors.New("amount is not a valid integer")
	// ErrNotMultiple indicates that the amount is not a positive multiple of 10000.
	ErrNotMultiple = errors.New("amount must be a positive multiple of 10000")
	// ErrInsufficientFunds indicates that the amount exceeds the capital.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrBelowMinBalance indicates that the capital would fall below the minimum.
	ErrBelowMinBalance = errors.New("capital would fall below the minimum balance")
	// ErrOutstandingDebt indicates that the operation is barred while debt remains.
	ErrOutstandingDebt = errors.New("outstanding debt")
	// ErrNoOutstandingDebt indicates a repayment attempt with nothing owed.
	ErrNoOutstandingDebt = errors.New("no outstanding debt")
	// ErrLoanCapExceeded indicates that the requested loan exceeds four times the capital.
	ErrLoanCapExceeded = errors.New("requested loan exceeds the cap")
	// ErrDestinationNotFound indicates that the transfer destination does not exist.
	ErrDestinationNotFound = errors.New("destination account not found")
	// ErrSelfTransfer indicates a transfer to the originating account.
	ErrSelfTransfer = errors.New("cannot transfer to the same account")

	// ErrInvalidID indicates a malformed identifier (digits only).
	ErrInvalidID = errors.New("identifier must contain only digits")
	// ErrInvalidName indicates a malformed person name.
	ErrInvalidName = errors.New("name must contain only letters")
	// ErrInvalidBirthDate indicates a malformed birth date.
	ErrInvalidBirthDate = errors.New("birth date must be YYYY-MM-DD")
	// ErrUnderage indicates an account holder younger than 18.
	ErrUnderage = errors.New("account holder must be at least 18")
	// ErrInvalidGender indicates a gender code outside M/F/O.
	ErrInvalidGender = errors.New("gender must be M, F or O")
	// ErrInvalidMaritalStatus indicates a marital status code outside U/S/C/D.
	ErrInvalidMaritalStatus = errors.New("marital status must be U, S, C or D")
	// ErrInvalidEmail indicates an email outside the accepted .com shape.
	ErrInvalidEmail = errors.New("email must be a valid .com address")
	// ErrInvalidUsername indicates an empty login name.
	ErrInvalidUsername = errors.New("username must not be empty")
	// ErrShortPassword indicates a password shorter than 4 characters.
	ErrShortPassword = errors.New("password must have at least 4 characters")
)
