// Package domain provides definitions of all entities.
package domain

// Monetary rules every ledger mutation must satisfy.
const (
	// MinBalance is the floor capital must not fall below after a
	// withdrawal or an outgoing transfer.
	MinBalance = 50000
	// AmountStep is the unit every transaction amount must be a positive
	// multiple of.
	AmountStep = 10000
	// LoanCapFactor caps a loan request at this many times the capital
	// held at request time.
	LoanCapFactor = 4
)

// Account holds the full customer record. The JSON tags are the persisted
// schema and must not change: documents written by earlier versions of the
// ledger are loaded as-is.
type Account struct {
	ID            string     `json:"cedula"`
	FirstName     string     `json:"nombre"`
	LastName      string     `json:"apellidos"`
	BirthDate     string     `json:"fecha_nacimiento"`
	Age           int        `json:"edad"`
	Gender        string     `json:"genero"`
	MaritalStatus string     `json:"estado_civil"`
	Email         string     `json:"email"`
	OpenedAt      string     `json:"fecha_apertura"`
	Username      string     `json:"usuario"`
	Password      string     `json:"clave"`
	Capital       CoercedInt `json:"saldo_capital"`
	LoanBalance   CoercedInt `json:"saldo_prestamo"`
	Debt          CoercedInt `json:"deuda"`
	Operations    Operations `json:"operaciones"`
}

// Indebted reports whether the account still owes against a loan. While it
// does, withdrawals, new loans and outgoing transfers are barred.
func (a *Account) Indebted() bool {
	return a.Debt > 0
}

// OpenAccountParams is the input to open an account. InitialDeposit carries
// the raw amount text as entered so an unparsable value can be preserved
// for audit.
type OpenAccountParams struct {
	ID             string `validate:"required,cedula"`
	FirstName      string `validate:"required,personname"`
	LastName       string `validate:"required,personname"`
	BirthDate      string `validate:"required,datetime=2006-01-02"`
	Gender         string `validate:"required,oneof=M F O"`
	MaritalStatus  string `validate:"required,oneof=U S C D"`
	Email          string `validate:"required,comemail"`
	Username       string `validate:"required"`
	Password       string `validate:"required,min=4"`
	InitialDeposit string `validate:"required"`
}

// UpdateProfileParams carries optional profile changes; empty fields are
// left untouched.
type UpdateProfileParams struct {
	FirstName string
	LastName  string
	Email     string
	Username  string
	Password  string
}
