package domain

import (
	"sort"
	"time"
)

// DateTimeLayout is the canonical timestamp format of the operation log.
const DateTimeLayout = "2006-01-02 15:04:05"

// Operation type tags.
const (
	OpOpen         = "APERTURA"
	OpDeposit      = "DEPOSIT"
	OpWithdraw     = "WITHDRAW"
	OpLoan         = "LOAN"
	OpRepay        = "REPAY"
	OpTransferOut  = "TRANSFER-OUT"
	OpTransferIn   = "TRANSFER-IN"
	OpLoginAttempt = "LOGIN_ATTEMPT"
	OpBalanceQuery = "BALANCE_QUERY"
	OpUpdate       = "UPDATE"
)

// Operation statuses.
const (
	StatusOK    = "OK"
	StatusError = "ERROR"
)

// Operation is one immutable timestamped ledger entry recording an
// attempted or completed action and its outcome.
type Operation struct {
	Date        string   `json:"fecha"`
	Type        string   `json:"tipo"`
	Amount      OpAmount `json:"monto"`
	Status      string   `json:"estado"`
	Description string   `json:"descripcion"`
	Recipient   string   `json:"destinatario,omitempty"`
}

// Operations is the append-only per-account log; insertion order is the
// chronological order of creation.
type Operations []Operation

// SortedDesc returns a copy of the log ordered by timestamp descending.
// If any stored timestamp does not parse under DateTimeLayout the whole
// list falls back to reverse insertion order.
func (ops Operations) SortedDesc() Operations {
	out := make(Operations, len(ops))

	times := make([]time.Time, len(ops))

	for i, op := range ops {
		t, err := time.Parse(DateTimeLayout, op.Date)
		if err != nil {
			for j := range out {
				out[j] = ops[len(ops)-1-j]
			}

			return out
		}

		times[i] = t
	}

	idx := make([]int, len(ops))
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(a, b int) bool {
		return times[idx[a]].After(times[idx[b]])
	})

	for i, j := range idx {
		out[i] = ops[j]
	}

	return out
}

// FilterByType returns the operations carrying the given type tag, in
// insertion order.
func (ops Operations) FilterByType(tag string) Operations {
	var out Operations

	for _, op := range ops {
		if op.Type == tag {
			out = append(out, op)
		}
	}

	return out
}
