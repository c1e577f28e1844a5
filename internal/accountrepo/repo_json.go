// Package accountrepo manages the repository layer of accounts.
package accountrepo

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dmunera/cajero/internal/domain"
	"github.com/dmunera/cajero/pkg/jsonfile"
)

// RepoJSON keeps the whole account store in memory and persists it as a
// single JSON document replaced atomically on every save. Not safe for
// concurrent use: the ledger runs exactly one session.
type RepoJSON struct {
	path     string
	accounts map[string]*domain.Account
	order    []string
	saveErr  error
}

// NewRepoJSON returns an empty store bound to path.
func NewRepoJSON(path string) *RepoJSON {
	return &RepoJSON{
		path:     path,
		accounts: map[string]*domain.Account{},
	}
}

// Load reads the backing file into memory. A missing file yields an empty
// store. A file that does not parse as a JSON object is moved aside to a
// .bak sibling and an empty store is returned. Loading never fails the
// caller; field-level repair is carried by the domain coercion types.
func (r *RepoJSON) Load(ctx context.Context) {
	l := zerolog.Ctx(ctx)

	r.accounts = map[string]*domain.Account{}
	r.order = nil

	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			l.Warn().Err(err).Str("path", r.path).Msg("cannot read data file, starting empty")
			jsonfile.BackupCorrupt(r.path)
		}

		return
	}

	var raw map[string]*domain.Account
	if err := json.Unmarshal(data, &raw); err != nil {
		l.Warn().Err(err).Str("path", r.path).Msg("corrupt data file, starting empty")
		jsonfile.BackupCorrupt(r.path)

		return
	}

	// Insertion order is not recoverable from a JSON object; keys are
	// kept sorted so iteration stays deterministic across runs.
	for id, a := range raw {
		if a == nil {
			continue
		}

		if a.ID == "" {
			a.ID = id
		}

		r.accounts[id] = a
		r.order = append(r.order, id)
	}

	sort.Strings(r.order)
}

// Save writes the whole store to disk atomically. The last failure is
// retained and reported through SyncError until a later save succeeds; the
// in-memory mutation that triggered the save always stands.
func (r *RepoJSON) Save(ctx context.Context) error {
	err := jsonfile.WriteAtomic(r.path, r.accounts)

	r.saveErr = err
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("path", r.path).Msg("cannot persist account store")
	}

	return err
}

// SyncError reports whether the in-memory store has diverged from disk: it
// returns the error of the most recent failed save, nil after a successful
// one.
func (r *RepoJSON) SyncError() error {
	return r.saveErr
}

// Create inserts a new account and returns the stored record.
func (r *RepoJSON) Create(ctx context.Context, a domain.Account) (*domain.Account, error) {
	if _, ok := r.accounts[a.ID]; ok {
		return nil, domain.ErrIDAlreadyExists
	}

	acc := a
	r.accounts[a.ID] = &acc
	r.order = append(r.order, a.ID)

	return &acc, nil
}

// Get returns the account with the given identifier.
func (r *RepoJSON) Get(ctx context.Context, id string) (*domain.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	return a, nil
}

// Exists reports whether the identifier is registered.
func (r *RepoJSON) Exists(id string) bool {
	_, ok := r.accounts[id]

	return ok
}

// List returns every account in store order.
func (r *RepoJSON) List() []*domain.Account {
	out := make([]*domain.Account, 0, len(r.order))

	for _, id := range r.order {
		out = append(out, r.accounts[id])
	}

	return out
}

// EmailTaken reports whether any account other than excludeID already uses
// email. Comparison is case-insensitive after trimming.
func (r *RepoJSON) EmailTaken(email, excludeID string) bool {
	e := strings.ToLower(strings.TrimSpace(email))

	for _, id := range r.order {
		if id == excludeID {
			continue
		}

		if strings.ToLower(strings.TrimSpace(r.accounts[id].Email)) == e {
			return true
		}
	}

	return false
}
