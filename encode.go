package hjembank

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// StateKey is the well-known storage key the account blob lives under. The
// file store uses it as the default file name.
const StateKey = "hjembank.accounts.json"

// Store is a single-slot blob store. Load reports ok=false when nothing has
// been stored yet, which is not an error.
type Store interface {
	Load() (data []byte, ok bool, err error)
	Save(data []byte) error
}

// FileStore persists the blob as one file.
type FileStore struct {
	Path string
}

// Load reads the blob; a missing file is an empty store, not an error.
func (s FileStore) Load() ([]byte, bool, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not read state file %q: %w", s.Path, err)
	}
	return data, true, nil
}

// Save writes the blob atomically: a temp file in the same directory is
// renamed over the target, so readers never see a half-written state.
func (s FileStore) Save(data []byte) error {
	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, ".hjembank-*")
	if err != nil {
		return fmt.Errorf("could not create temp state file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("could not write state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not close state file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not replace state file %q: %w", s.Path, err)
	}
	return nil
}

// MemStore keeps the blob in memory. Useful in tests and for throwaway
// sessions.
type MemStore struct {
	data []byte
	ok   bool
}

func (s *MemStore) Load() ([]byte, bool, error) { return s.data, s.ok, nil }

func (s *MemStore) Save(data []byte) error {
	s.data = append([]byte(nil), data...)
	s.ok = true
	return nil
}

// EncodeAccounts serializes the ledger's account mapping (and its display
// order) as one JSON blob. Only accounts are persisted: navigation history
// and payment drafts are session state and never leave memory.
func EncodeAccounts(l *Ledger) ([]byte, error) {
	var w jsonObjectWriter
	accounts := make([]Account, 0, l.Len())
	for a := range l.All() {
		accounts = append(accounts, a)
	}
	w.Append("accounts", accounts)
	blob, err := w.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("could not encode accounts: %w", err)
	}
	return blob, nil
}

// DecodeAccounts rebuilds a ledger from a blob written by EncodeAccounts.
func DecodeAccounts(data []byte) (*Ledger, error) {
	var state struct {
		Accounts []Account `json:"accounts"`
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("could not decode accounts: %w", err)
	}
	l := NewLedger()
	for _, a := range state.Accounts {
		l.Add(a)
	}
	return l, nil
}

// LoadLedger reads the persisted account blob from the store. An absent or
// unparsable blob falls back to the built-in seed accounts: startup never
// fails on bad state, it logs and starts fresh.
func LoadLedger(s Store) *Ledger {
	data, ok, err := s.Load()
	if err != nil {
		log.Printf("warning: could not load state, using seed accounts: %v", err)
		return SeedLedger()
	}
	if !ok {
		return SeedLedger()
	}
	l, err := DecodeAccounts(data)
	if err != nil {
		log.Printf("warning: corrupt state, using seed accounts: %v", err)
		return SeedLedger()
	}
	return l
}
