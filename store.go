package avgcost

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// undoWindow is how long a bulk reset stays recoverable.
const undoWindow = 5 * time.Minute

// Store-level conflicts, rejected synchronously before any mutation.
var (
	ErrLastStock          = errors.New("cannot remove the last stock")
	ErrUnknownStock       = errors.New("unknown stock")
	ErrDuplicateStock     = errors.New("stock already exists")
	ErrUnknownTransaction = errors.New("unknown transaction")
	ErrNothingToUndo      = errors.New("nothing to undo")
)

// Store holds the ordered stock list and the transaction ledger for all
// symbols. It owns transaction identity and the reset/undo lifecycle; every
// derivation (position, realized P/L, previews) is computed from the slices
// it hands out, never from internal state.
//
// Mutations replace whole slices (copy-on-write) so readers holding a
// previously returned slice are never surprised.
type Store struct {
	stocks       []string
	transactions []Transaction

	// one-shot undo buffer for the last Reset
	undo      []Transaction
	undoUntil time.Time

	now func() time.Time // injectable clock for the undo window
}

// NewStore creates a store tracking the given stocks, in order. The first
// stock is the default active symbol.
func NewStore(stocks ...string) *Store {
	s := &Store{now: time.Now}
	for _, sym := range stocks {
		s.stocks = append(s.stocks, strings.ToUpper(strings.TrimSpace(sym)))
	}
	return s
}

// Stocks returns the ordered stock list.
func (s *Store) Stocks() []string {
	out := make([]string, len(s.stocks))
	copy(out, s.stocks)
	return out
}

// ActiveStock returns the default symbol, the first of the list, or "" when
// the store is empty.
func (s *Store) ActiveStock() string {
	if len(s.stocks) == 0 {
		return ""
	}
	return s.stocks[0]
}

// HasStock reports whether the symbol is tracked.
func (s *Store) HasStock(symbol string) bool {
	return s.indexOf(normalize(symbol)) >= 0
}

func (s *Store) indexOf(symbol string) int {
	for i, sym := range s.stocks {
		if sym == symbol {
			return i
		}
	}
	return -1
}

func normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// AddStock starts tracking a new symbol.
func (s *Store) AddStock(symbol string) error {
	symbol = normalize(symbol)
	if symbol == "" {
		return fmt.Errorf("symbol is required")
	}
	if s.indexOf(symbol) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateStock, symbol)
	}
	stocks := make([]string, 0, len(s.stocks)+1)
	stocks = append(stocks, s.stocks...)
	s.stocks = append(stocks, symbol)
	return nil
}

// RemoveStock stops tracking a symbol and permanently discards its
// transactions. Removing the last stock is rejected: at least one must
// remain.
func (s *Store) RemoveStock(symbol string) error {
	symbol = normalize(symbol)
	i := s.indexOf(symbol)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownStock, symbol)
	}
	if len(s.stocks) == 1 {
		return ErrLastStock
	}
	stocks := make([]string, 0, len(s.stocks)-1)
	stocks = append(stocks, s.stocks[:i]...)
	s.stocks = append(stocks, s.stocks[i+1:]...)

	kept := make([]Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		if tx.Symbol != symbol {
			kept = append(kept, tx)
		}
	}
	s.transactions = kept
	return nil
}

// RenameStock changes a symbol and rewrites it on every owned transaction.
// Renaming a stock to its own current name is a no-op. The new name must not
// collide with another tracked stock.
func (s *Store) RenameStock(oldSymbol, newSymbol string) error {
	oldSymbol, newSymbol = normalize(oldSymbol), normalize(newSymbol)
	if newSymbol == "" {
		return fmt.Errorf("symbol is required")
	}
	i := s.indexOf(oldSymbol)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownStock, oldSymbol)
	}
	if oldSymbol == newSymbol {
		return nil
	}
	if s.indexOf(newSymbol) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateStock, newSymbol)
	}

	stocks := make([]string, len(s.stocks))
	copy(stocks, s.stocks)
	stocks[i] = newSymbol
	s.stocks = stocks

	txs := make([]Transaction, len(s.transactions))
	copy(txs, s.transactions)
	for j := range txs {
		if txs[j].Symbol == oldSymbol {
			txs[j].Symbol = newSymbol
		}
	}
	s.transactions = txs
	return nil
}

// Add appends a transaction to the ledger. An unknown symbol starts being
// tracked implicitly.
func (s *Store) Add(tx Transaction) {
	if s.indexOf(tx.Symbol) < 0 {
		s.stocks = append(append([]string{}, s.stocks...), tx.Symbol)
	}
	s.transactions = append(append([]Transaction{}, s.transactions...), tx)
}

// Remove permanently deletes a transaction. This is the hard delete; see
// SetActive for the recoverable exclusion.
func (s *Store) Remove(id string) error {
	kept := make([]Transaction, 0, len(s.transactions))
	found := false
	for _, tx := range s.transactions {
		if tx.ID == id {
			found = true
			continue
		}
		kept = append(kept, tx)
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrUnknownTransaction, id)
	}
	s.transactions = kept
	return nil
}

// SetActive toggles a transaction in or out of every derivation without
// removing it from the history.
func (s *Store) SetActive(id string, active bool) error {
	txs := make([]Transaction, len(s.transactions))
	copy(txs, s.transactions)
	for i := range txs {
		if txs[i].ID == id {
			txs[i].Active = active
			s.transactions = txs
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownTransaction, id)
}

// Find returns the transaction whose id starts with the given prefix. The
// prefix must match exactly one record.
func (s *Store) Find(idPrefix string) (Transaction, error) {
	var match Transaction
	found := 0
	for _, tx := range s.transactions {
		if strings.HasPrefix(tx.ID, idPrefix) {
			match = tx
			found++
		}
	}
	switch found {
	case 0:
		return Transaction{}, fmt.Errorf("%w: %s", ErrUnknownTransaction, idPrefix)
	case 1:
		return match, nil
	default:
		return Transaction{}, fmt.Errorf("ambiguous transaction id prefix %q (%d matches)", idPrefix, found)
	}
}

// All returns every transaction, in insertion order.
func (s *Store) All() []Transaction {
	out := make([]Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Transactions returns one symbol's full history, sorted by time. The sort
// is stable: transactions created at the same instant keep their insertion
// order.
func (s *Store) Transactions(symbol string) []Transaction {
	symbol = normalize(symbol)
	var out []Transaction
	for _, tx := range s.transactions {
		if tx.Symbol == symbol {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time.Before(out[j].Time) })
	return out
}

// ActiveTransactions is Transactions filtered down to the records that take
// part in derivations.
func (s *Store) ActiveTransactions(symbol string) []Transaction {
	all := s.Transactions(symbol)
	out := make([]Transaction, 0, len(all))
	for _, tx := range all {
		if tx.Active {
			out = append(out, tx)
		}
	}
	return out
}

// Reset removes every transaction of one symbol at once and stages them in
// the undo buffer. The buffer holds a single reset: a new one replaces any
// pending buffer, and it expires after the undo window. It returns the
// number of removed transactions.
func (s *Store) Reset(symbol string) int {
	symbol = normalize(symbol)
	var staged []Transaction
	kept := make([]Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		if tx.Symbol == symbol {
			staged = append(staged, tx)
		} else {
			kept = append(kept, tx)
		}
	}
	s.transactions = kept
	s.undo = staged
	s.undoUntil = s.now().Add(undoWindow)
	return len(staged)
}

// UndoState exposes the staged reset buffer and its deadline so the caller
// can persist it across invocations.
func (s *Store) UndoState() ([]Transaction, time.Time) {
	if s.undo == nil {
		return nil, time.Time{}
	}
	out := make([]Transaction, len(s.undo))
	copy(out, s.undo)
	return out, s.undoUntil
}

// SetUndoState restores a previously persisted reset buffer.
func (s *Store) SetUndoState(txs []Transaction, until time.Time) {
	if len(txs) == 0 {
		s.undo = nil
		return
	}
	s.undo = append([]Transaction{}, txs...)
	s.undoUntil = until
}

// Undo restores the transactions staged by the last Reset, if the window has
// not expired. The buffer is checked lazily: no timer runs in the
// background. It returns the number of restored transactions.
func (s *Store) Undo() (int, error) {
	if s.undo == nil || s.now().After(s.undoUntil) {
		s.undo = nil
		return 0, ErrNothingToUndo
	}
	restored := len(s.undo)
	s.transactions = append(append([]Transaction{}, s.transactions...), s.undo...)
	s.undo = nil
	return restored, nil
}
