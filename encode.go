package avgcost

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// Record kinds used to identify JSONL lines.
const (
	kindStock = "stock"
	kindTx    = "tx"
)

// stockRecord is the persisted form of one tracked symbol. The order of
// stock lines in the file is the portfolio order; the first is the default
// active symbol.
type stockRecord struct {
	Kind   string `json:"kind"`
	Symbol string `json:"symbol"`
}

// txRecord is the persisted form of one transaction. Type and Active are
// pointers so that records written by older versions, which had neither
// field, can be told apart from explicit values and migrated on load.
type txRecord struct {
	Kind     string    `json:"kind"`
	ID       string    `json:"id"`
	Symbol   string    `json:"symbol"`
	Type     *TxType   `json:"type,omitempty"`
	Price    float64   `json:"price"`
	Quantity float64   `json:"quantity"`
	Time     time.Time `json:"time"`
	Active   *bool     `json:"active,omitempty"`
}

// DecodeStore reads a stream of JSONL data, one record per line, and returns
// the store it describes. Transactions are sorted by time with a stable
// sort, so same-instant records keep their file order.
//
// Two migrations apply to old records: a missing active flag defaults to
// true, and a missing type defaults to buy.
func DecodeStore(r io.Reader) (*Store, error) {
	store := NewStore()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(strings.TrimSpace(string(lineBytes))) == 0 {
			continue
		}

		var identifier struct {
			Kind string `json:"kind"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(lineBytes), err)
		}

		switch identifier.Kind {
		case kindStock:
			var rec stockRecord
			if err := json.Unmarshal(lineBytes, &rec); err != nil {
				return nil, err
			}
			// A symbol may already be tracked implicitly by an earlier
			// transaction line; a duplicate stock line is harmless.
			if !store.HasStock(rec.Symbol) {
				if err := store.AddStock(rec.Symbol); err != nil {
					return nil, fmt.Errorf("invalid stock line %q: %w", string(lineBytes), err)
				}
			}
		case kindTx:
			var rec txRecord
			if err := json.Unmarshal(lineBytes, &rec); err != nil {
				return nil, err
			}
			tx, err := rec.transaction()
			if err != nil {
				return nil, fmt.Errorf("invalid transaction line %q: %w", string(lineBytes), err)
			}
			store.Add(tx)
		default:
			return nil, fmt.Errorf("unknown record kind: %q", identifier.Kind)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	sort.SliceStable(store.transactions, func(i, j int) bool {
		return store.transactions[i].Time.Before(store.transactions[j].Time)
	})
	return store, nil
}

// transaction converts a persisted record to its domain form, applying the
// forward-compatibility migrations.
func (rec txRecord) transaction() (Transaction, error) {
	if rec.ID == "" {
		return Transaction{}, fmt.Errorf("missing id")
	}
	tx := Transaction{
		ID:       rec.ID,
		Symbol:   normalize(rec.Symbol),
		Type:     Buy, // records written before sells existed are buys
		Price:    rec.Price,
		Quantity: rec.Quantity,
		Time:     rec.Time,
		Active:   true, // records written before soft-delete existed are active
	}
	if tx.Symbol == "" {
		return Transaction{}, fmt.Errorf("missing symbol")
	}
	if rec.Type != nil {
		kind, err := ParseTxType(string(*rec.Type))
		if err != nil {
			return Transaction{}, err
		}
		tx.Type = kind
	}
	if rec.Active != nil {
		tx.Active = *rec.Active
	}
	return tx, nil
}

func (tx Transaction) record() txRecord {
	kind, active := tx.Type, tx.Active
	return txRecord{
		Kind:     kindTx,
		ID:       tx.ID,
		Symbol:   tx.Symbol,
		Type:     &kind,
		Price:    tx.Price,
		Quantity: tx.Quantity,
		Time:     tx.Time,
		Active:   &active,
	}
}

// EncodeStore writes the store in canonical JSONL form: stock lines in
// portfolio order, then transactions sorted by time.
func EncodeStore(w io.Writer, s *Store) error {
	for _, symbol := range s.stocks {
		if err := encodeLine(w, stockRecord{Kind: kindStock, Symbol: symbol}); err != nil {
			return err
		}
	}
	txs := make([]Transaction, len(s.transactions))
	copy(txs, s.transactions)
	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Time.Before(txs[j].Time) })
	for _, tx := range txs {
		if err := encodeLine(w, tx.record()); err != nil {
			return err
		}
	}
	return nil
}

func encodeLine(w io.Writer, v any) error {
	jsonData, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(append(jsonData, '\n'))
	return err
}

// undoRecord heads an undo sidecar file: the deadline after which the staged
// reset is no longer recoverable.
type undoRecord struct {
	Kind  string    `json:"kind"`
	Until time.Time `json:"until"`
}

const kindUndo = "undo"

// EncodeUndo writes the store's staged reset buffer: an undo line carrying
// the deadline, then the staged transactions. The CLI persists this sidecar
// so an undo can happen in a later invocation.
func EncodeUndo(w io.Writer, s *Store) error {
	staged, until := s.UndoState()
	if err := encodeLine(w, undoRecord{Kind: kindUndo, Until: until}); err != nil {
		return err
	}
	for _, tx := range staged {
		if err := encodeLine(w, tx.record()); err != nil {
			return err
		}
	}
	return nil
}

// DecodeUndo loads a persisted reset buffer into the store.
func DecodeUndo(r io.Reader, s *Store) error {
	scanner := bufio.NewScanner(r)
	var until time.Time
	var staged []Transaction
	first := true
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(strings.TrimSpace(string(lineBytes))) == 0 {
			continue
		}
		if first {
			var rec undoRecord
			if err := json.Unmarshal(lineBytes, &rec); err != nil || rec.Kind != kindUndo {
				return fmt.Errorf("malformed undo header %q", string(lineBytes))
			}
			until = rec.Until
			first = false
			continue
		}
		var rec txRecord
		if err := json.Unmarshal(lineBytes, &rec); err != nil {
			return err
		}
		tx, err := rec.transaction()
		if err != nil {
			return fmt.Errorf("invalid staged transaction %q: %w", string(lineBytes), err)
		}
		staged = append(staged, tx)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading from input: %w", err)
	}
	if first {
		return fmt.Errorf("empty undo buffer")
	}
	s.SetUndoState(staged, until)
	return nil
}

// ExportJSON renders the store as a single JSON document, decoded back into
// plain maps and slices. This is the read-only view the query command walks
// with JSONPath expressions.
func (s *Store) ExportJSON() (any, error) {
	doc := struct {
		Stocks       []string   `json:"stocks"`
		Transactions []txRecord `json:"transactions"`
	}{Stocks: s.Stocks(), Transactions: []txRecord{}}
	for _, tx := range s.All() {
		doc.Transactions = append(doc.Transactions, tx.record())
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return nil, err
	}
	return jobj, nil
}
