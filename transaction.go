package avgcost

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TxType identifies the two kinds of ledger entries.
type TxType string

const (
	Buy  TxType = "buy"
	Sell TxType = "sell"
)

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch strings.ToLower(s) {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Transaction is a single trade recorded in the ledger.
//
// A transaction is a fact: once created only two fields ever change. Symbol
// is rewritten en masse when its stock is renamed, and Active can be toggled
// to exclude the record from every derivation while keeping it visible in
// the history.
type Transaction struct {
	ID       string
	Symbol   string
	Type     TxType
	Price    float64
	Quantity float64
	Time     time.Time // creation instant; ties broken by insertion order
	Active   bool
}

// NewBuy creates a buy transaction, active by default.
func NewBuy(symbol string, price, quantity float64, at time.Time) (Transaction, error) {
	return newTransaction(Buy, symbol, price, quantity, at)
}

// NewSell creates a sell transaction, active by default.
func NewSell(symbol string, price, quantity float64, at time.Time) (Transaction, error) {
	return newTransaction(Sell, symbol, price, quantity, at)
}

func newTransaction(kind TxType, symbol string, price, quantity float64, at time.Time) (Transaction, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return Transaction{}, fmt.Errorf("symbol is required")
	}
	if price <= 0 {
		return Transaction{}, fmt.Errorf("price must be positive, got %v", price)
	}
	if quantity <= 0 {
		return Transaction{}, fmt.Errorf("quantity must be positive, got %v", quantity)
	}
	return Transaction{
		ID:       uuid.NewString(),
		Symbol:   symbol,
		Type:     kind,
		Price:    price,
		Quantity: quantity,
		Time:     at,
		Active:   true,
	}, nil
}
