// Package store reads and writes the ledger's flat-file forms: the CSV
// transaction file and the plain-text summary report.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"git.sr.ht/~jakintosh/ledgerman/internal/core"
)

// Column names of the transaction file, in the order Save writes them.
const (
	ColumnID          = "transaction_id"
	ColumnDate        = "date"
	ColumnCustomerID  = "customer_id"
	ColumnAmount      = "amount"
	ColumnType        = "type"
	ColumnDescription = "description"
)

// Header is the fixed header row written by Save.
var Header = []string{ColumnID, ColumnDate, ColumnCustomerID, ColumnAmount, ColumnType, ColumnDescription}

var requiredColumns = []string{ColumnDate, ColumnCustomerID, ColumnAmount, ColumnType}

// LoadFile opens path and reads every transaction from it.
func LoadFile(path string) ([]core.Transaction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", core.ErrIO, path, err)
	}
	defer file.Close()

	transactions, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return transactions, nil
}

// Load reads a CSV transaction file. Columns are matched by header name.
// Debit rows are stored with a negative amount. Any bad row fails the whole
// read; nothing is returned partially.
func Load(r io.Reader) ([]core.Transaction, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing header row", core.ErrFormat)
	}
	if err != nil {
		return nil, readError(err)
	}
	columns, err := indexColumns(header)
	if err != nil {
		return nil, err
	}
	reader.FieldsPerRecord = len(header)

	var transactions []core.Transaction
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, readError(err)
		}
		line, _ := reader.FieldPos(0)

		tx, err := parseRow(columns, record, len(transactions)+1)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

// SaveFile writes transactions to path, replacing its contents.
func SaveFile(path string, transactions []core.Transaction) (err error) {
	if len(transactions) == 0 {
		return core.ErrNoTransactions
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", core.ErrIO, path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", core.ErrIO, path, closeErr)
		}
	}()
	return Save(file, transactions)
}

// Save writes transactions as CSV with the fixed header. Amounts are written
// as held in memory.
func Save(w io.Writer, transactions []core.Transaction) error {
	if len(transactions) == 0 {
		return core.ErrNoTransactions
	}
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("%w: write header: %w", core.ErrIO, err)
	}
	for _, tx := range transactions {
		if err := writer.Write(formatRow(tx)); err != nil {
			return fmt.Errorf("%w: write transaction %d: %w", core.ErrIO, tx.ID, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("%w: flush: %w", core.ErrIO, err)
	}
	return nil
}

func formatRow(tx core.Transaction) []string {
	return []string{
		strconv.Itoa(tx.ID),
		tx.DateString(),
		tx.CustomerID,
		tx.AmountString(),
		string(tx.Kind),
		tx.Description,
	}
}

// indexColumns maps each known column name to its position in the header.
func indexColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := columns[name]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", core.ErrFormat, name)
		}
		columns[name] = i
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing column(s) %s", core.ErrFormat, strings.Join(missing, ", "))
	}
	return columns, nil
}

// parseRow builds a transaction from one record; position is used as the id
// when the file carries none.
func parseRow(columns map[string]int, record []string, position int) (core.Transaction, error) {
	field := func(name string) string {
		i, ok := columns[name]
		if !ok {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	id := position
	if raw := field(ColumnID); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return core.Transaction{}, fmt.Errorf("%w: transaction id %q is not an integer", core.ErrFormat, raw)
		}
		id = parsed
	}

	date, err := core.ParseDate(field(ColumnDate))
	if err != nil {
		return core.Transaction{}, err
	}
	amount, err := core.ParseAmount(field(ColumnAmount))
	if err != nil {
		return core.Transaction{}, err
	}
	kind := core.NormalizeKind(field(ColumnType))
	if kind == core.KindDebit {
		amount = amount.Abs().Neg()
	}

	return core.Transaction{
		ID:          id,
		Date:        date,
		CustomerID:  field(ColumnCustomerID),
		Amount:      amount,
		Kind:        kind,
		Description: field(ColumnDescription),
	}, nil
}

// readError classifies csv reader failures: malformed CSV is a format
// problem, anything else came from the underlying reader.
func readError(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Errorf("%w: %w", core.ErrFormat, err)
	}
	return fmt.Errorf("%w: %w", core.ErrIO, err)
}
