package ledger

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"git.sr.ht/~jakintosh/ledgerman/internal/core"
	"github.com/shopspring/decimal"
)

func draft(customer, amount, kind string) core.Draft {
	return core.Draft{Date: "2024-01-15", CustomerID: customer, Amount: amount, Kind: kind, Description: "test"}
}

func mustAdd(t *testing.T, l *Ledger, d core.Draft) core.Transaction {
	t.Helper()
	tx, err := l.Add(d)
	if err != nil {
		t.Fatalf("Add(%+v) err=%v", d, err)
	}
	return tx
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	l := New()
	for i := 1; i <= 3; i++ {
		previous := l.Len()
		tx := mustAdd(t, l, draft("C1", "10", "credit"))
		if tx.ID != previous+1 {
			t.Fatalf("expected id %d, got %d", previous+1, tx.ID)
		}
	}
	if !l.Dirty() {
		t.Fatalf("expected ledger to be dirty after add")
	}
}

func TestAddRejectsInvalidDrafts(t *testing.T) {
	tests := []struct {
		name    string
		draft   core.Draft
		wantErr error
	}{
		{"zero amount", draft("C1", "0", "credit"), core.ErrNotPositive},
		{"negative amount", draft("C1", "-1", "debit"), core.ErrNotPositive},
		{"bad type", draft("C1", "5", "refund"), core.ErrInvalidKind},
		{"bad amount", draft("C1", "abc", "credit"), core.ErrFormat},
	}

	for _, test := range tests {
		l := New()
		mustAdd(t, l, draft("C0", "1", "credit"))
		if _, err := l.Add(test.draft); !errors.Is(err, test.wantErr) {
			t.Errorf("%s: expected %v, got %v", test.name, test.wantErr, err)
		}
		if l.Len() != 1 {
			t.Errorf("%s: expected length 1, got %d", test.name, l.Len())
		}
	}
}

func TestAddStoresEnteredMagnitudeForDebit(t *testing.T) {
	l := New()
	tx := mustAdd(t, l, draft("C1", "40", "Debit"))
	if !tx.Amount.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("expected stored amount 40, got %s", tx.Amount)
	}
	if tx.Kind != core.KindDebit {
		t.Fatalf("expected kind debit, got %q", tx.Kind)
	}
}

func TestAddKeepsSubCentPrecision(t *testing.T) {
	l := New()
	tx := mustAdd(t, l, draft("C1", "12.345", "credit"))
	if !tx.Amount.Equal(decimal.RequireFromString("12.345")) {
		t.Fatalf("expected stored amount 12.345, got %s", tx.Amount)
	}
	tx = mustAdd(t, l, draft("C1", "0.004", "debit"))
	if !tx.Amount.Equal(decimal.RequireFromString("0.004")) {
		t.Fatalf("expected stored amount 0.004, got %s", tx.Amount)
	}

	updated, err := l.Update(1, FieldAmount, "7.125")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.AmountString() != "7.125" {
		t.Fatalf("expected amount 7.125, got %s", updated.AmountString())
	}
}

func TestUpdateOutOfRangeLeavesRecordsUnchanged(t *testing.T) {
	l := New()
	mustAdd(t, l, draft("C1", "10", "credit"))
	mustAdd(t, l, draft("C2", "20", "debit"))
	before := l.Transactions()

	for _, index := range []int{0, -1, 3} {
		if _, err := l.Update(index, "amount", "99"); !errors.Is(err, core.ErrRange) {
			t.Fatalf("index %d: expected ErrRange, got %v", index, err)
		}
	}
	if !reflect.DeepEqual(before, l.Transactions()) {
		t.Fatalf("records changed after out-of-range update")
	}
}

func TestUpdateInvalidValueLeavesRecordUnchanged(t *testing.T) {
	tests := []struct {
		field   string
		value   string
		wantErr error
	}{
		{"amount", "not-a-number", core.ErrFormat},
		{"amount", "0", core.ErrNotPositive},
		{"type", "transfer", core.ErrInvalidKind},
		{"date", "2024/01/01", core.ErrFormat},
		{"payee", "x", core.ErrInvalidField},
	}

	for _, test := range tests {
		l := New()
		original := mustAdd(t, l, draft("C1", "10", "credit"))
		if _, err := l.Update(1, test.field, test.value); !errors.Is(err, test.wantErr) {
			t.Errorf("%s=%q: expected %v, got %v", test.field, test.value, test.wantErr, err)
		}
		got, _ := l.Get(1)
		if !reflect.DeepEqual(got, original) {
			t.Errorf("%s=%q: record changed: %+v", test.field, test.value, got)
		}
	}
}

func TestUpdateOverwritesOnlyTargetField(t *testing.T) {
	l := New()
	original := mustAdd(t, l, draft("C1", "10", "credit"))

	updated, err := l.Update(1, "customer_id", " C9 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.CustomerID != "C9" {
		t.Fatalf("expected customer C9, got %q", updated.CustomerID)
	}
	updated.CustomerID = original.CustomerID
	if !reflect.DeepEqual(updated, original) {
		t.Fatalf("other fields changed: %+v", updated)
	}

	updated, err = l.Update(1, "date", "2025-06-30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.Date.Equal(time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)) || updated.ID != original.ID {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	updated, err = l.Update(1, "type", "DEBIT")
	if err != nil || updated.Kind != core.KindDebit {
		t.Fatalf("expected kind debit, got %+v err=%v", updated, err)
	}
}

func TestDeleteRequiresAffirmativeConfirmation(t *testing.T) {
	l := New()
	mustAdd(t, l, draft("C1", "10", "credit"))
	mustAdd(t, l, draft("C2", "20", "credit"))
	mustAdd(t, l, draft("C3", "30", "credit"))

	for _, answer := range []string{"no", "y", "", "yess"} {
		if _, removed, err := l.Delete(2, answer); err != nil || removed {
			t.Fatalf("answer %q: expected no removal, got removed=%v err=%v", answer, removed, err)
		}
		if l.Len() != 3 {
			t.Fatalf("answer %q: expected length 3, got %d", answer, l.Len())
		}
	}

	tx, removed, err := l.Delete(2, " YES ")
	if err != nil || !removed {
		t.Fatalf("expected removal, got removed=%v err=%v", removed, err)
	}
	if tx.CustomerID != "C2" {
		t.Fatalf("removed wrong record: %+v", tx)
	}
	third, _ := l.Get(2)
	if third.ID != 3 {
		t.Fatalf("expected remaining record to keep id 3, got %d", third.ID)
	}

	if _, _, err := l.Delete(5, "yes"); !errors.Is(err, core.ErrRange) {
		t.Fatalf("expected ErrRange, got %v", err)
	}
}

func TestIDsFollowLengthAfterDeletion(t *testing.T) {
	l := New()
	mustAdd(t, l, draft("C1", "10", "credit"))
	mustAdd(t, l, draft("C2", "10", "credit"))
	if _, _, err := l.Delete(1, "yes"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	tx := mustAdd(t, l, draft("C3", "10", "credit"))
	// ids are derived from the length, so the surviving record's id is reused
	if tx.ID != 2 {
		t.Fatalf("expected id 2, got %d", tx.ID)
	}
}

func TestViewEmptyLedger(t *testing.T) {
	view := New().View()
	if view != EmptyViewMessage+"\n" {
		t.Fatalf("unexpected empty view: %q", view)
	}
	if strings.Contains(view, "---") {
		t.Fatalf("empty view should not contain a table: %q", view)
	}
}

func TestViewRendersTable(t *testing.T) {
	l := New()
	mustAdd(t, l, core.Draft{Date: "2024-01-15", CustomerID: "C1001", Amount: "250", Kind: "credit", Description: "Paycheck deposit"})

	lines := strings.Split(strings.TrimSuffix(l.View(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != strings.Repeat("-", 80) {
		t.Fatalf("expected rule line, got %q", lines[0])
	}
	expectedHeader := "ID    Date         Customer ID         Amount Type       Description"
	if lines[1] != expectedHeader {
		t.Fatalf("header mismatch\nExpected: %q\nActual:   %q", expectedHeader, lines[1])
	}
	expectedRow := "1     2024-01-15   C1001               250.00 credit     Paycheck deposit"
	if lines[3] != expectedRow {
		t.Fatalf("row mismatch\nExpected: %q\nActual:   %q", expectedRow, lines[3])
	}
}

func TestListingNumbersRecords(t *testing.T) {
	l := New()
	mustAdd(t, l, draft("C1", "10", "credit"))
	mustAdd(t, l, draft("C2", "20", "debit"))
	listing := l.Listing()
	if len(listing) != 2 || !strings.HasPrefix(listing[1], "2. ID: 2, Date: 2024-01-15, Customer ID: C2") {
		t.Fatalf("unexpected listing: %q", listing)
	}
}

func TestReplaceClearsDirty(t *testing.T) {
	l := New()
	mustAdd(t, l, draft("C1", "10", "credit"))
	l.Replace(nil)
	if l.Len() != 0 || l.Dirty() {
		t.Fatalf("expected empty clean ledger, got len=%d dirty=%v", l.Len(), l.Dirty())
	}
}

func TestRestoreKeepsDirty(t *testing.T) {
	source := New()
	mustAdd(t, source, draft("C1", "10", "credit"))

	l := New()
	l.Restore(source.Transactions())
	if l.Len() != 1 || !l.Dirty() {
		t.Fatalf("expected restored dirty ledger, got len=%d dirty=%v", l.Len(), l.Dirty())
	}
}
