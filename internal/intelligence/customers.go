// Package intelligence indexes what the ledger already knows so the
// interactive adapters can suggest customer ids while typing.
package intelligence

import (
	"strings"

	"git.sr.ht/~jakintosh/ledgerman/internal/core"
)

// Customers indexes the customer ids seen in a ledger.
type Customers struct {
	trie *Trie
}

// NewCustomers builds an index from transactions.
func NewCustomers(transactions []core.Transaction) *Customers {
	c := &Customers{trie: NewTrie()}
	for _, tx := range transactions {
		c.Observe(tx.CustomerID)
	}
	return c
}

// Observe records one more use of a customer id.
func (c *Customers) Observe(customerID string) {
	c.trie.Insert(strings.TrimSpace(customerID))
}

// Find returns known ids starting with prefix, most used first.
func (c *Customers) Find(prefix string) []string {
	return c.trie.Find(strings.TrimSpace(prefix))
}

// Len returns the number of distinct customers.
func (c *Customers) Len() int {
	return c.trie.Len()
}

// Uses returns how many transactions reference customerID.
func (c *Customers) Uses(customerID string) int {
	return c.trie.Count(customerID)
}
