package ledger

import "strings"

// Updatable field names.
const (
	FieldDate        = "date"
	FieldCustomerID  = "customerId"
	FieldAmount      = "amount"
	FieldType        = "type"
	FieldDescription = "description"
)

// Fields lists the updatable fields in menu order.
var Fields = []string{FieldDate, FieldCustomerID, FieldAmount, FieldType, FieldDescription}

// normalizeField maps accepted spellings (customerId, customer_id, ...) to the
// canonical field name; unknown names are returned as "".
func normalizeField(field string) string {
	key := strings.ToLower(strings.TrimSpace(field))
	key = strings.ReplaceAll(key, "_", "")
	for _, f := range Fields {
		if strings.ToLower(f) == key {
			return f
		}
	}
	return ""
}
