package domain

import "fmt"

// DocType is the closed classification taxonomy for documents.
type DocType string

const (
	// DocTypeInvoice marks invoices and retail receipts.
	DocTypeInvoice DocType = "Invoice"
	// DocTypeGovTelegram marks Vietnamese official dispatches.
	DocTypeGovTelegram DocType = "Government Telegram"
	// DocTypeNormal is everything else.
	DocTypeNormal DocType = "Normal"
)

// AllDocTypes returns the taxonomy in display order.
func AllDocTypes() []DocType {
	return []DocType{DocTypeInvoice, DocTypeGovTelegram, DocTypeNormal}
}

// ParseDocType validates a raw label against the closed taxonomy.
func ParseDocType(s string) (DocType, error) {
	switch DocType(s) {
	case DocTypeInvoice, DocTypeGovTelegram, DocTypeNormal:
		return DocType(s), nil
	}
	return "", fmt.Errorf("%w: unknown document type %q", ErrInvalidInput, s)
}

// TypeFilter optionally restricts a query to a single document type.
// The zero value matches all types, replacing the "All" sentinel string
// the taxonomy used to be keyed on.
type TypeFilter struct {
	typ DocType
	set bool
}

// FilterType returns a filter matching only the given type.
func FilterType(t DocType) TypeFilter {
	return TypeFilter{typ: t, set: true}
}

// AllTypes returns the no-op filter.
func AllTypes() TypeFilter {
	return TypeFilter{}
}

// Match reports the filtered type and whether a filter is present.
func (f TypeFilter) Match() (DocType, bool) {
	return f.typ, f.set
}

// String renders the filter for logs and CLI output.
func (f TypeFilter) String() string {
	if !f.set {
		return "all"
	}
	return string(f.typ)
}
