package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocType(t *testing.T) {
	for _, typ := range AllDocTypes() {
		parsed, err := ParseDocType(string(typ))
		require.NoError(t, err)
		assert.Equal(t, typ, parsed)
	}

	for _, bad := range []string{"", "invoice", "All", "Receipt"} {
		_, err := ParseDocType(bad)
		assert.ErrorIs(t, err, ErrInvalidInput, "input %q", bad)
	}
}

func TestTypeFilter(t *testing.T) {
	all := AllTypes()
	_, set := all.Match()
	assert.False(t, set)
	assert.Equal(t, "all", all.String())

	inv := FilterType(DocTypeInvoice)
	typ, set := inv.Match()
	assert.True(t, set)
	assert.Equal(t, DocTypeInvoice, typ)
	assert.Equal(t, "Invoice", inv.String())

	// The zero value behaves like AllTypes.
	var zero TypeFilter
	_, set = zero.Match()
	assert.False(t, set)
}

func TestDisplayTitle(t *testing.T) {
	doc := Document{ID: "abc123def456", Title: "August invoice"}
	assert.Equal(t, "August invoice", doc.DisplayTitle())

	doc.Title = ""
	assert.Equal(t, "Document abc123def456", doc.DisplayTitle())
}
