package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Quan631/PBL-6/internal/core/domain"
)

func TestListCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "inv001aaaaaa")
	assert.Contains(t, buf.String(), "August invoice")
	assert.Contains(t, buf.String(), "doc001aaaaaa")
}

func TestListCmd_TypeFilter(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"list", "--type", "Invoice"})
	defer func() {
		rootCmd.SetArgs(nil)
		listType = ""
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "inv001aaaaaa")
	assert.NotContains(t, buf.String(), "doc001aaaaaa")
}

func TestListCmd_UnknownType(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"list", "--type", "Receipt"})
	defer func() {
		rootCmd.SetArgs(nil)
		listType = ""
	}()

	err := rootCmd.Execute()
	assert.Error(t, err)
}

func TestParseTypeFlag(t *testing.T) {
	filter, err := parseTypeFlag("")
	require.NoError(t, err)
	_, constrained := filter.Match()
	assert.False(t, constrained)

	filter, err = parseTypeFlag("Government Telegram")
	require.NoError(t, err)
	typ, constrained := filter.Match()
	assert.True(t, constrained)
	assert.Equal(t, domain.DocTypeGovTelegram, typ)
}

func TestShowCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"show", "inv001aaaaaa"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "August invoice")
	assert.Contains(t, buf.String(), "receipt.png")
	assert.Contains(t, buf.String(), "hóa đơn 500000 vnd")
}

func TestShowCmd_NotFound(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"show", "missing"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStatsCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"stats"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Invoice")
	assert.Contains(t, buf.String(), "Normal")
	assert.Contains(t, buf.String(), "Total")
}
