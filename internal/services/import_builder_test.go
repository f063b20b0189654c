package services_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rommsen/BudgetBuddy-sub000/internal/models"
)

func categorizedTx(reference, memo string) *models.InFlightTransaction {
	tx := &models.InFlightTransaction{
		ID: "tx-1",
		Bank: models.BankTransaction{
			Reference: reference,
			BookedAt:  day("2025-01-10"),
			Amount:    decimal.NewFromFloat(-50.00),
			Payee:     "REWE Markt GmbH",
			Memo:      memo,
		},
	}
	tx.SetCategory("cat-g", "Groceries", models.TransactionStatusManuallyCategorized)
	return tx
}

func TestImportBuilder_Build(t *testing.T) {
	testHelper := serviceTestHelper(t)

	t.Run("deterministic import id from the reference", func(t *testing.T) {
		req, err := testHelper.importBuilder.Build(categorizedTx("REF-1", "weekly shopping"), 300, false)
		require.NoError(t, err)

		assert.Equal(t, models.NewImportID("REF-1"), req.ImportID)
		assert.True(t, models.MatchesImportID("REF-1", req.ImportID))
		assert.Equal(t, "cat-g", req.CategoryID)
		assert.Empty(t, req.SubLines)
		assert.Equal(t, "weekly shopping, Ref: REF-1", req.Memo)
	})

	t.Run("force new token yields a random id with the same prefix", func(t *testing.T) {
		first, err := testHelper.importBuilder.Build(categorizedTx("REF-1", ""), 300, true)
		require.NoError(t, err)
		second, err := testHelper.importBuilder.Build(categorizedTx("REF-1", ""), 300, true)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(first.ImportID, models.ImportIDPrefix+models.ImportIDSeparator))
		assert.NotEqual(t, first.ImportID, second.ImportID)
		assert.NotEqual(t, models.NewImportID("REF-1"), first.ImportID)
	})

	t.Run("payee override wins over the bank payee", func(t *testing.T) {
		tx := categorizedTx("REF-1", "")
		tx.PayeeOverride = "REWE"

		req, err := testHelper.importBuilder.Build(tx, 300, false)
		require.NoError(t, err)
		assert.Equal(t, "REWE", req.Payee)
	})

	t.Run("split transaction carries sub-lines and no top-level category", func(t *testing.T) {
		tx := categorizedTx("REF-1", "")
		require.NoError(t, tx.SetSplits([]models.TransactionSplit{
			{CategoryID: "cat-f", CategoryName: "Food", Amount: decimal.NewFromFloat(-30.00)},
			{CategoryID: "cat-h", CategoryName: "Household", Amount: decimal.NewFromFloat(-20.00)},
		}))

		req, err := testHelper.importBuilder.Build(tx, 300, false)
		require.NoError(t, err)

		assert.Empty(t, req.CategoryID)
		require.Len(t, req.SubLines, 2)
		assert.Equal(t, "Food", req.SubLines[0].CategoryName)
		assert.True(t, req.SubLines[1].Amount.Equal(decimal.NewFromFloat(-20.00)))
	})

	t.Run("neither category nor splits is a precondition violation", func(t *testing.T) {
		tx := categorizedTx("REF-1", "")
		tx.SetCategory("", "", models.TransactionStatusUnclassified)

		_, err := testHelper.importBuilder.Build(tx, 300, false)
		assert.Error(t, err)
	})

	t.Run("skipped transactions are rejected", func(t *testing.T) {
		tx := categorizedTx("REF-1", "")
		tx.Skip()

		_, err := testHelper.importBuilder.Build(tx, 300, false)
		assert.Error(t, err)
	})
}

func TestImportBuilder_MemoTruncation(t *testing.T) {
	testHelper := serviceTestHelper(t)

	t.Run("long memo truncates from the front keeping the reference", func(t *testing.T) {
		memo := strings.Repeat("A very long memo text ", 16) // 352 chars
		tx := categorizedTx("REF999", memo)

		req, err := testHelper.importBuilder.Build(tx, 300, false)
		require.NoError(t, err)

		assert.Len(t, []rune(req.Memo), 300)
		assert.True(t, strings.HasPrefix(req.Memo, models.EllipsisMarker))
		assert.True(t, strings.HasSuffix(req.Memo, ", Ref: REF999"))

		got, ok := models.ExtractReference(req.Memo)
		require.True(t, ok)
		assert.Equal(t, "REF999", got)
	})

	t.Run("whitespace runs collapse to single spaces", func(t *testing.T) {
		tx := categorizedTx("REF-1", "order\t\t447   received\n\nok")

		req, err := testHelper.importBuilder.Build(tx, 300, false)
		require.NoError(t, err)
		assert.Equal(t, "order 447 received ok, Ref: REF-1", req.Memo)
	})
}
