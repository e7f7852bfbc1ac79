package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cantonwatch/cantonbot/explorer"
)

func TestTransaction_Details(t *testing.T) {
	t.Parallel()

	t.Run("error result", func(t *testing.T) {
		t.Parallel()

		out := TransactionDetails(&explorer.Result{Err: "not found"})

		assert.Equal(t, "❌ Error: not found", out)
	})

	t.Run("essential fields rendered", func(t *testing.T) {
		t.Parallel()

		out := TransactionDetails(&explorer.Result{
			Value: map[string]any{
				"tx_id":  "tx-abc-123",
				"time":   "2025-12-05 13:01:59",
				"status": "success",
			},
		})

		assert.Contains(t, out, "💸 <b>Transaction Details</b>")
		assert.Contains(t, out, "<b>ID:</b> <code>tx-abc-123</code>")
		assert.Contains(t, out, "<b>Time:</b> 2025-12-05 13:01:59")
		assert.Contains(t, out, "✅ <b>Status:</b> success")
	})

	t.Run("balance fields render currency style", func(t *testing.T) {
		t.Parallel()

		out := TransactionDetails(&explorer.Result{
			Value: map[string]any{
				"id":     "tx-1",
				"amount": 1234.5,
			},
		})

		assert.Contains(t, out, "💰 <b>Amount:</b> 1,234.50 CC")
	})

	t.Run("fee renders currency style", func(t *testing.T) {
		t.Parallel()

		out := TransactionDetails(&explorer.Result{
			Value: map[string]any{
				"id":  "tx-1",
				"fee": 0.05,
			},
		})

		assert.Contains(t, out, "💰 <b>Fee:</b> 0.05 CC")
	})

	t.Run("nested values skipped", func(t *testing.T) {
		t.Parallel()

		out := TransactionDetails(&explorer.Result{
			Value: map[string]any{
				"id":       "tx-1",
				"metadata": map[string]any{"nested": true},
				"events":   []any{1.0, 2.0},
			},
		})

		assert.NotContains(t, out, "Metadata")
		assert.NotContains(t, out, "Events")
	})

	t.Run("failed status glyph", func(t *testing.T) {
		t.Parallel()

		out := TransactionDetails(&explorer.Result{
			Value: map[string]any{"status": "failed"},
		})

		assert.Contains(t, out, "❌ <b>Status:</b> failed")
	})

	t.Run("empty object", func(t *testing.T) {
		t.Parallel()

		out := TransactionDetails(&explorer.Result{
			Value: map[string]any{},
		})

		assert.Contains(t, out, "No additional information available")
	})
}
