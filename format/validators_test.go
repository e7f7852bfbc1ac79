package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cantonwatch/cantonbot/explorer"
)

func TestValidators_Format(t *testing.T) {
	t.Parallel()

	t.Run("error result", func(t *testing.T) {
		t.Parallel()

		out := Validators(&explorer.Result{Err: "timeout"})

		assert.Equal(t, "❌ Error getting validators: timeout", out)
	})

	t.Run("activity buckets", func(t *testing.T) {
		t.Parallel()

		out := Validators(&explorer.Result{
			Value: map[string]any{
				"count": 4.0,
				"validators": []any{
					map[string]any{"miss_round": 0.0},
					map[string]any{"miss_round": 5.0},
					map[string]any{"miss_round": 10.0},
					map[string]any{}, // no miss data, worst case
				},
			},
		})

		assert.Contains(t, out, "<b>Total Validators:</b> 4")
		assert.Contains(t, out, "✅ <b>Active:</b> 1")
		assert.Contains(t, out, "🔄 <b>Recent:</b> 1")
		assert.Contains(t, out, "⏸️ <b>Inactive:</b> 2")
	})

	t.Run("top level list", func(t *testing.T) {
		t.Parallel()

		out := Validators(&explorer.Result{
			Value: []any{
				map[string]any{"miss_round": 0.0},
				map[string]any{"miss_round": 0.0},
			},
		})

		assert.Contains(t, out, "<b>Total Validators:</b> 2")
		assert.Contains(t, out, "✅ <b>Active:</b> 2")
	})

	t.Run("count absent falls back to list length", func(t *testing.T) {
		t.Parallel()

		out := Validators(&explorer.Result{
			Value: map[string]any{
				"data": []any{
					map[string]any{"miss_round": 1.0},
					map[string]any{"miss_round": 2.0},
					map[string]any{"miss_round": 3.0},
				},
			},
		})

		assert.Contains(t, out, "<b>Total Validators:</b> 3")
	})

	t.Run("empty roster", func(t *testing.T) {
		t.Parallel()

		out := Validators(&explorer.Result{
			Value: map[string]any{"count": 100.0},
		})

		assert.Contains(t, out, "<b>Total Validators:</b> 100")
		assert.Contains(t, out, "<b>Active:</b> N/A")
		assert.Contains(t, out, "<b>Recent:</b> N/A")
		assert.Contains(t, out, "<b>Inactive:</b> N/A")
	})

	t.Run("non numeric miss data counts as active", func(t *testing.T) {
		t.Parallel()

		out := Validators(&explorer.Result{
			Value: []any{
				map[string]any{"miss_round": "n/a"},
			},
		})

		assert.Contains(t, out, "✅ <b>Active:</b> 1")
	})
}
