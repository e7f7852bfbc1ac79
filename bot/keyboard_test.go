package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cantonwatch/cantonbot/config"
)

func TestBot_Keyboards(t *testing.T) {
	t.Parallel()

	b := &Bot{config: config.DefaultConfig()}

	t.Run("main keyboard", func(t *testing.T) {
		t.Parallel()

		keyboard := b.mainKeyboard()

		require.Len(t, keyboard.Keyboard, 4)

		var labels []string

		for _, row := range keyboard.Keyboard {
			for _, button := range row {
				labels = append(labels, button.Text)
			}
		}

		assert.Equal(
			t,
			[]string{
				"📊 Stats",
				"💰 Price",
				"🔐 Validators",
				"🔄 Rounds",
				"🏛️ Governance",
				"ℹ️ Help",
				"🌐 Explorer",
			},
			labels,
		)
	})

	t.Run("subscription keyboard", func(t *testing.T) {
		t.Parallel()

		keyboard := b.subscriptionKeyboard()

		require.Len(t, keyboard.InlineKeyboard, 3)

		channelButton := keyboard.InlineKeyboard[0][0]

		require.NotNil(t, channelButton.URL)
		assert.Equal(t, "https://t.me/remindnation", *channelButton.URL)

		xButton := keyboard.InlineKeyboard[1][0]

		require.NotNil(t, xButton.URL)
		assert.Equal(t, b.config.XLink, *xButton.URL)

		checkButton := keyboard.InlineKeyboard[2][0]

		require.NotNil(t, checkButton.CallbackData)
		assert.Equal(t, checkSubscriptionAction, *checkButton.CallbackData)
	})

	t.Run("explorer keyboard", func(t *testing.T) {
		t.Parallel()

		keyboard := b.explorerKeyboard()

		require.Len(t, keyboard.InlineKeyboard, 1)
		require.Len(t, keyboard.InlineKeyboard[0], 1)

		button := keyboard.InlineKeyboard[0][0]

		assert.Equal(t, "🌐 Explorer", button.Text)

		require.NotNil(t, button.URL)
		assert.Equal(t, b.config.MiniAppURL, *button.URL)
	})
}
