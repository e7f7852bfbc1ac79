package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// checkSubscriptionAction is the callback payload of the subscription
// check button
const checkSubscriptionAction = "check_subscription"

// mainKeyboard builds the persistent reply keyboard with the command
// buttons and the explorer shortcut
func (b *Bot) mainKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("📊 Stats"),
			tgbotapi.NewKeyboardButton("💰 Price"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("🔐 Validators"),
			tgbotapi.NewKeyboardButton("🔄 Rounds"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("🏛️ Governance"),
			tgbotapi.NewKeyboardButton("ℹ️ Help"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("🌐 Explorer"),
		),
	)
}

// subscriptionKeyboard builds the inline keyboard of the subscription
// gate: join links plus the verification check button
func (b *Bot) subscriptionKeyboard() tgbotapi.InlineKeyboardMarkup {
	channelURL := "https://t.me/" + strings.TrimPrefix(b.config.RequiredChannel, "@")

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("📢 Subscribe to the channel", channelURL),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🐦 Subscribe to X", b.config.XLink),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Check subscription", checkSubscriptionAction),
		),
	)
}

// explorerKeyboard builds the inline keyboard linking to the explorer
// mini-app
func (b *Bot) explorerKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🌐 Explorer", b.config.MiniAppURL),
		),
	)
}
