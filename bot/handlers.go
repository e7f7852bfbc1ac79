package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/cantonwatch/cantonbot/format"
	"github.com/cantonwatch/cantonbot/price"
)

// send delivers a single prepared message, counting failures
func (b *Bot) send(msg tgbotapi.Chattable) {
	if _, err := b.api.Send(msg); err != nil {
		b.metrics.sendFailures.Inc()

		b.logger.Warn(
			"unable to send message",
			"err", err,
		)
	}
}

// htmlMessage prepares an HTML-formatted message
func (b *Bot) htmlMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML

	return msg
}

// sendStatus sends the transient "working on it" note along with the
// main keyboard
func (b *Bot) sendStatus(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = b.mainKeyboard()

	b.send(msg)
}

// sendLong delivers a message, splitting it into parts when it exceeds
// the delivery-size budget
func (b *Bot) sendLong(chatID int64, text string) {
	parts := SplitMessage(text, MaxMessageLength)

	for i, part := range parts {
		if len(parts) > 1 {
			part = fmt.Sprintf("<i>(Part %d of %d)</i>\n\n%s", i+1, len(parts), part)
		}

		b.send(b.htmlMessage(chatID, part))
	}
}

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	verified, err := b.store.IsVerified(ctx, msg.From.ID)
	if err != nil {
		b.logger.Error(
			"unable to check verification",
			"user_id", msg.From.ID,
			"err", err,
		)
	}

	if !verified {
		gate := b.htmlMessage(msg.Chat.ID, b.gateMessage())
		gate.ReplyMarkup = b.subscriptionKeyboard()

		b.send(gate)

		return
	}

	b.sendWelcome(msg.Chat.ID)
}

// sendWelcome delivers the welcome message with the explorer button,
// followed by the persistent main keyboard
func (b *Bot) sendWelcome(chatID int64) {
	welcome := b.htmlMessage(chatID, b.welcomeMessage())
	welcome.ReplyMarkup = b.explorerKeyboard()
	welcome.DisableWebPagePreview = true

	b.send(welcome)

	// The reply keyboard cannot ride on an inline-keyboard message,
	// so it is attached to a separate one
	keyboard := tgbotapi.NewMessage(chatID, " ")
	keyboard.ReplyMarkup = b.mainKeyboard()

	b.send(keyboard)
}

// handleCallback handles the subscription-check button press
func (b *Bot) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	if query.Data != checkSubscriptionAction {
		return
	}

	if !b.isSubscribed(query.From.ID) {
		alert := tgbotapi.NewCallbackWithAlert(
			query.ID,
			"❌ You are not subscribed to the channel. Please subscribe and try again.",
		)

		if _, err := b.api.Request(alert); err != nil {
			b.logger.Warn(
				"unable to answer callback",
				"err", err,
			)
		}

		return
	}

	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		b.logger.Warn(
			"unable to answer callback",
			"err", err,
		)
	}

	if err := b.store.SetVerified(ctx, query.From.ID, true); err != nil {
		b.logger.Error(
			"unable to save verification",
			"user_id", query.From.ID,
			"err", err,
		)
	}

	edit := tgbotapi.NewEditMessageTextAndMarkup(
		query.Message.Chat.ID,
		query.Message.MessageID,
		"✅ <b>Access granted</b>\n\n"+b.welcomeMessage(),
		b.explorerKeyboard(),
	)
	edit.ParseMode = tgbotapi.ModeHTML
	edit.DisableWebPagePreview = true

	if _, err := b.api.Send(edit); err != nil {
		b.logger.Warn(
			"unable to edit gate message",
			"err", err,
		)
	}

	keyboard := tgbotapi.NewMessage(query.Message.Chat.ID, " ")
	keyboard.ReplyMarkup = b.mainKeyboard()

	b.send(keyboard)
}

// isSubscribed checks the user's membership in the required channel.
// When the membership cannot be checked (the bot may not be in the
// channel), the user is given the benefit of the doubt
func (b *Bot) isSubscribed(userID int64) bool {
	member, err := b.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			SuperGroupUsername: b.config.RequiredChannel,
			UserID:             userID,
		},
	})
	if err != nil {
		b.logger.Warn(
			"unable to check channel membership",
			"channel", b.config.RequiredChannel,
			"err", err,
		)

		return true
	}

	return !member.HasLeft() && !member.WasKicked()
}

func (b *Bot) handleHelp(msg *tgbotapi.Message) {
	help := b.htmlMessage(msg.Chat.ID, b.helpMessage())
	help.ReplyMarkup = b.mainKeyboard()

	b.send(help)
}

func (b *Bot) handleExplorer(msg *tgbotapi.Message) {
	reply := b.htmlMessage(msg.Chat.ID, "🌐 <b>Canton Explorer</b>")
	reply.ReplyMarkup = b.explorerKeyboard()

	b.send(reply)
}

func (b *Bot) handleStats(ctx context.Context, msg *tgbotapi.Message) {
	b.sendStatus(msg.Chat.ID, "⏳ Getting network statistics...")

	res := b.explorer.Stats(ctx)

	b.sendLong(msg.Chat.ID, format.Stats(res))
}

func (b *Bot) handlePrice(ctx context.Context, msg *tgbotapi.Message) {
	b.sendStatus(msg.Chat.ID, "⏳ Getting CC/USDT price...")

	quote := b.prices.Fetch(ctx)

	reply := b.htmlMessage(msg.Chat.ID, price.Message(quote))
	reply.ReplyMarkup = b.mainKeyboard()

	b.send(reply)
}

func (b *Bot) handleValidators(ctx context.Context, msg *tgbotapi.Message) {
	b.sendStatus(msg.Chat.ID, "⏳ Getting validators statistics...")

	res := b.explorer.Validators(ctx)

	message := format.Validators(res)
	message += fmt.Sprintf("\n\n🔗 <a href=\"%s\">View All Validators in Explorer</a>", b.config.ExplorerURL)

	reply := b.htmlMessage(msg.Chat.ID, message)
	reply.ReplyMarkup = b.mainKeyboard()

	b.send(reply)
}

func (b *Bot) handleRounds(ctx context.Context, msg *tgbotapi.Message) {
	b.sendStatus(msg.Chat.ID, "⏳ Getting rounds...")

	res := b.explorer.Rounds(ctx, 1, b.config.ListLimit)

	message := format.Rounds(res, b.config.ListLimit)
	message += fmt.Sprintf("\n🔗 <a href=\"%s\">View All Rounds in Explorer</a>", b.config.ExplorerURL)

	reply := b.htmlMessage(msg.Chat.ID, message)
	reply.ReplyMarkup = b.mainKeyboard()

	b.send(reply)
}

func (b *Bot) handleGovernance(ctx context.Context, msg *tgbotapi.Message) {
	b.sendStatus(msg.Chat.ID, "⏳ Getting governance...")

	res := b.explorer.Governance(ctx, 1, b.config.ListLimit)

	message := format.Governance(res, b.config.ListLimit)
	message += fmt.Sprintf("\n🔗 <a href=\"%s\">View All Governance in Explorer</a>", b.config.ExplorerURL)

	reply := b.htmlMessage(msg.Chat.ID, message)
	reply.ReplyMarkup = b.mainKeyboard()

	b.send(reply)
}

func (b *Bot) handleGovernanceID(ctx context.Context, msg *tgbotapi.Message) {
	args := commandArgs(msg)
	if len(args) == 0 {
		b.sendStatus(msg.Chat.ID, "❌ Please specify governance ID. Example: /governance_id 123")

		return
	}

	b.sendStatus(msg.Chat.ID, fmt.Sprintf("⏳ Getting governance details %s...", args[0]))

	res := b.explorer.GovernanceDetails(ctx, args[0])

	b.sendLong(msg.Chat.ID, format.GovernanceDetails(res))
}

func (b *Bot) handleParty(ctx context.Context, msg *tgbotapi.Message) {
	args := commandArgs(msg)
	if len(args) == 0 {
		b.sendStatus(msg.Chat.ID, "❌ Please specify party ID. Example: /party party123")

		return
	}

	b.sendStatus(msg.Chat.ID, fmt.Sprintf("⏳ Getting party information %s...", args[0]))

	res := b.explorer.PartyInfo(ctx, args[0])

	b.sendLong(msg.Chat.ID, format.PartyInfo(res))
}

func (b *Bot) handlePartyTx(ctx context.Context, msg *tgbotapi.Message) {
	args := commandArgs(msg)
	if len(args) == 0 {
		b.sendStatus(msg.Chat.ID, "❌ Please specify party ID. Example: /party_tx party123")

		return
	}

	limit := listLimitArg(args, b.config.PartyListLimit)

	b.sendStatus(msg.Chat.ID, fmt.Sprintf("⏳ Getting party transactions %s...", args[0]))

	res := b.explorer.PartyTransactions(ctx, args[0], limit)

	b.sendLong(msg.Chat.ID, format.PartyTransactions(res, limit, b.config.ExplorerURL))
}

func (b *Bot) handlePartyTransfers(ctx context.Context, msg *tgbotapi.Message) {
	args := commandArgs(msg)
	if len(args) == 0 {
		b.sendStatus(msg.Chat.ID, "❌ Please specify party ID. Example: /party_transfers party123")

		return
	}

	limit := listLimitArg(args, b.config.PartyListLimit)

	b.sendStatus(msg.Chat.ID, fmt.Sprintf("⏳ Getting party transfers %s...", args[0]))

	res := b.explorer.PartyTransfers(ctx, args[0], limit)

	b.sendLong(msg.Chat.ID, format.PartyTransfers(res, limit, b.config.ExplorerURL))
}

// commandArgs splits a command's argument tail on whitespace
func commandArgs(msg *tgbotapi.Message) []string {
	return strings.Fields(msg.CommandArguments())
}

// listLimitArg parses the optional numeric limit argument
func listLimitArg(args []string, fallback int) int {
	if len(args) < 2 {
		return fallback
	}

	limit, err := strconv.Atoi(args[1])
	if err != nil || limit <= 0 {
		return fallback
	}

	return limit
}
