package bot

import (
	"context"
	"io"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/cantonwatch/cantonbot/config"
	"github.com/cantonwatch/cantonbot/explorer"
	"github.com/cantonwatch/cantonbot/price"
	"github.com/cantonwatch/cantonbot/verify"
)

// updateTimeout is the long-poll timeout for getUpdates, in seconds
const updateTimeout = 30

var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Bot is the Telegram front-end: it consumes updates, routes commands
// and keyboard presses to the explorer / price fetch paths, and
// delivers formatted output back to chat
type Bot struct {
	api      *tgbotapi.BotAPI
	explorer *explorer.Client
	prices   *price.Fetcher
	store    verify.Store
	config   *config.Config
	logger   *slog.Logger
	metrics  *Metrics
}

// New creates a new bot instance
func New(
	api *tgbotapi.BotAPI,
	explorerClient *explorer.Client,
	prices *price.Fetcher,
	store verify.Store,
	cfg *config.Config,
	opts ...Option,
) *Bot {
	b := &Bot{
		api:      api,
		explorer: explorerClient,
		prices:   prices,
		store:    store,
		config:   cfg,
		logger:   noopLogger,
		metrics:  NewMetrics(nil),
	}

	// Apply the options
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Run consumes the bot's update stream until the context is canceled
// [BLOCKING]
func (b *Bot) Run(ctx context.Context) error {
	updateCfg := tgbotapi.NewUpdate(0)
	updateCfg.Timeout = updateTimeout

	updates := b.api.GetUpdatesChan(updateCfg)

	b.logger.Info(
		"bot started",
		"username", b.api.Self.UserName,
	)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("bot shut down")

			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}

			b.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate dispatches a single update. A panic while handling one
// update is contained so the update loop survives
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error(
				"panic while handling update",
				"panic", r,
			)
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.Text != "":
		b.handleMessage(ctx, update.Message)
	}
}

// handleMessage routes a text message, either a slash command or a
// keyboard button press
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if !msg.IsCommand() {
		b.handleKeyboardText(ctx, msg)

		return
	}

	command := msg.Command()
	b.metrics.commandHandled(command)

	switch command {
	case "start":
		b.handleStart(ctx, msg)
	case "help":
		b.handleHelp(msg)
	case "stats":
		b.handleStats(ctx, msg)
	case "price":
		b.handlePrice(ctx, msg)
	case "validators":
		b.handleValidators(ctx, msg)
	case "rounds":
		b.handleRounds(ctx, msg)
	case "governance":
		b.handleGovernance(ctx, msg)
	case "governance_id":
		b.handleGovernanceID(ctx, msg)
	case "party":
		b.handleParty(ctx, msg)
	case "party_tx":
		b.handlePartyTx(ctx, msg)
	case "party_transfers":
		b.handlePartyTransfers(ctx, msg)
	default:
		b.sendUnknown(msg.Chat.ID)
	}
}

// handleKeyboardText routes main-keyboard button presses to their
// command handlers
func (b *Bot) handleKeyboardText(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Text {
	case "📊 Stats":
		b.metrics.commandHandled("stats")
		b.handleStats(ctx, msg)
	case "💰 Price":
		b.metrics.commandHandled("price")
		b.handlePrice(ctx, msg)
	case "🔐 Validators":
		b.metrics.commandHandled("validators")
		b.handleValidators(ctx, msg)
	case "🔄 Rounds":
		b.metrics.commandHandled("rounds")
		b.handleRounds(ctx, msg)
	case "🏛️ Governance":
		b.metrics.commandHandled("governance")
		b.handleGovernance(ctx, msg)
	case "ℹ️ Help":
		b.metrics.commandHandled("help")
		b.handleHelp(msg)
	case "🌐 Explorer":
		b.metrics.commandHandled("explorer")
		b.handleExplorer(msg)
	default:
		b.sendUnknown(msg.Chat.ID)
	}
}

func (b *Bot) sendUnknown(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "❓ Unknown command. Use /help to see available commands.")
	msg.ReplyMarkup = b.mainKeyboard()

	b.send(msg)
}
