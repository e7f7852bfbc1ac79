package check

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/cantonwatch/cantonbot/cmd/env"
)

var errMissingChannel = fmt.Errorf("missing channel, setting it with -channel is required")

// checkCfg wraps the check configuration
type checkCfg struct {
	channel string
}

// NewCheckCmd creates the check subcommand, which probes whether the
// bot can post to the configured broadcast channel
func NewCheckCmd() *ffcli.Command {
	cfg := &checkCfg{}

	fs := flag.NewFlagSet("check", flag.ExitOnError)

	fs.StringVar(
		&cfg.channel,
		"channel",
		"",
		"the channel ID or @username to probe",
	)

	return &ffcli.Command{
		Name:       "check",
		ShortUsage: "check [flags]",
		LongHelp:   "Checks that the bot can see and post to the broadcast channel",
		FlagSet:    fs,
		Exec:       cfg.exec,
		Options: []ff.Option{
			// Allow using ENV variables
			ff.WithEnvVars(),
			ff.WithEnvVarPrefix(env.Prefix),
		},
	}
}

// exec executes the check command
func (c *checkCfg) exec(_ context.Context, _ []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load .env
	if err := godotenv.Load(); err != nil {
		logger.Warn("unable to load .env file")
	}

	// Grab the bot token
	token := os.Getenv(env.Prefix + env.TokenSuffix)
	if token == "" {
		return fmt.Errorf("missing %s", env.Prefix+env.TokenSuffix)
	}

	if c.channel == "" {
		return errMissingChannel
	}

	// Create the Telegram API client
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return fmt.Errorf("unable to create Telegram API client: %w", err)
	}

	logger.Info(
		"authorized",
		"username", api.Self.UserName,
	)

	// Resolve the channel
	chat, err := api.GetChat(chatConfig(c.channel))
	if err != nil {
		logger.Error(
			"unable to resolve channel",
			"channel", c.channel,
			"err", err,
		)

		logger.Info("hint: for public channels, use the @username form")
		logger.Info("hint: for private channels, use the numeric -100... ID")
		logger.Info("hint: the bot must be a member of the channel to see it")

		return err
	}

	logger.Info(
		"channel resolved",
		"title", chat.Title,
		"type", chat.Type,
		"id", chat.ID,
	)

	// Probe posting rights with a test message
	msg := tgbotapi.NewMessage(chat.ID, "✅ Channel check successful")

	if _, err = api.Send(msg); err != nil {
		logger.Error(
			"unable to post to channel",
			"channel", c.channel,
			"err", err,
		)

		logger.Info("hint: add the bot as a channel administrator")
		logger.Info("hint: grant the bot the 'Post Messages' right")

		return err
	}

	logger.Info("test message sent, channel is usable for broadcasts")

	return nil
}

// chatConfig builds a chat lookup for a numeric ID or an @username
func chatConfig(channel string) tgbotapi.ChatInfoConfig {
	if chatID, err := strconv.ParseInt(channel, 10, 64); err == nil {
		return tgbotapi.ChatInfoConfig{
			ChatConfig: tgbotapi.ChatConfig{ChatID: chatID},
		}
	}

	return tgbotapi.ChatInfoConfig{
		ChatConfig: tgbotapi.ChatConfig{SuperGroupUsername: channel},
	}
}
