package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/cantonwatch/cantonbot/price"
	"github.com/cantonwatch/cantonbot/schedule"
)

var errNoPrice = errors.New("no price available from any source")

// broadcastJob periodically sends the minimal price render to the
// broadcast channel
type broadcastJob struct {
	bot *Bot
}

// BroadcastJob returns the periodic price broadcast as a schedulable
// job
func (b *Bot) BroadcastJob() schedule.Job {
	return &broadcastJob{bot: b}
}

func (j *broadcastJob) Name() string {
	return "price broadcast"
}

func (j *broadcastJob) Interval() time.Duration {
	return j.bot.config.BroadcastInterval()
}

func (j *broadcastJob) Run(ctx context.Context) error {
	quote := j.bot.prices.Fetch(ctx)

	message := price.Simple(quote)
	if message == "" {
		return errNoPrice
	}

	msg := channelMessage(j.bot.config.ChannelID, message)

	if _, err := j.bot.api.Send(msg); err != nil {
		return fmt.Errorf("unable to send broadcast: %w", err)
	}

	j.bot.metrics.broadcastSends.Inc()

	j.bot.logger.Info(
		"price sent to channel",
		"channel", j.bot.config.ChannelID,
		"message", message,
	)

	return nil
}

// channelMessage builds a message for the broadcast channel, which is
// configured as either a numeric chat ID or an @username
func channelMessage(channel, text string) tgbotapi.MessageConfig {
	if chatID, err := strconv.ParseInt(channel, 10, 64); err == nil {
		return tgbotapi.NewMessage(chatID, text)
	}

	return tgbotapi.NewMessageToChannel(channel, text)
}
