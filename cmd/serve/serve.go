package serve

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/cantonwatch/cantonbot/bot"
	"github.com/cantonwatch/cantonbot/cmd/env"
	"github.com/cantonwatch/cantonbot/config"
	"github.com/cantonwatch/cantonbot/explorer"
	"github.com/cantonwatch/cantonbot/price"
	"github.com/cantonwatch/cantonbot/schedule"
	"github.com/cantonwatch/cantonbot/server"
	serverconfig "github.com/cantonwatch/cantonbot/server/config"
	"github.com/cantonwatch/cantonbot/verify"
)

// serveCfg wraps the serve configuration
type serveCfg struct {
	botConfig    *config.Config
	serverConfig *serverconfig.Config

	configPath       string
	serverConfigPath string
}

// NewServeCmd creates the serve subcommand
func NewServeCmd() *ffcli.Command {
	cfg := &serveCfg{
		botConfig:    config.DefaultConfig(),
		serverConfig: serverconfig.DefaultConfig(),
	}

	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfg.registerFlags(fs)

	cmd := &ffcli.Command{
		Name:       "serve",
		ShortUsage: "serve <subcommand> [flags]",
		LongHelp:   "Serves the cantonbot front-end",
		FlagSet:    fs,
		Exec: func(_ context.Context, _ []string) error {
			return flag.ErrHelp
		},
		Options: []ff.Option{
			// Allow using ENV variables
			ff.WithEnvVars(),
			ff.WithEnvVarPrefix(env.Prefix),
		},
	}

	cmd.Subcommands = []*ffcli.Command{
		newServeFileCmd(cfg),
		newServeSQLCmd(cfg),
	}

	return cmd
}

func (c *serveCfg) registerFlags(fs *flag.FlagSet) {
	fs.StringVar(
		&c.serverConfig.ListenAddress,
		"listen",
		serverconfig.DefaultListenAddress,
		"the IP:PORT URL for the status server",
	)

	fs.StringVar(
		&c.configPath,
		"config",
		"",
		"the path to the bot TOML configuration, if any",
	)

	fs.StringVar(
		&c.serverConfigPath,
		"server-config",
		"",
		"the path to the status server TOML configuration, if any",
	)

	fs.StringVar(
		&c.botConfig.ChannelID,
		"channel",
		"",
		"the channel ID or @username for periodic price broadcasts, if any",
	)
}

// readConfigs loads the TOML configurations, if any were given
func (c *serveCfg) readConfigs() error {
	if c.configPath != "" {
		botCfg, err := config.Read(c.configPath)
		if err != nil {
			return fmt.Errorf("unable to read bot config, %w", err)
		}

		c.botConfig = botCfg
	}

	if c.serverConfigPath != "" {
		serverCfg, err := serverconfig.Read(c.serverConfigPath)
		if err != nil {
			return fmt.Errorf("unable to read server config, %w", err)
		}

		c.serverConfig = serverCfg
	}

	return nil
}

// runBot wires up and runs the bot, the broadcast scheduler and the
// status server against the given verification store [BLOCKING]
func (c *serveCfg) runBot(
	ctx context.Context,
	store verify.Store,
	logger *slog.Logger,
) error {
	// Grab the bot token
	token := os.Getenv(env.Prefix + env.TokenSuffix)
	if token == "" {
		return fmt.Errorf("missing %s", env.Prefix+env.TokenSuffix)
	}

	c.botConfig.Token = token

	// Validate the bot configuration
	if err := config.ValidateConfig(c.botConfig); err != nil {
		return fmt.Errorf("invalid bot configuration, %w", err)
	}

	// Create the Telegram API client
	api, err := tgbotapi.NewBotAPI(c.botConfig.Token)
	if err != nil {
		return fmt.Errorf("unable to create Telegram API client: %w", err)
	}

	// Create the explorer API client
	explorerClient := explorer.NewClient(
		c.botConfig.APIBaseURL,
		requestTimeout,
	)

	// Create the price fetcher
	fetcher := price.NewFetcher(
		defaultSources(),
		price.WithLogger(logger),
	)

	// Set up the metrics registry
	registry := prometheus.NewRegistry()

	// Create the bot instance
	b := bot.New(
		api,
		explorerClient,
		fetcher,
		store,
		c.botConfig,
		bot.WithLogger(logger),
		bot.WithMetrics(bot.NewMetrics(registry)),
	)

	// Create the status server instance
	s, err := server.New(
		fetcher,
		registry,
		server.WithLogger(logger),
		server.WithConfig(c.serverConfig),
	)
	if err != nil {
		return fmt.Errorf("unable to create server, %w", err)
	}

	group, gCtx := errgroup.WithContext(ctx)

	// Start the update loop
	group.Go(func() error {
		return b.Run(gCtx)
	})

	// Start the HTTP server
	group.Go(func() error {
		return s.Serve(gCtx)
	})

	// Start the broadcast scheduler, if a channel is set
	if c.botConfig.ChannelID != "" {
		sched := schedule.New(schedule.WithLogger(logger))

		if err = sched.Register(b.BroadcastJob()); err != nil {
			return fmt.Errorf("unable to register broadcast job: %w", err)
		}

		group.Go(func() error {
			return sched.Start(gCtx)
		})
	}

	return group.Wait()
}
