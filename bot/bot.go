package bot

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"automeme/command"
	"automeme/config"
	"automeme/generator"
	"automeme/server"
	"automeme/store"
	"automeme/utils"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Bot encapsulates the bot's state.
type Bot struct {
	Session   *discordgo.Session
	Store     *store.ChannelStore
	Generator generator.Generator
	StartTime time.Time
}

// NewBot creates and initializes a new Bot instance.
func NewBot() (*Bot, error) {
	config.LoadConfig()

	token := viper.GetString("BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("no bot token provided")
	}
	memeToken := viper.GetString("MEME_TOKEN")
	if memeToken == "" {
		return nil, fmt.Errorf("no meme API token provided")
	}

	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentMessageContent

	return &Bot{
		Session:   dg,
		Store:     store.NewChannelStore(),
		Generator: generator.NewClient(memeToken, nil),
		StartTime: time.Now(),
	}, nil
}

// Start opens the bot's session, registers handlers and slash commands, and
// brings up the scheduler and the health server.
func (b *Bot) Start(registerHandlers func(*Bot)) error {
	registerHandlers(b)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}
	utils.InitLogger(b.Session)

	// Prefer the id resolved at login; fall back to a configured CLIENT_ID.
	appID := b.Session.State.User.ID
	if appID == "" {
		appID = viper.GetString("CLIENT_ID")
	}
	for _, def := range command.GetCommandDefinitions() {
		if _, err := b.Session.ApplicationCommandCreate(appID, "", def); err != nil {
			// Not fatal: previously registered commands keep working.
			log.WithError(err).Warnf("Cannot create '%v' command", def.Name)
		}
	}

	startScheduler(b)

	srv := server.New(b.Session, b.Store, b.StartTime)
	go func() {
		port := viper.GetInt("PORT")
		log.Infof("Health server listening on :%d", port)
		if err := srv.Run(port); err != nil {
			log.WithError(err).Error("Health server stopped")
		}
	}()

	log.Info("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully closes the bot's session.
func (b *Bot) Stop() {
	stopScheduler()
	if b.Session != nil {
		b.Session.Close()
	}
	log.Info("Bot stopped gracefully.")
}

// Run is the main entry point for the bot application.
func Run(registerHandlers func(*Bot)) {
	bot, err := NewBot()
	if err != nil {
		log.Fatalf("Error initializing bot: %v", err)
	}

	if err := bot.Start(registerHandlers); err != nil {
		log.Fatalf("Error starting bot: %v", err)
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	bot.Stop()
}
