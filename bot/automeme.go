package bot

import (
	"context"
	"fmt"

	"automeme/generator"
	"automeme/selector"
	"automeme/store"
	"automeme/utils"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// promptContentLimit caps how much of the source message ends up in the
// generation prompt.
const promptContentLimit = 50

// Messenger is the slice of the Discord session the auto-meme cycle needs.
// *discordgo.Session satisfies it.
type Messenger interface {
	ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, options ...discordgo.RequestOption) ([]*discordgo.Message, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// runAutoMemeCycle posts one auto-generated meme into every registered
// channel, guilds and channels in registration order. Each (guild, channel)
// pair is independent: a failure is logged and the cycle moves on.
func runAutoMemeCycle(m Messenger, st *store.ChannelStore, gen generator.Generator) {
	snapshot := st.Snapshot()
	if len(snapshot) == 0 {
		log.Info("No channels registered for auto-memes, skipping cycle.")
		return
	}

	for _, guild := range snapshot {
		for _, channelID := range guild.Channels {
			postAutoMeme(m, gen, guild.GuildID, channelID)
		}
	}
	log.Info("Auto-meme cycle finished.")
}

// postAutoMeme generates and posts a single auto-meme for one channel.
func postAutoMeme(m Messenger, gen generator.Generator, guildID, channelID string) {
	logger := log.WithFields(log.Fields{"guild": guildID, "channel": channelID})

	best, err := selector.FindMostEngaging(m, channelID)
	if err != nil {
		logger.WithError(err).Warn("Could not fetch channel history, skipping")
		return
	}
	if best == nil {
		logger.Info("No candidate message found, skipping")
		return
	}

	prompt := buildPrompt(best)
	assetURL, err := gen.Generate(context.Background(), prompt)
	if err != nil {
		utils.Error("automeme", "generate", fmt.Sprintf("channel %s: %v", channelID, err))
		return
	}

	_, err = m.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: fmt.Sprintf("🎭 Today's meme, inspired by <@%s>:", best.Author.ID),
		Embed: &discordgo.MessageEmbed{
			Image: &discordgo.MessageEmbedImage{URL: assetURL},
		},
	})
	if err != nil {
		logger.WithError(err).Warn("Could not post auto-meme")
		return
	}
	logger.Info("Posted auto-meme")
}

// buildPrompt derives a generation topic from the selected message.
func buildPrompt(msg *discordgo.Message) string {
	content := []rune(msg.Content)
	if len(content) > promptContentLimit {
		content = content[:promptContentLimit]
	}
	return fmt.Sprintf("%s, as said by %s", string(content), msg.Author.Username)
}
