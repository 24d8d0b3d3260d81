package handlers

import (
	"fmt"

	"automeme/bot"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// HandleMemeChannel handles the logic for the /memechannel command.
func HandleMemeChannel(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	var channelID string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "channel" {
			channelID = opt.ChannelValue(nil).ID
		}
	}
	if channelID == "" {
		s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: "Error: a channel is required.",
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		return
	}

	added := b.Store.AddChannel(i.GuildID, channelID)
	log.WithFields(log.Fields{
		"guild":   i.GuildID,
		"channel": channelID,
		"added":   added,
	}).Info("Meme channel registration")

	content := fmt.Sprintf("✅ <#%s> will now receive daily auto-memes!", channelID)
	if !added {
		content = fmt.Sprintf("<#%s> is already registered for daily auto-memes.", channelID)
	}
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
}
