package handlers

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"automeme/bot"
	"automeme/generator"
	"automeme/utils"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// TriggerPhrase is the literal a mention's remaining text must start with,
// case-insensitively, to request a meme.
const TriggerPhrase = "meme me"

const usageHint = "Tell me what to meme! Usage: `@automeme meme me <topic>`"

// Replier is the slice of the Discord session the mention handler needs.
// *discordgo.Session satisfies it.
type Replier interface {
	ChannelMessageSendReply(channelID string, content string, reference *discordgo.MessageReference, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// MessageCreate handles mention-triggered meme requests.
func MessageCreate(b *bot.Bot) func(s *discordgo.Session, m *discordgo.MessageCreate) {
	return func(s *discordgo.Session, m *discordgo.MessageCreate) {
		HandleMention(b.Generator, s, s.State.User.ID, m)
	}
}

// HandleMention reacts to messages that mention the bot and lead with the
// trigger phrase. Messages from any bot (including this one) are ignored to
// avoid feedback loops.
func HandleMention(gen generator.Generator, r Replier, botID string, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if !mentionsUser(m.Mentions, botID) {
		return
	}

	prompt, ok := ExtractPrompt(m.Content, botID)
	if !ok {
		return
	}
	if prompt == "" {
		if _, err := r.ChannelMessageSendReply(m.ChannelID, usageHint, m.Reference()); err != nil {
			log.WithError(err).Warn("Could not send usage hint")
		}
		return
	}

	if _, err := r.ChannelMessageSendReply(m.ChannelID, fmt.Sprintf("🎨 Cooking up a meme about %q...", prompt), m.Reference()); err != nil {
		log.WithError(err).Warn("Could not send acknowledgment")
	}

	assetURL, err := gen.Generate(context.Background(), prompt)
	if err != nil {
		utils.Error("handlers", "mention-generate", err.Error())
		r.ChannelMessageSendReply(m.ChannelID, "😵 Sorry, I couldn't generate that meme. Try again later.", m.Reference())
		return
	}

	_, err = r.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Embed: &discordgo.MessageEmbed{
			Image: &discordgo.MessageEmbedImage{URL: assetURL},
		},
		Reference: m.Reference(),
	})
	if err != nil {
		log.WithError(err).Warn("Could not send generated meme")
	}
}

// ExtractPrompt strips the bot's mention tokens from the message and checks
// for the trigger phrase. The second return value reports whether the phrase
// was present; the first is the remaining prompt text, which may be empty.
func ExtractPrompt(content, botID string) (string, bool) {
	mentionPattern := regexp.MustCompile(`<@!?` + regexp.QuoteMeta(botID) + `>`)
	text := strings.TrimSpace(mentionPattern.ReplaceAllString(content, ""))

	if len(text) < len(TriggerPhrase) || !strings.EqualFold(text[:len(TriggerPhrase)], TriggerPhrase) {
		return "", false
	}
	return strings.TrimSpace(text[len(TriggerPhrase):]), true
}

func mentionsUser(mentions []*discordgo.User, userID string) bool {
	for _, u := range mentions {
		if u.ID == userID {
			return true
		}
	}
	return false
}
