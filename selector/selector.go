package selector

import (
	"github.com/bwmarrin/discordgo"
)

// historyLimit is the largest page Discord will return for a single
// channel-messages fetch.
const historyLimit = 50

// HistoryFetcher is the slice of the Discord session the selector needs.
// *discordgo.Session satisfies it.
type HistoryFetcher interface {
	ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, options ...discordgo.RequestOption) ([]*discordgo.Message, error)
}

// FindMostEngaging scans the most recent messages in a channel and returns
// the non-bot message with the strictly highest total reaction count, summed
// across reaction types. Ties keep the first message encountered in fetch
// order (newest first, as Discord returns them). A window with no reactions
// at all yields the first non-bot message, since zero still beats the -1
// sentinel; a window with only bot messages yields nil. Fetch errors are
// returned as-is so callers can treat them as "no candidate".
func FindMostEngaging(f HistoryFetcher, channelID string) (*discordgo.Message, error) {
	messages, err := f.ChannelMessages(channelID, historyLimit, "", "", "")
	if err != nil {
		return nil, err
	}

	var best *discordgo.Message
	maxReactions := -1

	for _, msg := range messages {
		if msg.Author == nil || msg.Author.Bot {
			continue
		}

		total := 0
		for _, reaction := range msg.Reactions {
			total += reaction.Count
		}
		if total > maxReactions {
			maxReactions = total
			best = msg
		}
	}

	return best, nil
}
