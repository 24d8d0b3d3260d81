package selector

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	messages []*discordgo.Message
	err      error
}

func (f *fakeFetcher) ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, _ ...discordgo.RequestOption) ([]*discordgo.Message, error) {
	return f.messages, f.err
}

func msg(id string, bot bool, reactionCounts ...int) *discordgo.Message {
	m := &discordgo.Message{
		ID:     id,
		Author: &discordgo.User{ID: "user-" + id, Username: "user-" + id, Bot: bot},
	}
	for _, count := range reactionCounts {
		m.Reactions = append(m.Reactions, &discordgo.MessageReactions{Count: count})
	}
	return m
}

func TestFindMostEngagingPicksHighestTotal(t *testing.T) {
	f := &fakeFetcher{messages: []*discordgo.Message{
		msg("1", false, 1, 2), // total 3
		msg("2", false),       // total 0
		msg("3", false, 5),    // total 5
		msg("4", false, 2, 3), // total 5, tie: first-seen wins
	}}

	best, err := FindMostEngaging(f, "chan")
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, "3", best.ID)
}

func TestFindMostEngagingSkipsBots(t *testing.T) {
	f := &fakeFetcher{messages: []*discordgo.Message{
		msg("1", true, 9),
		msg("2", false, 2),
	}}

	best, err := FindMostEngaging(f, "chan")
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, "2", best.ID)
}

func TestFindMostEngagingAllBots(t *testing.T) {
	f := &fakeFetcher{messages: []*discordgo.Message{
		msg("1", true, 4),
		msg("2", true),
	}}

	best, err := FindMostEngaging(f, "chan")
	require.NoError(t, err)
	assert.Nil(t, best)
}

func TestFindMostEngagingNoReactionsFallsBackToFirstNonBot(t *testing.T) {
	f := &fakeFetcher{messages: []*discordgo.Message{
		msg("1", true),
		msg("2", false),
		msg("3", false),
	}}

	best, err := FindMostEngaging(f, "chan")
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, "2", best.ID)
}

func TestFindMostEngagingEmptyChannel(t *testing.T) {
	f := &fakeFetcher{}

	best, err := FindMostEngaging(f, "chan")
	require.NoError(t, err)
	assert.Nil(t, best)
}

func TestFindMostEngagingFetchError(t *testing.T) {
	f := &fakeFetcher{err: errors.New("missing access")}

	best, err := FindMostEngaging(f, "chan")
	require.Error(t, err)
	assert.Nil(t, best)
}
