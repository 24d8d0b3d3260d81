package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBotID = "999"

type fakeReplier struct {
	replies []string
	sends   []*discordgo.MessageSend
}

func (f *fakeReplier) ChannelMessageSendReply(_ string, content string, _ *discordgo.MessageReference, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.replies = append(f.replies, content)
	return &discordgo.Message{}, nil
}

func (f *fakeReplier) ChannelMessageSendComplex(_ string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.sends = append(f.sends, data)
	return &discordgo.Message{}, nil
}

type fakeGenerator struct {
	url     string
	err     error
	prompts []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func mentionMsg(content string, authorBot bool, mentionIDs ...string) *discordgo.MessageCreate {
	var mentions []*discordgo.User
	for _, id := range mentionIDs {
		mentions = append(mentions, &discordgo.User{ID: id})
	}
	return &discordgo.MessageCreate{Message: &discordgo.Message{
		ID:        "msg-1",
		ChannelID: "chan-1",
		Content:   content,
		Author:    &discordgo.User{ID: "author-1", Bot: authorBot},
		Mentions:  mentions,
	}}
}

func TestHandleMentionGeneratesMeme(t *testing.T) {
	r := &fakeReplier{}
	gen := &fakeGenerator{url: "https://cdn.example/meme.png"}

	HandleMention(gen, r, testBotID, mentionMsg("<@999> meme me rainy tuesdays", false, testBotID))

	require.Equal(t, []string{"rainy tuesdays"}, gen.prompts)
	require.Len(t, r.replies, 1) // acknowledgment
	assert.Contains(t, r.replies[0], "rainy tuesdays")
	require.Len(t, r.sends, 1)
	assert.Equal(t, "https://cdn.example/meme.png", r.sends[0].Embed.Image.URL)
}

func TestHandleMentionWithoutTriggerPhrase(t *testing.T) {
	r := &fakeReplier{}
	gen := &fakeGenerator{url: "https://cdn.example/meme.png"}

	HandleMention(gen, r, testBotID, mentionMsg("<@999> hello there", false, testBotID))

	assert.Empty(t, gen.prompts)
	assert.Empty(t, r.replies)
	assert.Empty(t, r.sends)
}

func TestHandleMentionEmptyPrompt(t *testing.T) {
	r := &fakeReplier{}
	gen := &fakeGenerator{url: "https://cdn.example/meme.png"}

	HandleMention(gen, r, testBotID, mentionMsg("<@999> meme me", false, testBotID))

	assert.Empty(t, gen.prompts)
	require.Len(t, r.replies, 1)
	assert.Equal(t, usageHint, r.replies[0])
	assert.Empty(t, r.sends)
}

func TestHandleMentionIgnoresBots(t *testing.T) {
	r := &fakeReplier{}
	gen := &fakeGenerator{url: "https://cdn.example/meme.png"}

	HandleMention(gen, r, testBotID, mentionMsg("<@999> meme me loops", true, testBotID))

	assert.Empty(t, gen.prompts)
	assert.Empty(t, r.replies)
}

func TestHandleMentionRequiresMention(t *testing.T) {
	r := &fakeReplier{}
	gen := &fakeGenerator{url: "https://cdn.example/meme.png"}

	// Trigger phrase present but the bot is not actually mentioned.
	HandleMention(gen, r, testBotID, mentionMsg("meme me something", false, "12345"))

	assert.Empty(t, gen.prompts)
	assert.Empty(t, r.replies)
}

func TestHandleMentionGenerationFailure(t *testing.T) {
	r := &fakeReplier{}
	gen := &fakeGenerator{err: errors.New("service down")}

	HandleMention(gen, r, testBotID, mentionMsg("<@999> meme me cats", false, testBotID))

	require.Len(t, r.replies, 2) // acknowledgment + failure notice
	assert.Contains(t, r.replies[1], "couldn't generate")
	assert.Empty(t, r.sends)
}

func TestExtractPrompt(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		prompt    string
		triggered bool
	}{
		{"basic", "<@999> meme me cats", "cats", true},
		{"nickname mention form", "<@!999> meme me cats", "cats", true},
		{"case insensitive", "<@999> MEME ME cats", "cats", true},
		{"empty prompt", "<@999> meme me", "", true},
		{"whitespace-only prompt", "<@999> meme me   ", "", true},
		{"no trigger", "<@999> hello", "", false},
		{"trigger not at start", "<@999> please meme me cats", "", false},
		{"other user mention kept in prompt", "<@999> meme me <@123> crying", "<@123> crying", true},
		{"empty content", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt, triggered := ExtractPrompt(tt.content, testBotID)
			assert.Equal(t, tt.triggered, triggered)
			assert.Equal(t, tt.prompt, prompt)
		})
	}
}
