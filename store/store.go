package store

import (
	"sync"
)

// ChannelStore holds the guild -> meme channel mapping. State lives only in
// memory and is rebuilt from scratch on every restart; there is deliberately
// no removal or persistence.
type ChannelStore struct {
	mu       sync.RWMutex
	channels map[string][]string
	guilds   []string // guild IDs in insertion order
}

// GuildChannels is one guild's configured channels, in insertion order.
type GuildChannels struct {
	GuildID  string
	Channels []string
}

// NewChannelStore creates an empty store.
func NewChannelStore() *ChannelStore {
	return &ChannelStore{
		channels: make(map[string][]string),
	}
}

// AddChannel registers a channel for a guild. It is idempotent: adding a
// channel that is already registered is a no-op and returns false. Insertion
// order is preserved for both guilds and channels within a guild.
func (cs *ChannelStore) AddChannel(guildID, channelID string) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	existing, ok := cs.channels[guildID]
	if !ok {
		cs.guilds = append(cs.guilds, guildID)
	}
	for _, id := range existing {
		if id == channelID {
			return false
		}
	}
	cs.channels[guildID] = append(existing, channelID)
	return true
}

// Channels returns the channels registered for a guild, in insertion order.
// An unconfigured guild yields an empty slice.
func (cs *ChannelStore) Channels(guildID string) []string {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	out := make([]string, len(cs.channels[guildID]))
	copy(out, cs.channels[guildID])
	return out
}

// GuildCount returns the number of configured guilds.
func (cs *ChannelStore) GuildCount() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.guilds)
}

// ChannelCount returns the total number of registered channels across all
// guilds.
func (cs *ChannelStore) ChannelCount() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	total := 0
	for _, chs := range cs.channels {
		total += len(chs)
	}
	return total
}

// Snapshot returns every configured guild with its channels, guilds in
// insertion order. The scheduler iterates over this so that cycle order is
// deterministic.
func (cs *ChannelStore) Snapshot() []GuildChannels {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	out := make([]GuildChannels, 0, len(cs.guilds))
	for _, guildID := range cs.guilds {
		chs := make([]string, len(cs.channels[guildID]))
		copy(chs, cs.channels[guildID])
		out = append(out, GuildChannels{GuildID: guildID, Channels: chs})
	}
	return out
}
