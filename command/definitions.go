package command

import "github.com/bwmarrin/discordgo"

// MemeChannelCommand defines the structure for the /memechannel command.
type MemeChannelCommand struct{}

// Definition returns the application command definition.
func (c *MemeChannelCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "memechannel",
		Description: "Register a channel for daily auto-memes",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "channel",
				Description: "The channel to post daily memes into",
				Type:        discordgo.ApplicationCommandOptionChannel,
				Required:    true,
			},
		},
	}
}
