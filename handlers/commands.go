package handlers

import (
	"automeme/bot"
	"automeme/utils"

	"github.com/bwmarrin/discordgo"
)

// commandPermissions maps each command to the permission level it requires.
var commandPermissions = map[string]string{
	"memechannel": "admin",
}

// CommandDispatcher is the central handler for all application command
// interactions. It performs permission checks and then dispatches the
// interaction to the appropriate handler.
func CommandDispatcher(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	commandName := i.ApplicationCommandData().Name

	if requiredLevel, ok := commandPermissions[commandName]; ok {
		if !utils.CheckPermission(i, requiredLevel) {
			s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponseChannelMessageWithSource,
				Data: &discordgo.InteractionResponseData{
					Content: "🚫 You need administrator permission to use this command.",
					Flags:   discordgo.MessageFlagsEphemeral,
				},
			})
			return
		}
	}

	switch commandName {
	case "memechannel":
		HandleMemeChannel(b, s, i)
	default:
		s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: "🚫 Unknown command.",
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
	}
}
