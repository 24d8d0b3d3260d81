package utils

import (
	"github.com/bwmarrin/discordgo"
)

// IsAdmin reports whether the member holds the administrator permission in
// the guild the interaction came from. Member permissions on an interaction
// are already resolved by Discord, so no extra role lookups are needed.
func IsAdmin(member *discordgo.Member) bool {
	return member != nil && member.Permissions&discordgo.PermissionAdministrator != 0
}

// CheckPermission checks an interaction against a required permission level.
// Only "admin" is meaningful today; anything else is treated as public.
func CheckPermission(i *discordgo.InteractionCreate, requiredLevel string) bool {
	switch requiredLevel {
	case "admin":
		return IsAdmin(i.Member)
	default:
		return true
	}
}
