package utils

import (
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	ColorInfo  = 0x00ff00 // Green
	ColorWarn  = 0xffff00 // Yellow
	ColorError = 0xff0000 // Red
)

var (
	session   *discordgo.Session
	channelID string
)

// InitLogger wires the logger to a Discord session so that Info/Warn/Error
// can mirror log entries into the configured admin channel. Without a
// configured bot.adminChannelId everything still goes to logrus.
func InitLogger(s *discordgo.Session) {
	session = s
	channelID = viper.GetString("bot.adminChannelId")
	if channelID == "" {
		log.Debug("bot.adminChannelId is not set; admin channel logging disabled")
	}
}

func mirror(level, module, operation, details string) {
	if session == nil || channelID == "" {
		return
	}

	var color int
	switch level {
	case "WARN":
		color = ColorWarn
	case "ERROR":
		color = ColorError
	default:
		color = ColorInfo
	}

	embed := &discordgo.MessageEmbed{
		Title:     "Log Level: " + level,
		Color:     color,
		Timestamp: time.Now().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Module", Value: module, Inline: true},
			{Name: "Operation", Value: operation, Inline: true},
			{Name: "Details", Value: details},
		},
	}

	if _, err := session.ChannelMessageSendEmbed(channelID, embed); err != nil {
		log.WithError(err).Warn("Failed to send log message to admin channel")
	}
}

// Info logs an informational message and mirrors it to the admin channel.
func Info(module, operation, details string) {
	log.WithFields(log.Fields{"module": module, "operation": operation}).Info(details)
	mirror("INFO", module, operation, details)
}

// Warn logs a warning.
func Warn(module, operation, details string) {
	log.WithFields(log.Fields{"module": module, "operation": operation}).Warn(details)
	mirror("WARN", module, operation, details)
}

// Error logs an error.
func Error(module, operation, details string) {
	log.WithFields(log.Fields{"module": module, "operation": operation}).Error(details)
	mirror("ERROR", module, operation, details)
}
