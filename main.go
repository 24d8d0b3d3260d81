package main

import (
	"automeme/bot"
	"automeme/handlers"
)

func main() {
	bot.Run(handlers.Register)
}
