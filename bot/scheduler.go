package bot

import (
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var c *cron.Cron

// startScheduler starts the cron job that posts automatic memes.
func startScheduler(b *Bot) {
	log.Info("Initializing scheduler...")
	c = cron.New()

	schedule := viper.GetString("bot.schedule")
	_, err := c.AddFunc(schedule, func() {
		log.Info("Running scheduled auto-meme cycle...")
		runAutoMemeCycle(b.Session, b.Store, b.Generator)
	})
	if err != nil {
		log.Fatalf("Could not set up cron job: %v", err)
	}
	c.Start()
	log.Infof("Auto-meme job scheduled with spec %q.", schedule)
}

// stopScheduler stops the cron jobs.
func stopScheduler() {
	if c != nil {
		c.Stop()
		log.Info("Scheduler stopped.")
	}
}
