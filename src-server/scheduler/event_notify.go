// Package scheduler runs the background jobs: for now the Discord reminder
// for events about to start.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"planboard/src-server/calendar"
	"planboard/src-server/model"
	"planboard/src-server/utils"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"
)

const checkInterval = 30 * time.Second

// Notifier delivers reminders for events about to start.
type Notifier interface {
	Notify(ctx context.Context, events []model.Event) error
}

// DiscordWebhook posts one embed per event to a Discord webhook.
type DiscordWebhook struct {
	session *discordgo.Session
	id      string
	token   string
	loc     *time.Location
	latency chan float64
}

// NewDiscordWebhook returns nil when the webhook is not configured.
func NewDiscordWebhook(as *utils.AppState) *DiscordWebhook {
	if as.Config.GetDiscordWebhookID() == "" || as.Config.GetDiscordWebhookToken() == "" {
		return nil
	}
	// webhooks carry their own token, the session needs no bot auth
	session, err := discordgo.New("")
	if err != nil {
		slog.Error("can't create discord session", "error", err)
		return nil
	}
	return &DiscordWebhook{
		session: session,
		id:      as.Config.GetDiscordWebhookID(),
		token:   as.Config.GetDiscordWebhookToken(),
		loc:     as.Config.GetLocation(),
		latency: as.MetricChans.DiscordSendMessage,
	}
}

func (d *DiscordWebhook) Notify(ctx context.Context, events []model.Event) error {
	embeds := make([]*discordgo.MessageEmbed, len(events))
	for i, e := range events {
		embeds[i] = EventEmbed(e, d.loc)
	}
	startTimer := time.Now()
	// discord caps a message at 10 embeds
	for len(embeds) > 0 {
		chunk := embeds[:min(10, len(embeds))]
		embeds = embeds[len(chunk):]
		if _, err := d.session.WebhookExecute(d.id, d.token, false, &discordgo.WebhookParams{
			Content: "Starting soon",
			Embeds:  chunk,
		}, discordgo.WithContext(ctx)); err != nil {
			return fmt.Errorf("(*DiscordWebhook).Notify: %w", err)
		}
	}
	utils.Send(d.latency, utils.Latency(time.Since(startTimer)))
	return nil
}

// EventEmbed renders the reminder card for e.
func EventEmbed(e model.Event, loc *time.Location) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       utils.CleanupString(e.Title),
		Description: e.Description,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Start",
				Value:  fmt.Sprintf("<t:%d:f>", e.Start.Unix()),
				Inline: true,
			},
			{
				Name:   "End",
				Value:  fmt.Sprintf("<t:%d:t>", e.End.Unix()),
				Inline: true,
			},
			{
				Name:   "Category",
				Value:  string(e.Category),
				Inline: true,
			},
		},
		Timestamp: e.Start.In(loc).Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: e.ID,
		},
	}
	if e.Location != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Location",
			Value: e.Location,
		})
	}
	if len(e.Tags) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Tags",
			Value: strings.Join(e.Tags, ", "),
		})
	}
	return embed
}

// Reminders remembers which occurrences were already announced.
type Reminders struct {
	mu   sync.Mutex
	sent map[string]time.Time
}

func NewReminders() *Reminders {
	return &Reminders{sent: make(map[string]time.Time)}
}

// Due returns the occurrences starting in (now, now+within] that were not
// returned before, ordered by start. Completed events are skipped and
// repeating events are expanded for today and tomorrow in now's location.
func (r *Reminders) Due(events []model.Event, now time.Time, within time.Duration) []model.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, start := range r.sent {
		if !start.After(now) {
			delete(r.sent, key)
		}
	}

	today := calendar.StartOfDay(now)
	candidates := slices.Concat(
		calendar.OccurrencesOn(events, today),
		calendar.OccurrencesOn(events, today.AddDate(0, 0, 1)),
	)

	due := make([]model.Event, 0)
	limit := now.Add(within)
	for _, e := range candidates {
		if e.IsCompleted || !e.Start.After(now) || e.Start.After(limit) {
			continue
		}
		key := fmt.Sprintf("%s@%d", e.ID, e.Start.Unix())
		if _, ok := r.sent[key]; ok {
			continue
		}
		r.sent[key] = e.Start
		due = append(due, e)
	}
	slices.SortStableFunc(due, func(a, b model.Event) int { return a.Start.Compare(b.Start) })
	return due
}

// EventNotify checks the event store every 30 seconds and hands events
// starting within NOTIFY_BEFORE to notifier, until graceful shutdown. A
// check still waiting on Discord makes the next one skip.
func EventNotify(as *utils.AppState, notifier Notifier) {
	reminders := NewReminders()
	gracefulShutdownCh := as.CreateGracefulShutdownChan()

	logger := cronLogger{}
	c := cron.New(
		cron.WithLocation(as.Config.GetLocation()),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	c.Schedule(cron.Every(checkInterval), cron.FuncJob(func() {
		now := as.Now().In(as.Config.GetLocation())
		due := reminders.Due(as.Events.List(), now, as.Config.GetNotifyBefore())
		if len(due) == 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := notifier.Notify(ctx, due); err != nil {
			slog.Error("can't send event reminders", "count", len(due), "error", err)
			return
		}
		slog.Info("event reminders sent", "count", len(due))
	}))

	c.Start()
	<-gracefulShutdownCh
	<-c.Stop().Done()
}

// cronLogger routes cron's own logging through slog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	slog.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
