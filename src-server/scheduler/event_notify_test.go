package scheduler_test

import (
	"testing"
	"time"

	"planboard/src-server/model"
	"planboard/src-server/scheduler"
)

func event(id string, start time.Time, d time.Duration) model.Event {
	return model.Event{ID: id, EventInput: model.EventInput{
		Title:    id,
		Start:    start,
		End:      start.Add(d),
		Category: model.EventCategoryProductivity,
	}}
}

func TestRemindersDue(t *testing.T) {
	now := time.Date(2024, time.January, 1, 8, 50, 0, 0, time.UTC)
	soon := event("standup", now.Add(10*time.Minute), 15*time.Minute)
	later := event("lunch", now.Add(3*time.Hour), time.Hour)
	past := event("breakfast", now.Add(-time.Hour), 30*time.Minute)
	done := event("done", now.Add(5*time.Minute), time.Hour)
	done.IsCompleted = true
	events := []model.Event{later, soon, past, done}

	r := scheduler.NewReminders()

	due := r.Due(events, now, 15*time.Minute)
	if len(due) != 1 || due[0].ID != "standup" {
		t.Fatalf("expected only the standup, got %+v", due)
	}
	if again := r.Due(events, now.Add(time.Minute), 15*time.Minute); len(again) != 0 {
		t.Errorf("an occurrence is announced once, got %+v", again)
	}

	func() {
		// Monday 2024-01-01; gym repeats on tuesdays
		gym := event("gym", time.Date(2024, time.January, 1, 18, 0, 0, 0, time.UTC), time.Hour)
		gym.RepeatDays = []model.RepeatDay{model.RepeatMonday, model.RepeatTuesday}

		tuesday := time.Date(2024, time.January, 2, 17, 50, 0, 0, time.UTC)
		due := scheduler.NewReminders().Due([]model.Event{gym}, tuesday, 15*time.Minute)
		if len(due) != 1 || !due[0].Start.Equal(time.Date(2024, time.January, 2, 18, 0, 0, 0, time.UTC)) {
			t.Errorf("expected tuesday's gym occurrence, got %+v", due)
		}
	}()

	func() {
		lateNight := time.Date(2024, time.January, 1, 23, 55, 0, 0, time.UTC)
		midnight := event("midnight", time.Date(2024, time.January, 2, 0, 5, 0, 0, time.UTC), time.Hour)
		due := scheduler.NewReminders().Due([]model.Event{midnight}, lateNight, 15*time.Minute)
		if len(due) != 1 {
			t.Errorf("events just after midnight should be found, got %+v", due)
		}
	}()
}

func TestEventEmbed(t *testing.T) {
	e := event("team sync", time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC), 30*time.Minute)
	e.Location = "Room 4"
	e.Tags = []string{"work", "weekly"}

	embed := scheduler.EventEmbed(e, time.UTC)
	if embed.Title != "Team Sync" {
		t.Errorf("expected a cleaned up title, got %q", embed.Title)
	}
	if embed.Footer == nil || embed.Footer.Text != "team sync" {
		t.Error("the footer should carry the event id")
	}
	if len(embed.Fields) != 5 {
		t.Errorf("expected start, end, category, location and tags fields, got %d", len(embed.Fields))
	}
	if embed.Fields[0].Value != "<t:1704099600:f>" {
		t.Errorf("unexpected start field %q", embed.Fields[0].Value)
	}
}
