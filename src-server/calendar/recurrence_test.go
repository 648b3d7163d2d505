package calendar_test

import (
	"testing"
	"time"

	"planboard/src-server/calendar"
	"planboard/src-server/model"
)

func TestOccurrencesOn(t *testing.T) {
	// 2024-01-01 is a Monday
	monday := date(2024, time.January, 1)
	standup := event("standup", at(monday, 9, 0), at(monday, 9, 15))
	standup.RepeatDays = []model.RepeatDay{model.RepeatMonday, model.RepeatWednesday}

	func() {
		got := calendar.OccurrencesOn([]model.Event{standup}, monday)
		if len(got) != 1 || !got[0].Start.Equal(standup.Start) {
			t.Errorf("a repeating event shows as itself on its start date, got %+v", got)
		}
	}()

	func() {
		wednesday := date(2024, time.January, 3)
		got := calendar.OccurrencesOn([]model.Event{standup}, wednesday)
		if len(got) != 1 {
			t.Fatalf("expected one occurrence on wednesday, got %d", len(got))
		}
		if got[0].ID != standup.ID {
			t.Errorf("occurrence should keep the event id, got %s", got[0].ID)
		}
		if !got[0].Start.Equal(at(wednesday, 9, 0)) || got[0].Duration() != 15*time.Minute {
			t.Errorf("occurrence should be shifted with the same duration, got %s-%s", got[0].Start, got[0].End)
		}
		if !standup.Start.Equal(at(monday, 9, 0)) {
			t.Errorf("the stored event must not be modified")
		}
	}()

	func() {
		tuesday := date(2024, time.January, 2)
		if got := calendar.OccurrencesOn([]model.Event{standup}, tuesday); len(got) != 0 {
			t.Errorf("no occurrence expected on tuesday, got %+v", got)
		}
	}()

	func() {
		before := date(2023, time.December, 27)
		if got := calendar.OccurrencesOn([]model.Event{standup}, before); len(got) != 0 {
			t.Errorf("no occurrence expected before the first start, got %+v", got)
		}
	}()

	func() {
		oneOff := event("once", at(monday, 12, 0), at(monday, 13, 0))
		later := date(2024, time.January, 8)
		got := calendar.OccurrencesOn([]model.Event{oneOff, standup}, later)
		if len(got) != 2 {
			t.Fatalf("expected the one-off event plus the monday standup, got %d", len(got))
		}
		if placements := calendar.NewLayoutEngine(60, 30).Layout(got, later); len(placements) != 1 || placements[0].Event.ID != "standup" {
			t.Errorf("only the standup should be laid out on the following monday, got %+v", placements)
		}
	}()
}

func TestWeeklyRule(t *testing.T) {
	monday := date(2024, time.January, 1)
	oneOff := event("once", at(monday, 9, 0), at(monday, 10, 0))
	rule, err := calendar.WeeklyRule(oneOff, time.UTC)
	if err != nil || rule != nil {
		t.Errorf("a one-off event has no rule, got %v (%v)", rule, err)
	}

	weekly := oneOff
	weekly.RepeatDays = []model.RepeatDay{model.RepeatFriday}
	rule, err = calendar.WeeklyRule(weekly, time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	got := rule.Between(monday, date(2024, time.January, 20), true)
	if len(got) != 3 {
		t.Errorf("expected 3 fridays, got %v", got)
	}
	for _, occurrence := range got {
		if occurrence.Weekday() != time.Friday {
			t.Errorf("expected a friday, got %s", occurrence)
		}
	}
}
