package calendar

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"planboard/src-server/model"
)

var ErrModalClosed = errors.New("no event modal is open")

// EventStore is what the view needs from the event collection.
type EventStore interface {
	List() []model.Event
	Create(ctx context.Context, input model.EventInput) (model.Event, error)
	Update(ctx context.Context, event model.Event) error
	Delete(ctx context.Context, id string) error
	Select(id string) error
	Selected() (model.Event, bool)
}

type ModalMode string

const (
	ModalCreate ModalMode = "create"
	ModalEdit   ModalMode = "edit"
)

type Modal struct {
	Open  bool         `json:"open"`
	Mode  ModalMode    `json:"mode,omitempty"`
	Event *model.Event `json:"event,omitempty"`
}

type Day struct {
	Date       time.Time   `json:"date"`
	IsToday    bool        `json:"isToday"`
	Placements []Placement `json:"placements"`
}

type Grid struct {
	Anchor     time.Time   `json:"anchor"`
	View       ViewMode    `json:"view"`
	Layout     LayoutMode  `json:"layout"`
	Density    DensityMode `json:"density"`
	WeekStart  string      `json:"weekStart"`
	Days       []Day       `json:"days"`
	GridHeight float64     `json:"gridHeight"`
	NowOffset  float64     `json:"nowOffset"`
	Modal      Modal       `json:"modal"`
}

type ViewOptions struct {
	Events    EventStore
	Engine    LayoutEngine
	WeekStart time.Weekday
	Location  *time.Location
	Now       func() time.Time
}

// View is the calendar screen: navigation, the laid-out grid and the
// create/edit modal, routed to the event store. All methods are safe for
// concurrent use and never interleave.
type View struct {
	mu        sync.Mutex
	nav       *NavigationState
	events    EventStore
	engine    LayoutEngine
	weekStart time.Weekday
	now       func() time.Time

	modalOpen bool
	modalMode ModalMode
}

func NewView(opts ViewOptions) *View {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Engine.PixelsPerHour <= 0 || opts.Engine.MinimumHeight <= 0 {
		opts.Engine = NewLayoutEngine(opts.Engine.PixelsPerHour, opts.Engine.MinimumHeight)
	}
	return &View{
		nav:       NewNavigationState(opts.Now, opts.Location),
		events:    opts.Events,
		engine:    opts.Engine,
		weekStart: opts.WeekStart,
		now:       opts.Now,
	}
}

// Grid renders the visible dates with their laid-out events.
func (v *View) Grid() (Grid, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	dates, err := v.nav.VisibleDates(v.weekStart)
	if err != nil {
		return Grid{}, fmt.Errorf("(*View).Grid: %w", err)
	}
	events := v.events.List()
	now := v.now().In(v.nav.Location())

	grid := Grid{
		Anchor:     v.nav.CurrentDate(),
		View:       v.nav.View(),
		Layout:     v.nav.Layout(),
		Density:    v.nav.Density(),
		WeekStart:  v.weekStart.String(),
		Days:       make([]Day, 0, len(dates)),
		GridHeight: v.engine.GridHeight(),
		NowOffset:  v.engine.Offset(now),
		Modal:      v.modal(),
	}
	for _, date := range dates {
		grid.Days = append(grid.Days, Day{
			Date:       date,
			IsToday:    SameDay(date, now),
			Placements: v.engine.Layout(OccurrencesOn(events, date), date),
		})
	}
	return grid, nil
}

// DayPlacements lays out a single date, used by the dashboard.
func (v *View) DayPlacements(date time.Time) []Placement {
	v.mu.Lock()
	defer v.mu.Unlock()
	date = StartOfDay(date.In(v.nav.Location()))
	return v.engine.Layout(OccurrencesOn(v.events.List(), date), date)
}

func (v *View) Today() time.Time {
	return StartOfDay(v.now().In(v.nav.Location()))
}

func (v *View) GoNext() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.nav.GoNext()
}

func (v *View) GoPrevious() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.nav.GoPrevious()
}

func (v *View) GoToday() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.nav.GoToday()
}

func (v *View) SetDate(t time.Time) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.nav.SetDate(t)
}

func (v *View) SetView(view ViewMode) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.nav.SetView(view)
}

func (v *View) SetLayout(layout LayoutMode) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.nav.SetLayout(layout)
}

func (v *View) SetDensity(density DensityMode) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.nav.SetDensity(density)
}

// OpenCreate opens an empty modal and drops any selection.
func (v *View) OpenCreate() Modal {
	v.mu.Lock()
	defer v.mu.Unlock()
	_ = v.events.Select("")
	v.modalOpen = true
	v.modalMode = ModalCreate
	return v.modal()
}

// OpenEdit selects the event and opens the modal on it.
func (v *View) OpenEdit(id string) (Modal, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if err := v.events.Select(id); err != nil {
		return Modal{}, fmt.Errorf("(*View).OpenEdit: %w", err)
	}
	v.modalOpen = true
	v.modalMode = ModalEdit
	return v.modal(), nil
}

func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closeModal()
}

func (v *View) Modal() Modal {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.modal()
}

// Save submits the open modal: a create modal creates a new event, an edit
// modal replaces the selected one. The modal closes on success and stays
// open on error.
func (v *View) Save(ctx context.Context, input model.EventInput) (model.Event, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.modalOpen {
		return model.Event{}, ErrModalClosed
	}

	var saved model.Event
	switch v.modalMode {
	case ModalCreate:
		created, err := v.events.Create(ctx, input)
		if err != nil {
			return created, fmt.Errorf("(*View).Save: %w", err)
		}
		saved = created
	case ModalEdit:
		selected, ok := v.events.Selected()
		if !ok {
			return model.Event{}, fmt.Errorf("(*View).Save: selected event: %w", model.ErrNotFound)
		}
		saved = model.Event{ID: selected.ID, EventInput: input}
		if err := v.events.Update(ctx, saved); err != nil {
			return model.Event{}, fmt.Errorf("(*View).Save: %w", err)
		}
	default:
		return model.Event{}, ErrModalClosed
	}

	v.closeModal()
	return saved, nil
}

// Delete removes the event and closes any open modal.
func (v *View) Delete(ctx context.Context, id string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	err := v.events.Delete(ctx, id)
	v.closeModal()
	if err != nil {
		return fmt.Errorf("(*View).Delete: %w", err)
	}
	return nil
}

func (v *View) closeModal() {
	v.modalOpen = false
	v.modalMode = ""
	_ = v.events.Select("")
}

func (v *View) modal() Modal {
	if !v.modalOpen {
		return Modal{}
	}
	m := Modal{Open: true, Mode: v.modalMode}
	if v.modalMode == ModalEdit {
		if selected, ok := v.events.Selected(); ok {
			m.Event = &selected
		}
	}
	return m
}
