package submission

//go:generate go run go.uber.org/mock/mockgen -source=./form.go -destination=./mocks/booker_mock.go -package=mocks

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"chiclon/internal/domains/booking/model"
	scheduleModel "chiclon/internal/domains/schedule/model"
	"chiclon/shared/timezone"
	"chiclon/shared/validator"
)

// RemoteBooker performs the booking. It returns the record as the service stored it, or a
// *RejectedError or *TransportError.
type RemoteBooker interface {
	Book(ctx context.Context, req model.Request) (model.Request, error)
}

// Observer is told about every state change, in order.
type Observer func(State)

type Option func(*Form)

func WithRequiredFields(fields ...string) Option {
	return func(f *Form) {
		f.schema = model.Schema(fields)
	}
}

func WithBusinessHours(hours scheduleModel.BusinessHours) Option {
	return func(f *Form) {
		f.hours = hours
	}
}

func WithObserver(observer Observer) Option {
	return func(f *Form) {
		f.observers = append(f.observers, observer)
	}
}

// Form drives one booking form: it keeps field values, derives the time slots for the chosen
// date and runs submissions. The submit path is disabled while a submission is pending.
type Form struct {
	mu        sync.Mutex
	booker    RemoteBooker
	schema    validator.FormSchema
	hours     scheduleModel.BusinessHours
	fields    map[string]string
	slots     []scheduleModel.Slot
	enabled   bool
	state     State
	observers []Observer
}

func NewForm(booker RemoteBooker, opts ...Option) *Form {
	form := &Form{
		booker:  booker,
		schema:  model.Schema(nil),
		hours:   scheduleModel.DefaultBusinessHours(),
		fields:  map[string]string{},
		slots:   []scheduleModel.Slot{},
		enabled: true,
	}

	for _, opt := range opts {
		opt(form)
	}

	return form
}

// Set stores a field value. Changing the date re-derives the slots and clears a time that is no
// longer offered.
func (f *Form) Set(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.set(field, value)
}

func (f *Form) set(field, value string) {
	f.fields[field] = value

	if field != model.FieldDate {
		return
	}

	f.slots = slotsFor(value, f.hours)

	current := f.fields[model.FieldTime]
	if current == "" {
		return
	}

	for _, slot := range f.slots {
		if slot.Value == current {
			return
		}
	}

	delete(f.fields, model.FieldTime)
}

func slotsFor(value string, hours scheduleModel.BusinessHours) []scheduleModel.Slot {
	date, err := timezone.ParseDate(value, time.UTC)
	if err != nil {
		return []scheduleModel.Slot{}
	}

	return scheduleModel.DeriveSlots(date, hours)
}

func (f *Form) Fields() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	fields := make(map[string]string, len(f.fields))
	for key, value := range f.fields {
		fields[key] = value
	}

	return fields
}

func (f *Form) Slots() []scheduleModel.Slot {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]scheduleModel.Slot{}, f.slots...)
}

// Enabled reports whether Submit will start a new attempt.
func (f *Form) Enabled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.enabled
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state
}

// Reset returns a finished form to Idle without touching its fields.
func (f *Form) Reset() {
	f.mu.Lock()

	if f.state.Status == Pending {
		f.mu.Unlock()

		return
	}

	observers := f.transition(State{Status: Idle})
	f.mu.Unlock()

	notify(observers, State{Status: Idle})
}

// Submit merges raw into the form, validates it and, when valid, books it. It blocks until the
// remote call finishes. A submit while another one is pending is ignored. The final state and the
// re-enabled submit path become visible together.
func (f *Form) Submit(ctx context.Context, raw map[string]string) State {
	f.mu.Lock()

	if !f.enabled {
		state := f.state
		f.mu.Unlock()

		log.Debug().Msg("submission ignored, another one is pending")

		return state
	}

	var changes []State

	if f.state.Status != Idle {
		f.transition(State{Status: Idle})
		changes = append(changes, State{Status: Idle})
	}

	for _, key := range orderedKeys(raw) {
		f.set(key, raw[key])
	}

	request := model.RequestFromFields(f.fields)

	if err := f.schema.Check(request.Fields()); err != nil {
		state := validationState(err)
		observers := f.transition(state)
		f.mu.Unlock()

		notify(observers, append(changes, state)...)

		return state
	}

	pending := State{Status: Pending}
	observers := f.transition(pending)
	f.enabled = false
	f.mu.Unlock()

	notify(observers, append(changes, pending)...)

	settled := false

	defer func() {
		if settled {
			return
		}

		f.mu.Lock()
		f.enabled = true
		f.mu.Unlock()
	}()

	final := f.book(ctx, request)

	f.mu.Lock()

	if final.Status == Succeeded {
		f.fields = map[string]string{}
		f.slots = []scheduleModel.Slot{}
	}

	observers = f.transition(final)
	f.enabled = true
	settled = true
	f.mu.Unlock()

	notify(observers, final)

	return final
}

// book runs the remote call and maps its outcome to the final state.
func (f *Form) book(ctx context.Context, request model.Request) State {
	booked, err := f.booker.Book(ctx, request)
	if err != nil {
		reason, classified := failureReason(err)

		log.Warn().Err(err).Msg("booking failed")

		return State{
			Status: Failed,
			Reason: reason,
			Err:    classified,
			Notice: Notice{Kind: NoticeError, Message: reason, DismissAfter: DismissAfter},
		}
	}

	return State{
		Status:  Succeeded,
		Booking: &booked,
		Notice:  Notice{Kind: NoticeSuccess, Message: model.MessageBooked, DismissAfter: DismissAfter},
	}
}

// transition must be called with mu held. It returns the observers to notify once mu is released.
func (f *Form) transition(state State) []Observer {
	f.state = state

	return append([]Observer{}, f.observers...)
}

func notify(observers []Observer, states ...State) {
	for _, state := range states {
		for _, observer := range observers {
			observer(state)
		}
	}
}

// orderedKeys applies the date before the time so a submitted time survives slot re-derivation.
func orderedKeys(raw map[string]string) []string {
	keys := make([]string, 0, len(raw))

	if _, ok := raw[model.FieldDate]; ok {
		keys = append(keys, model.FieldDate)
	}

	for key := range raw {
		if key != model.FieldDate {
			keys = append(keys, key)
		}
	}

	return keys
}
