package hotel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/trace"

	"github.com/kashyyyk/hotel/internal/dates"
	"github.com/kashyyyk/hotel/internal/logger"
)

type idGenerator interface {
	BookingID(ctx context.Context, lastName string) (string, error)
}

type storage interface {
	Load(ctx context.Context) ([]Booking, error)
	Save(ctx context.Context, bookings []Booking) error
}

// maxIDAttempts bounds the collision-regeneration loop; with at most six
// active bookings the loop terminates long before this.
const maxIDAttempts = 100

// Manager owns every top-level reservation operation. Each one is a single
// load -> compute -> save sequence over the booking file; nothing is
// persisted before the computation has fully succeeded.
type Manager struct {
	l           *logger.Logger
	storage     storage
	idGenerator idGenerator
	maxStayDays int
	today       func() string
}

func New(l *logger.Logger, storage storage, idGenerator idGenerator, maxStayDays int) *Manager {
	return &Manager{
		l:           l,
		storage:     storage,
		idGenerator: idGenerator,
		maxStayDays: maxStayDays,
		today:       dates.Today,
	}
}

func (m *Manager) logOp(ctx context.Context, format string, v ...any) {
	opID, _ := OperationIDFromContext(ctx)

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		opID = sc.TraceID().String()
	}

	m.l.LogInfo("opID: %v, %v", opID, fmt.Sprintf(format, v...))
}

// ValidName reports whether a guest name is non-empty and uses only letters,
// spaces and hyphens. Shared with the prompt layer so it can re-prompt per
// field before an input ever reaches CheckIn.
func ValidName(s string) bool {
	if s == "" {
		return false
	}

	for _, c := range s {
		letter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		if !letter && c != ' ' && c != '-' {
			return false
		}
	}

	return true
}

func (in *CheckInInput) validate(today string, maxStayDays int) error {
	validationErr := newValidationError()

	if !ValidName(in.FirstName) {
		validationErr.addError("first_name", "only letters, spaces and hyphens are allowed")
	}

	if !ValidName(in.LastName) {
		validationErr.addError("last_name", "only letters, spaces and hyphens are allowed")
	}

	if err := dates.ValidateDOB(in.DOB, today); err != nil {
		validationErr.addError("dob", err.Error())
	}

	if _, ok := mealRate(in.Board); !ok {
		validationErr.addError("board", "board type must be FB, HB or BB")
	}

	if in.StayDays < 1 || in.StayDays > maxStayDays {
		validationErr.addError("stay_days", fmt.Sprintf("stay must be between 1 and %d days", maxStayDays))
	}

	guests := in.Adults + in.Children
	if guests < 1 || guests > MaxGuests {
		validationErr.addError("guests", fmt.Sprintf("a room holds between 1 and %d guests", MaxGuests))
	}

	if in.RoomNum < 1 || in.RoomNum > NumRooms {
		validationErr.addError("room_num", fmt.Sprintf("room number must be between 1 and %d", NumRooms))
	}

	if validationErr.fieldsCount() > 0 {
		return validationErr
	}

	return nil
}

func (m *Manager) assignID(ctx context.Context, lastName string, bookings []Booking) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := m.idGenerator.BookingID(ctx, lastName)
		if err != nil {
			return "", fmt.Errorf("generate booking id: %w", err)
		}

		taken := false

		for i := range bookings {
			if bookings[i].ID == id {
				taken = true

				break
			}
		}

		if !taken {
			return id, nil
		}
	}

	return "", ErrAssignID
}

// CheckIn validates the guest details, assigns a unique booking ID, claims
// the selected room and persists the grown active set.
func (m *Manager) CheckIn(ctx context.Context, input *CheckInInput) (*Booking, error) {
	if err := input.validate(m.today(), m.maxStayDays); err != nil {
		return nil, err
	}

	bookings, err := m.storage.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	if len(bookings) >= NumRooms {
		return nil, ErrNoRoomsFree
	}

	roomFree := false

	for _, room := range FreeRooms(bookings) {
		if room == input.RoomNum {
			roomFree = true

			break
		}
	}

	if !roomFree {
		validationErr := newValidationError()
		validationErr.addError("room_num", fmt.Sprintf("room %d is not available", input.RoomNum))

		return nil, validationErr
	}

	id, err := m.assignID(ctx, input.LastName, bookings)
	if err != nil {
		return nil, err
	}

	booking := Booking{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		DOB:       input.DOB,
		ID:        id,
		Board:     input.Board,
		StayDays:  input.StayDays,
		Adults:    input.Adults,
		Children:  input.Children,
		Newspaper: input.Newspaper,
		RoomNum:   input.RoomNum,
		TableNum:  TableNone,
		TableSlot: SlotNone,
	}

	bookings = append(bookings, booking)

	if err := m.storage.Save(ctx, bookings); err != nil {
		return nil, fmt.Errorf("save bookings: %w", err)
	}

	m.logOp(ctx, "checked in booking %v into room %v", booking.ID, booking.RoomNum)

	return &booking, nil
}

func findBooking(bookings []Booking, id string) int {
	for i := range bookings {
		if bookings[i].ID == id {
			return i
		}
	}

	return -1
}

// BookTable reserves one free (table, sitting) pair for an eligible booking.
// Bed & Breakfast guests and guests already holding a table are rejected.
func (m *Manager) BookTable(ctx context.Context, id string, choice TableChoice) (*Booking, error) {
	bookings, err := m.storage.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	idx := findBooking(bookings, id)
	if idx < 0 {
		return nil, ErrUnknownBookingID
	}

	booking := &bookings[idx]

	if booking.Board == BedBreakfast {
		validationErr := newValidationError()
		validationErr.addError("board", "Bed & Breakfast guests cannot book a dinner table")

		return nil, validationErr
	}

	if booking.HasTable() {
		validationErr := newValidationError()
		validationErr.addError(
			"table",
			fmt.Sprintf("a table is already booked: %v at %d:00pm", booking.TableNum.Name(), booking.TableSlot+12),
		)

		return nil, validationErr
	}

	free := false

	for _, slot := range FreeTableSlots(bookings) {
		if slot == choice {
			free = true

			break
		}
	}

	if !free {
		validationErr := newValidationError()
		validationErr.addError(
			"table",
			fmt.Sprintf("%v at %d:00pm is not available", choice.Table.Name(), choice.Hour+12),
		)

		return nil, validationErr
	}

	booking.TableNum = choice.Table
	booking.TableSlot = choice.Hour

	if err := m.storage.Save(ctx, bookings); err != nil {
		return nil, fmt.Errorf("save bookings: %w", err)
	}

	m.logOp(ctx, "booked table %v at %d:00pm for booking %v", choice.Table.Name(), choice.Hour+12, id)

	result := *booking

	return &result, nil
}

// CancelTable clears both table fields of a booking together, releasing the
// pair back to the free set. The booking stays active; it may book again.
func (m *Manager) CancelTable(ctx context.Context, id string) (*Booking, error) {
	bookings, err := m.storage.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	idx := findBooking(bookings, id)
	if idx < 0 {
		return nil, ErrUnknownBookingID
	}

	booking := &bookings[idx]

	if !booking.HasTable() {
		return nil, ErrNoTableHeld
	}

	booking.ClearTable()

	if err := m.storage.Save(ctx, bookings); err != nil {
		return nil, fmt.Errorf("save bookings: %w", err)
	}

	m.logOp(ctx, "cancelled table booking for %v", id)

	result := *booking

	return &result, nil
}

// PrepareBill prices a checkout without mutating anything, so the caller can
// show the itemized bill before asking for payment.
func (m *Manager) PrepareBill(ctx context.Context, id string, mealsEaten int) (*Bill, error) {
	bookings, err := m.storage.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	idx := findBooking(bookings, id)
	if idx < 0 {
		return nil, ErrUnknownBookingID
	}

	bill, err := ComputeBill(&bookings[idx], mealsEaten, m.today())
	if err != nil {
		return nil, fmt.Errorf("compute bill for %v: %w", id, err)
	}

	return bill, nil
}

// CheckOut completes a stay: the tendered amount must equal the bill total
// to the cent, then the booking is removed from the active set and the store
// re-persisted. A wrong amount returns the bill alongside ErrWrongAmount so
// the caller can loop the confirmation.
func (m *Manager) CheckOut(ctx context.Context, id string, mealsEaten int, tendered float64) (*Bill, error) {
	bookings, err := m.storage.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	idx := findBooking(bookings, id)
	if idx < 0 {
		return nil, ErrUnknownBookingID
	}

	bill, err := ComputeBill(&bookings[idx], mealsEaten, m.today())
	if err != nil {
		return nil, fmt.Errorf("compute bill for %v: %w", id, err)
	}

	if tendered != bill.AmountDue() {
		return bill, ErrWrongAmount
	}

	bookings = append(bookings[:idx], bookings[idx+1:]...)

	if err := m.storage.Save(ctx, bookings); err != nil {
		return nil, fmt.Errorf("save bookings: %w", err)
	}

	m.logOp(ctx, "checked out booking %v, total %.2f", id, bill.Total)

	return bill, nil
}

// Bookings returns the currently active set.
func (m *Manager) Bookings(ctx context.Context) ([]Booking, error) {
	bookings, err := m.storage.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	return bookings, nil
}

// FreeRooms lists the room numbers currently free.
func (m *Manager) FreeRooms(ctx context.Context) ([]int, error) {
	bookings, err := m.storage.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	return FreeRooms(bookings), nil
}

// FreeTableSlots lists the (table, sitting) pairs currently free.
func (m *Manager) FreeTableSlots(ctx context.Context) ([]TableChoice, error) {
	bookings, err := m.storage.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	return FreeTableSlots(bookings), nil
}
