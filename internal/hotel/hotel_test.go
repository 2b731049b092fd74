package hotel

import (
	"context"
	"io"
	"log"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kashyyyk/hotel/internal/logger"
)

const testToday = "01/06/2024"

type fakeStore struct {
	bookings []Booking
	loadErr  error
	saveErr  error
	saves    int
}

func (s *fakeStore) Load(_ context.Context) ([]Booking, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}

	return append([]Booking(nil), s.bookings...), nil
}

func (s *fakeStore) Save(_ context.Context, bookings []Booking) error {
	if s.saveErr != nil {
		return s.saveErr
	}

	s.bookings = append([]Booking(nil), bookings...)
	s.saves++

	return nil
}

// seqIDGen hands out the configured digits in order, so collision handling
// can be driven deterministically.
type seqIDGen struct {
	digits []int
	calls  int
}

func (g *seqIDGen) BookingID(_ context.Context, lastName string) (string, error) {
	digit := g.digits[g.calls%len(g.digits)]
	g.calls++

	return lastName + strconv.Itoa(digit), nil
}

func newTestManager(store *fakeStore, digits ...int) *Manager {
	if len(digits) == 0 {
		digits = []int{7}
	}

	m := New(
		logger.New(log.New(io.Discard, "", 0)),
		store,
		&seqIDGen{digits: digits},
		50,
	)
	m.today = func() string { return testToday }

	return m
}

func validInput() *CheckInInput {
	return &CheckInInput{
		FirstName: "Leia",
		LastName:  "Organa",
		DOB:       "21/10/1956",
		Board:     FullBoard,
		StayDays:  2,
		Adults:    2,
		Children:  1,
		Newspaper: true,
		RoomNum:   1,
	}
}

func TestCheckIn(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	m := newTestManager(store)

	booking, err := m.CheckIn(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, "Organa7", booking.ID)
	assert.Equal(t, 1, booking.RoomNum)
	assert.False(t, booking.HasTable())
	require.Len(t, store.bookings, 1)
	assert.Equal(t, 1, store.saves)
}

func TestCheckInRegeneratesCollidingID(t *testing.T) {
	t.Parallel()

	store := &fakeStore{bookings: []Booking{
		{ID: "Organa7", RoomNum: 2},
	}}
	m := newTestManager(store, 7, 7, 3)

	booking, err := m.CheckIn(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "Organa3", booking.ID)
}

func TestCheckInKeepsRoomsUnique(t *testing.T) {
	t.Parallel()

	store := &fakeStore{bookings: []Booking{
		{ID: "Solo0", RoomNum: 1},
	}}
	m := newTestManager(store)

	_, err := m.CheckIn(context.Background(), validInput())
	require.Error(t, err)
	require.NotNil(t, IsValidationError(err))
	assert.Len(t, store.bookings, 1)
	assert.Zero(t, store.saves)
}

func TestCheckInFullHotel(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	for room := 1; room <= NumRooms; room++ {
		store.bookings = append(store.bookings, Booking{ID: "G" + strconv.Itoa(room), RoomNum: room})
	}

	m := newTestManager(store)

	_, err := m.CheckIn(context.Background(), validInput())
	assert.ErrorIs(t, err, ErrNoRoomsFree)
}

func TestCheckInValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*CheckInInput)
		field  string
	}{
		{name: "bad first name", mutate: func(in *CheckInInput) { in.FirstName = "R2D2" }, field: "first_name"},
		{name: "empty last name", mutate: func(in *CheckInInput) { in.LastName = "" }, field: "last_name"},
		{name: "bad dob", mutate: func(in *CheckInInput) { in.DOB = "1956-10-21" }, field: "dob"},
		{name: "underage dob", mutate: func(in *CheckInInput) { in.DOB = "21/10/2010" }, field: "dob"},
		{name: "unknown board", mutate: func(in *CheckInInput) { in.Board = "XL" }, field: "board"},
		{name: "zero days", mutate: func(in *CheckInInput) { in.StayDays = 0 }, field: "stay_days"},
		{name: "too long stay", mutate: func(in *CheckInInput) { in.StayDays = 51 }, field: "stay_days"},
		{name: "no guests", mutate: func(in *CheckInInput) { in.Adults, in.Children = 0, 0 }, field: "guests"},
		{name: "too many guests", mutate: func(in *CheckInInput) { in.Adults, in.Children = 3, 2 }, field: "guests"},
		{name: "room out of range", mutate: func(in *CheckInInput) { in.RoomNum = 7 }, field: "room_num"},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := &fakeStore{}
			m := newTestManager(store)

			input := validInput()
			tt.mutate(input)

			_, err := m.CheckIn(context.Background(), input)
			validationErr := IsValidationError(err)
			require.NotNil(t, validationErr)
			assert.Contains(t, validationErr.Fields(), tt.field)
			assert.Zero(t, store.saves)
		})
	}
}

func TestBookTable(t *testing.T) {
	t.Parallel()

	store := &fakeStore{bookings: []Booking{
		{ID: "Organa7", Board: FullBoard, RoomNum: 1},
	}}
	m := newTestManager(store)

	booking, err := m.BookTable(context.Background(), "Organa7", TableChoice{Table: Naboo, Hour: 9})
	require.NoError(t, err)

	assert.Equal(t, Naboo, booking.TableNum)
	assert.Equal(t, 9, booking.TableSlot)
	assert.True(t, store.bookings[0].HasTable())
}

func TestBookTableUnknownID(t *testing.T) {
	t.Parallel()

	m := newTestManager(&fakeStore{})

	_, err := m.BookTable(context.Background(), "Nobody1", TableChoice{Table: Endor, Hour: 7})
	assert.ErrorIs(t, err, ErrUnknownBookingID)
}

func TestBookTableRejectsBedAndBreakfast(t *testing.T) {
	t.Parallel()

	store := &fakeStore{bookings: []Booking{
		{ID: "Solo0", Board: BedBreakfast, RoomNum: 6},
	}}
	m := newTestManager(store)

	_, err := m.BookTable(context.Background(), "Solo0", TableChoice{Table: Endor, Hour: 7})
	require.NotNil(t, IsValidationError(err))

	// No table fields may be set by a rejected attempt.
	assert.False(t, store.bookings[0].HasTable())
	assert.Zero(t, store.saves)
}

func TestBookTableRejectsSecondTable(t *testing.T) {
	t.Parallel()

	store := &fakeStore{bookings: []Booking{
		{ID: "Organa7", Board: FullBoard, RoomNum: 1, TableNum: Endor, TableSlot: 7},
	}}
	m := newTestManager(store)

	_, err := m.BookTable(context.Background(), "Organa7", TableChoice{Table: Naboo, Hour: 9})
	require.NotNil(t, IsValidationError(err))
	assert.Equal(t, Endor, store.bookings[0].TableNum)
}

func TestBookTableRejectsTakenPair(t *testing.T) {
	t.Parallel()

	store := &fakeStore{bookings: []Booking{
		{ID: "Organa7", Board: FullBoard, RoomNum: 1, TableNum: Naboo, TableSlot: 9},
		{ID: "Skywalker3", Board: HalfBoard, RoomNum: 2},
	}}
	m := newTestManager(store)

	_, err := m.BookTable(context.Background(), "Skywalker3", TableChoice{Table: Naboo, Hour: 9})
	require.NotNil(t, IsValidationError(err))

	// The same pair at the other sitting is still free.
	_, err = m.BookTable(context.Background(), "Skywalker3", TableChoice{Table: Naboo, Hour: 7})
	require.NoError(t, err)
}

func TestCancelTable(t *testing.T) {
	t.Parallel()

	store := &fakeStore{bookings: []Booking{
		{ID: "Organa7", Board: FullBoard, RoomNum: 1, TableNum: Endor, TableSlot: 7},
	}}
	m := newTestManager(store)

	booking, err := m.CancelTable(context.Background(), "Organa7")
	require.NoError(t, err)

	assert.False(t, booking.HasTable())
	assert.Equal(t, TableNone, store.bookings[0].TableNum)
	assert.Equal(t, SlotNone, store.bookings[0].TableSlot)

	// Reserved -> NoTable -> Reserved is a legal cycle.
	_, err = m.BookTable(context.Background(), "Organa7", TableChoice{Table: Endor, Hour: 7})
	require.NoError(t, err)
}

func TestCancelTableWithoutTable(t *testing.T) {
	t.Parallel()

	store := &fakeStore{bookings: []Booking{
		{ID: "Organa7", Board: FullBoard, RoomNum: 1},
	}}
	m := newTestManager(store)

	_, err := m.CancelTable(context.Background(), "Organa7")
	assert.ErrorIs(t, err, ErrNoTableHeld)
}

func checkedInBooking() Booking {
	return Booking{
		FirstName: "Leia",
		LastName:  "Organa",
		DOB:       "01/01/1990",
		ID:        "Organa7",
		Board:     FullBoard,
		StayDays:  2,
		Adults:    2,
		Children:  1,
		Newspaper: true,
		RoomNum:   1,
	}
}

func TestCheckOut(t *testing.T) {
	t.Parallel()

	store := &fakeStore{bookings: []Booking{checkedInBooking()}}
	m := newTestManager(store)

	bill, err := m.CheckOut(context.Background(), "Organa7", 3, 355.5)
	require.NoError(t, err)

	assert.InDelta(t, 355.5, bill.Total, 1e-9)
	assert.Empty(t, store.bookings)

	// A second checkout of the same ID must fail: the record is gone.
	_, err = m.CheckOut(context.Background(), "Organa7", 3, 355.5)
	assert.ErrorIs(t, err, ErrUnknownBookingID)
}

func TestCheckOutWrongAmount(t *testing.T) {
	t.Parallel()

	store := &fakeStore{bookings: []Booking{checkedInBooking()}}
	m := newTestManager(store)

	bill, err := m.CheckOut(context.Background(), "Organa7", 3, 300)
	require.ErrorIs(t, err, ErrWrongAmount)

	// The bill comes back so the caller can loop the confirmation; nothing
	// was removed or persisted.
	require.NotNil(t, bill)
	assert.Len(t, store.bookings, 1)
	assert.Zero(t, store.saves)
}

func TestCheckOutCorruptRecord(t *testing.T) {
	t.Parallel()

	corrupt := checkedInBooking()
	corrupt.Board = "ZZ"

	store := &fakeStore{bookings: []Booking{corrupt}}
	m := newTestManager(store)

	_, err := m.CheckOut(context.Background(), "Organa7", 3, 0)
	require.ErrorIs(t, err, ErrCorruptRecord)

	// Fatal for the checkout, but no mutation may be persisted.
	assert.Len(t, store.bookings, 1)
	assert.Zero(t, store.saves)
}

func TestPrepareBillDoesNotMutate(t *testing.T) {
	t.Parallel()

	store := &fakeStore{bookings: []Booking{checkedInBooking()}}
	m := newTestManager(store)

	bill, err := m.PrepareBill(context.Background(), "Organa7", 3)
	require.NoError(t, err)
	assert.InDelta(t, 355.5, bill.Total, 1e-9)
	assert.Len(t, store.bookings, 1)
	assert.Zero(t, store.saves)
}

func TestFreeRoomsAndTableSlots(t *testing.T) {
	t.Parallel()

	store := &fakeStore{bookings: []Booking{
		{ID: "Organa7", RoomNum: 1, TableNum: Endor, TableSlot: 7},
	}}
	m := newTestManager(store)

	rooms, err := m.FreeRooms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4, 5, 6}, rooms)

	slots, err := m.FreeTableSlots(context.Background())
	require.NoError(t, err)
	assert.Len(t, slots, 5)
	assert.NotContains(t, slots, TableChoice{Table: Endor, Hour: 7})
}
