package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kashyyyk/hotel/internal/hotel"
)

func sampleBookings() []hotel.Booking {
	return []hotel.Booking{
		{
			FirstName: "Leia",
			LastName:  "Organa",
			DOB:       "21/10/1956",
			ID:        "Organa4",
			Board:     hotel.FullBoard,
			StayDays:  3,
			Adults:    2,
			Children:  1,
			Newspaper: true,
			RoomNum:   1,
			TableNum:  hotel.Endor,
			TableSlot: 7,
		},
		{
			FirstName: "Han",
			LastName:  "Solo",
			DOB:       "13/07/1942",
			ID:        "Solo0",
			Board:     hotel.BedBreakfast,
			StayDays:  1,
			Adults:    1,
			Children:  0,
			Newspaper: false,
			RoomNum:   6,
			TableNum:  hotel.TableNone,
			TableSlot: hotel.SlotNone,
		},
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	got := string(Encode(sampleBookings()))

	want := "Leia,Organa,21/10/1956,Organa4,FB,3,2,1,1,1,1,7;\n" +
		"Han,Solo,13/07/1942,Solo0,BB,1,1,0,0,6"

	assert.Equal(t, want, got)
}

func TestEncodeEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Encode(nil))
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	want := sampleBookings()

	got, err := Decode(Encode(want))
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestDecodeTrailingSeparator(t *testing.T) {
	t.Parallel()

	bookings, err := Decode([]byte("Han,Solo,13/07/1942,Solo0,BB,1,1,0,0,6;\n"))
	require.NoError(t, err)
	require.Len(t, bookings, 1)

	assert.Equal(t, "Solo0", bookings[0].ID)
}

func TestDecodeMissingTableFields(t *testing.T) {
	t.Parallel()

	bookings, err := Decode([]byte("Han,Solo,13/07/1942,Solo0,HB,1,1,0,0,6"))
	require.NoError(t, err)
	require.Len(t, bookings, 1)

	assert.Equal(t, hotel.TableNone, bookings[0].TableNum)
	assert.Equal(t, hotel.SlotNone, bookings[0].TableSlot)
	assert.False(t, bookings[0].HasTable())
}

func TestDecodeTolerantIntegers(t *testing.T) {
	t.Parallel()

	bookings, err := Decode([]byte("Han,Solo,13/07/1942,Solo0,BB,oops,1,x,y,6"))
	require.NoError(t, err)
	require.Len(t, bookings, 1)

	// Legacy behavior: unparseable integers degrade to 0.
	assert.Zero(t, bookings[0].StayDays)
	assert.Equal(t, 1, bookings[0].Adults)
	assert.Zero(t, bookings[0].Children)
	assert.False(t, bookings[0].Newspaper)
}

func TestDecodeShortRecord(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte("Han,Solo,13/07/1942,Solo0,BB,1"))
	require.Error(t, err)

	formatErr := IsFormatError(err)
	require.NotNil(t, formatErr)
	assert.Equal(t, 0, formatErr.Record)
	assert.Equal(t, 6, formatErr.Fields)
}

func TestDecodeEmpty(t *testing.T) {
	t.Parallel()

	bookings, err := Decode(nil)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}
