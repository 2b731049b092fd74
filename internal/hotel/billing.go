package hotel

import (
	"fmt"
	"math"

	"github.com/kashyyyk/hotel/internal/dates"
)

// roomPrices is the nightly rate per room, indexed by room number - 1.
var roomPrices = [NumRooms]int{100, 100, 85, 75, 75, 50}

const (
	seniorAgeYears     = 65
	seniorDiscountRate = 0.9
)

// RoomPrice returns the nightly rate for a room number, or 0 for a number
// outside the inventory.
func RoomPrice(room int) int {
	if room < 1 || room > NumRooms {
		return 0
	}

	return roomPrices[room-1]
}

func mealRate(board BoardType) (int, bool) {
	switch board {
	case FullBoard:
		return 20, true
	case HalfBoard:
		return 15, true
	case BedBreakfast:
		return 5, true
	default:
		return 0, false
	}
}

// Bill is the itemized checkout bill for one booking.
type Bill struct {
	GuestName      string  `json:"guest_name"`
	BookingID      string  `json:"booking_id"`
	Adults         int     `json:"adults"`
	Children       int     `json:"children"`
	RoomCost       float64 `json:"room_cost"`
	BoardCost      float64 `json:"board_cost"`
	PaperCost      float64 `json:"paper_cost"`
	Total          float64 `json:"total"`
	SeniorDiscount bool    `json:"senior_discount"`
}

// AmountDue is the total truncated to the cent; this is the exact figure the
// payer must confirm before checkout completes.
func (b *Bill) AmountDue() float64 {
	return math.Floor(b.Total*100) / 100
}

// ComputeBill prices a checkout: meals eaten at the board rate (children at
// half the adult rate), the room for the length of the stay with a 10%
// discount for guests of 65 and over, and the flat newspaper surcharge.
// A board type outside the three known codes means the stored record is
// corrupted and no sensible price exists.
func ComputeBill(booking *Booking, mealsEaten int, today string) (*Bill, error) {
	rate, ok := mealRate(booking.Board)
	if !ok {
		return nil, fmt.Errorf("board type %q: %w", booking.Board, ErrCorruptRecord)
	}

	if booking.RoomNum < 1 || booking.RoomNum > NumRooms {
		return nil, fmt.Errorf("room number %d: %w", booking.RoomNum, ErrCorruptRecord)
	}

	boardCost := float64(mealsEaten*rate*booking.Adults) +
		float64(mealsEaten*rate*booking.Children)/2

	roomCost := float64(booking.StayDays * roomPrices[booking.RoomNum-1])

	ageDays := float64(dates.ElapsedDays(booking.DOB, today))
	senior := ageDays >= seniorAgeYears*365.25

	if senior {
		roomCost *= seniorDiscountRate
	}

	var paperCost float64
	if booking.Newspaper {
		paperCost = NewspaperPrice
	}

	return &Bill{
		GuestName:      booking.FirstName + " " + booking.LastName,
		BookingID:      booking.ID,
		Adults:         booking.Adults,
		Children:       booking.Children,
		RoomCost:       roomCost,
		BoardCost:      boardCost,
		PaperCost:      paperCost,
		Total:          roomCost + boardCost + paperCost,
		SeniorDiscount: senior,
	}, nil
}
