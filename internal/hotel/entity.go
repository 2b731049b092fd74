package hotel

// BoardType is the meal-inclusion plan a guest checks in with. It drives the
// per-meal rate on the bill and decides whether the guest may book a dinner
// table (Bed & Breakfast guests may not).
type BoardType string

const (
	FullBoard    BoardType = "FB"
	HalfBoard    BoardType = "HB"
	BedBreakfast BoardType = "BB"
)

// Table identifies one of the three named dinner tables. The zero value and
// TableUnavailable are sentinels, not tables.
type Table int

const (
	Endor    Table = 1
	Naboo    Table = 2
	Tatooine Table = 3
)

// Sentinel values stored in the table fields of a Booking. None means the
// guest holds no table; Unavailable marks a slot taken by someone else
// during allocation.
const (
	TableNone        Table = 0
	TableUnavailable Table = -1

	SlotNone        = 0
	SlotUnavailable = -1
)

const (
	NumRooms    = 6
	NumTables   = 3
	NumSittings = 2

	// MaxGuests is the room capacity (adults + children).
	MaxGuests = 4

	// NewspaperPrice is the flat surcharge for morning newspaper delivery.
	NewspaperPrice = 5.5
)

// Sittings holds the two dinner sittings as raw PM hours (7 means 19:00,
// 9 means 21:00), in the order they are offered to guests.
var Sittings = [NumSittings]int{7, 9}

func (t Table) Name() string {
	switch t {
	case Endor:
		return "Endor"
	case Naboo:
		return "Naboo"
	case Tatooine:
		return "Tatooine"
	default:
		return ""
	}
}

// TableChoice is one bookable (table, sitting) pair.
type TableChoice struct {
	Table Table `json:"table"`
	Hour  int   `json:"hour"`
}

// Booking is one active reservation: a room for the length of the stay plus,
// optionally, one dinner table sitting.
type Booking struct {
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	DOB       string    `json:"dob"` // DD/MM/YYYY
	ID        string    `json:"id"`
	Board     BoardType `json:"board"`
	StayDays  int       `json:"stay_days"`
	Adults    int       `json:"adults"`
	Children  int       `json:"children"`
	Newspaper bool      `json:"newspaper"`
	RoomNum   int       `json:"room_num"`
	TableNum  Table     `json:"table_num"`
	TableSlot int       `json:"table_slot"`
}

// HasTable reports whether the booking actively holds a dinner table, i.e.
// both table fields carry real values rather than sentinels.
func (b *Booking) HasTable() bool {
	return b.TableNum != TableNone && b.TableNum != TableUnavailable &&
		b.TableSlot != SlotNone && b.TableSlot != SlotUnavailable
}

// ClearTable resets both table fields together.
func (b *Booking) ClearTable() {
	b.TableNum = TableNone
	b.TableSlot = SlotNone
}

// CheckInInput carries the guest details gathered by the caller for a new
// check-in. The room number must come from the currently free set.
type CheckInInput struct {
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	DOB       string    `json:"dob"`
	Board     BoardType `json:"board"`
	StayDays  int       `json:"stay_days"`
	Adults    int       `json:"adults"`
	Children  int       `json:"children"`
	Newspaper bool      `json:"newspaper"`
	RoomNum   int       `json:"room_num"`
}
