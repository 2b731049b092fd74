package hotel

// FreeRooms derives the free room numbers from the active booking set: the
// six-room universe minus every room currently occupied. Recomputed on every
// call so it can never drift from the store.
func FreeRooms(bookings []Booking) []int {
	occupied := make(map[int]bool, len(bookings))

	for i := range bookings {
		occupied[bookings[i].RoomNum] = true
	}

	free := make([]int, 0, NumRooms)

	for room := 1; room <= NumRooms; room++ {
		if !occupied[room] {
			free = append(free, room)
		}
	}

	return free
}

// FreeTableSlots derives the free (table, sitting) pairs: three tables times
// two sittings minus every pair actively held. Pairs are listed sitting-first,
// the order the dining room offers them in.
func FreeTableSlots(bookings []Booking) []TableChoice {
	taken := make(map[TableChoice]bool, len(bookings))

	for i := range bookings {
		if bookings[i].HasTable() {
			taken[TableChoice{Table: bookings[i].TableNum, Hour: bookings[i].TableSlot}] = true
		}
	}

	free := make([]TableChoice, 0, NumTables*NumSittings)

	for _, hour := range Sittings {
		for _, table := range []Table{Endor, Naboo, Tatooine} {
			choice := TableChoice{Table: table, Hour: hour}
			if !taken[choice] {
				free = append(free, choice)
			}
		}
	}

	return free
}
