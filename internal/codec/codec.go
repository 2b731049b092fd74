// Package codec maps the active booking set to and from the flat-file
// representation: records separated by ";" with a line break between records,
// fields separated by "," in a fixed order. The trailing table pair is written
// only while a table is actively booked.
package codec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kashyyyk/hotel/internal/hotel"
)

const (
	recordSeparator = ";"
	recordBreak     = ";\n"
	fieldSeparator  = ","

	// mandatoryFields is the fixed prefix of every record: firstName,
	// lastName, dob, id, boardType, nDays, nAdults, nChildren, paper,
	// roomNum. The two table fields are optional.
	mandatoryFields = 10
)

// FormatError reports a stored record that cannot be mapped onto a Booking.
type FormatError struct {
	Record int
	Fields int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf(
		"record %d has %d fields, want at least %d",
		e.Record, e.Fields, mandatoryFields,
	)
}

func IsFormatError(err error) *FormatError {
	if err == nil {
		return nil
	}

	var formatError *FormatError

	if errors.As(err, &formatError) {
		return formatError
	}

	return nil
}

// atoi is the legacy tolerant integer parse: anything that is not a valid
// integer decodes as 0. Kept lossy on purpose for on-disk compatibility.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}

	return n
}

func boolToField(b bool) string {
	if b {
		return "1"
	}

	return "0"
}

// Decode parses the full file content into the active booking set. Records
// with fewer than the mandatory field count fail the whole load; a missing
// table pair leaves both table fields at the "none" sentinel.
func Decode(data []byte) ([]hotel.Booking, error) {
	var bookings []hotel.Booking

	for i, record := range strings.Split(string(data), recordSeparator) {
		record = strings.ReplaceAll(record, "\n", "")
		if record == "" {
			// A trailing separator produces one empty record; skip it.
			continue
		}

		fields := strings.Split(record, fieldSeparator)
		if len(fields) < mandatoryFields {
			return nil, &FormatError{Record: i, Fields: len(fields)}
		}

		booking := hotel.Booking{
			FirstName: fields[0],
			LastName:  fields[1],
			DOB:       fields[2],
			ID:        fields[3],
			Board:     hotel.BoardType(fields[4]),
			StayDays:  atoi(fields[5]),
			Adults:    atoi(fields[6]),
			Children:  atoi(fields[7]),
			Newspaper: atoi(fields[8]) != 0,
			RoomNum:   atoi(fields[9]),
			TableNum:  hotel.TableNone,
			TableSlot: hotel.SlotNone,
		}

		if len(fields) > mandatoryFields {
			booking.TableNum = hotel.Table(atoi(fields[10]))
		}

		if len(fields) > mandatoryFields+1 {
			booking.TableSlot = atoi(fields[11])
		}

		bookings = append(bookings, booking)
	}

	return bookings, nil
}

// Encode is the exact inverse of Decode for any valid active set: records
// joined by ";" plus a line break between (not after) records.
func Encode(bookings []hotel.Booking) []byte {
	records := make([]string, 0, len(bookings))

	for i := range bookings {
		booking := &bookings[i]

		fields := []string{
			booking.FirstName,
			booking.LastName,
			booking.DOB,
			booking.ID,
			string(booking.Board),
			strconv.Itoa(booking.StayDays),
			strconv.Itoa(booking.Adults),
			strconv.Itoa(booking.Children),
			boolToField(booking.Newspaper),
			strconv.Itoa(booking.RoomNum),
		}

		if booking.HasTable() {
			fields = append(
				fields,
				strconv.Itoa(int(booking.TableNum)),
				strconv.Itoa(booking.TableSlot),
			)
		}

		records = append(records, strings.Join(fields, fieldSeparator))
	}

	return []byte(strings.Join(records, recordBreak))
}
