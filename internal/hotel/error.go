package hotel

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownBookingID = errors.New("unknown booking id")
	ErrNoRoomsFree      = errors.New("no rooms available")
	ErrAssignID         = errors.New("assign unique booking id")
	ErrNoTableHeld      = errors.New("no table booked")
	ErrWrongAmount      = errors.New("tendered amount does not match the bill")

	// ErrCorruptRecord marks a stored booking whose fields can no longer be
	// priced (unknown board type or room number). Fatal for the checkout.
	ErrCorruptRecord = errors.New("booking record corrupted")
)

type ValidationError struct {
	fields map[string][]string
}

func newValidationError() *ValidationError {
	return &ValidationError{
		fields: make(map[string][]string),
	}
}

func IsValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}

	var validationError *ValidationError

	if errors.As(err, &validationError) {
		return validationError
	}

	return nil
}

func (ve *ValidationError) fieldsCount() int {
	return len(ve.fields)
}

func (ve *ValidationError) addError(field, msg string) {
	ve.fields[field] = append(ve.fields[field], msg)
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("%+v", ve.fields)
}

func (ve *ValidationError) Fields() map[string][]string {
	return ve.fields
}
