// Package bookingfile persists the active booking set to a single flat text
// file. Every save is a whole-file rewrite; the design assumes exactly one
// process holds the file at a time, so there is no locking or versioning.
package bookingfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/kashyyyk/hotel/internal/codec"
	"github.com/kashyyyk/hotel/internal/hotel"
	"github.com/kashyyyk/hotel/internal/logger"
)

type Config struct {
	L    *logger.Logger
	Path string
}

type Store struct {
	l    *logger.Logger
	path string
}

func New(conf Config) *Store {
	return &Store{
		l:    conf.L,
		path: conf.Path,
	}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads and decodes the whole booking file. A missing file is created
// empty on first load; any other I/O failure aborts the operation with ErrIO.
func (s *Store) Load(_ context.Context) ([]hotel.Booking, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read %v: %v: %w", s.path, err, ErrIO)
		}

		if err := os.WriteFile(s.path, nil, 0o644); err != nil {
			return nil, fmt.Errorf("create %v: %v: %w", s.path, err, ErrIO)
		}

		s.l.LogInfo("Created empty booking file %v", s.path)

		return nil, nil
	}

	bookings, err := codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %v: %w", s.path, err)
	}

	return bookings, nil
}

// Save serializes the full active set and overwrites the file. There is no
// incremental append; the on-disk state is always the last full snapshot.
func (s *Store) Save(_ context.Context, bookings []hotel.Booking) error {
	if err := os.WriteFile(s.path, codec.Encode(bookings), 0o644); err != nil {
		return fmt.Errorf("write %v: %v: %w", s.path, err, ErrIO)
	}

	return nil
}
