// Package cli is the interactive front desk: a line-based menu loop that
// gathers validated guest input and hands it to the booking manager. All
// business rules live behind the manager; this layer only prompts, retries
// and prints.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/kashyyyk/hotel/internal/hotel"
	"github.com/kashyyyk/hotel/internal/logger"
)

type bookingManager interface {
	CheckIn(ctx context.Context, input *hotel.CheckInInput) (*hotel.Booking, error)
	BookTable(ctx context.Context, id string, choice hotel.TableChoice) (*hotel.Booking, error)
	CancelTable(ctx context.Context, id string) (*hotel.Booking, error)
	PrepareBill(ctx context.Context, id string, mealsEaten int) (*hotel.Bill, error)
	CheckOut(ctx context.Context, id string, mealsEaten int, tendered float64) (*hotel.Bill, error)
	Bookings(ctx context.Context) ([]hotel.Booking, error)
	FreeRooms(ctx context.Context) ([]int, error)
	FreeTableSlots(ctx context.Context) ([]hotel.TableChoice, error)
}

type Conf struct {
	L           *logger.Logger
	In          io.Reader
	Out         io.Writer
	Currency    string
	MaxStayDays int
}

type CLI struct {
	l       *logger.Logger
	in      *bufio.Reader
	out     io.Writer
	conf    Conf
	manager bookingManager
}

func New(conf Conf, manager bookingManager) *CLI {
	return &CLI{
		l:       conf.L,
		in:      bufio.NewReader(conf.In),
		out:     conf.Out,
		conf:    conf,
		manager: manager,
	}
}

// Run drives the main menu until the guest quits, input ends or the context
// is cancelled. Recoverable operation errors are printed and the menu loops;
// only I/O and corruption errors abort the loop.
func (c *CLI) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		c.printf("\nWelcome to the Kashyyyk Hotel\n")
		c.printf("-----------------------------\n")

		action, err := c.promptString("Choose an action (checkin, checkout, booktable, quit): ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return fmt.Errorf("read action: %w", err)
		}

		opCtx := hotel.NewContextWithOperationID(ctx, uuid.NewString())

		switch strings.ToLower(action) {
		case "checkin":
			err = c.runCheckIn(opCtx)
		case "checkout":
			err = c.runCheckOut(opCtx)
		case "booktable":
			err = c.runBookTable(opCtx)
		case "quit":
			return nil
		default:
			c.printf("Action '%v' not recognised\n", action)
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return err
		}
	}
}

func (c *CLI) printf(format string, v ...any) {
	fmt.Fprintf(c.out, format, v...)
}
