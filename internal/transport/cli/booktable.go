package cli

import (
	"context"
	"fmt"

	"github.com/kashyyyk/hotel/internal/hotel"
)

func (c *CLI) runBookTable(ctx context.Context) error {
	id, err := c.promptString("In order to book a table, please enter your booking ID: ")
	if err != nil {
		return err
	}

	bookings, err := c.manager.Bookings(ctx)
	if err != nil {
		return fmt.Errorf("load bookings: %w", err)
	}

	var booking *hotel.Booking

	for i := range bookings {
		if bookings[i].ID == id {
			booking = &bookings[i]

			break
		}
	}

	if booking == nil {
		c.printf("Sorry, that is an invalid booking ID, you cannot book a table.\n")

		return nil
	}

	if booking.Board == hotel.BedBreakfast {
		c.printf("Sorry, you are booked in for Bed & Breakfast, meaning you cannot book a dinner table.\n")

		return nil
	}

	if booking.HasTable() {
		return c.offerCancel(ctx, booking)
	}

	free, err := c.manager.FreeTableSlots(ctx)
	if err != nil {
		return fmt.Errorf("list free tables: %w", err)
	}

	if len(free) == 0 {
		c.printf("Sorry, all tables are fully booked.\n")

		return nil
	}

	for {
		choice, err := c.chooseTable(free)
		if err != nil {
			return err
		}

		c.printf("You have selected: %v at %d:00pm\n", choice.Table.Name(), choice.Hour+12)

		confirmed, err := c.promptYesNo("Would you like to confirm your booking? (Y/N) ")
		if err != nil {
			return err
		}

		if !confirmed {
			continue
		}

		booked, err := c.manager.BookTable(ctx, id, choice)
		if validationErr := hotel.IsValidationError(err); validationErr != nil {
			c.printf("%v\n", validationErr)

			continue
		}

		if err != nil {
			return fmt.Errorf("book table: %w", err)
		}

		c.printf(
			"Successfully booked a table for %v at %d:00pm\n",
			booked.TableNum.Name(), booked.TableSlot+12,
		)

		return nil
	}
}

func (c *CLI) chooseTable(free []hotel.TableChoice) (hotel.TableChoice, error) {
	c.printf("Available tables: \n-----------------\n")

	for i, choice := range free {
		c.printf("%d: %-8v | %d:00pm | Serves 4\n", i+1, choice.Table.Name(), choice.Hour+12)
	}

	c.printf("\n")

	prompt := fmt.Sprintf("Please select the table you want (1-%d): ", len(free))

	idx, err := c.promptInt(prompt, 1, len(free))
	if err != nil {
		return hotel.TableChoice{}, err
	}

	return free[idx-1], nil
}

func (c *CLI) offerCancel(ctx context.Context, booking *hotel.Booking) error {
	c.printf(
		"You currently have a table booked: %v at %d:00pm\n",
		booking.TableNum.Name(), booking.TableSlot+12,
	)

	cancel, err := c.promptYesNo("Would you like to cancel your table booking? (Y/N) ")
	if err != nil {
		return err
	}

	if !cancel {
		return nil
	}

	if _, err := c.manager.CancelTable(ctx, booking.ID); err != nil {
		return fmt.Errorf("cancel table: %w", err)
	}

	c.printf("Your table booking has been cancelled.\n")

	return nil
}
