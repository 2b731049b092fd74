package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kashyyyk/hotel/internal/hotel"
)

func (c *CLI) runCheckOut(ctx context.Context) error {
	id, err := c.promptString("Please enter your booking ID: ")
	if err != nil {
		return err
	}

	mealsEaten, err := c.promptInt("How many meals have you had? ", 0, 1<<30)
	if err != nil {
		return err
	}

	bill, err := c.manager.PrepareBill(ctx, id, mealsEaten)
	if errors.Is(err, hotel.ErrUnknownBookingID) {
		c.printf("Invalid booking ID\n")

		return nil
	}

	if errors.Is(err, hotel.ErrCorruptRecord) {
		c.printf("error: data has been corrupted\n")

		return fmt.Errorf("prepare bill: %w", err)
	}

	if err != nil {
		return fmt.Errorf("prepare bill: %w", err)
	}

	c.printBill(bill)

	for {
		prompt := fmt.Sprintf("Please enter the total bill (%v%.2f): ", c.conf.Currency, bill.Total)

		tendered, err := c.promptFloat(prompt)
		if err != nil {
			return err
		}

		_, err = c.manager.CheckOut(ctx, id, mealsEaten, tendered)
		if errors.Is(err, hotel.ErrWrongAmount) {
			continue
		}

		if err != nil {
			return fmt.Errorf("check out: %w", err)
		}

		c.printf("\nThank you for staying at the Kashyyyk Hotel!\n")

		return nil
	}
}

func (c *CLI) printBill(bill *hotel.Bill) {
	c.printf("\nBill:\n")
	c.printf("%v\n", strings.Repeat("-", len(bill.GuestName)+12))
	c.printf("Name      | %v\n", bill.GuestName)
	c.printf("User ID   | %v\n", bill.BookingID)
	c.printf("Guests    | %d adults, %d children\n", bill.Adults, bill.Children)
	c.printf("Room      | %v%.2f", c.conf.Currency, bill.RoomCost)

	if bill.SeniorDiscount {
		c.printf(" (with 10%% discount for guests over 65)")
	}

	c.printf("\n")

	if bill.BoardCost > 0 {
		c.printf("Meals     | %v%.2f\n", c.conf.Currency, bill.BoardCost)
	}

	if bill.PaperCost > 0 {
		c.printf("Newspaper | %v%.2f\n", c.conf.Currency, bill.PaperCost)
	}

	c.printf("Total     | %v%.2f\n", c.conf.Currency, bill.Total)
}
