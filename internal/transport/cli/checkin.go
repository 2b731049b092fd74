package cli

import (
	"context"
	"fmt"

	"github.com/kashyyyk/hotel/internal/dates"
	"github.com/kashyyyk/hotel/internal/hotel"
)

func (c *CLI) promptName(prompt string) (string, error) {
	for {
		name, err := c.promptString(prompt)
		if err != nil {
			return "", err
		}

		if hotel.ValidName(name) {
			return name, nil
		}

		c.printf("Only letters, spaces and hyphens are allowed\n")
	}
}

func (c *CLI) promptDOB() (string, error) {
	for {
		dob, err := c.promptString("Please enter your date of birth (DD/MM/YYYY): ")
		if err != nil {
			return "", err
		}

		if err := dates.ValidateDOB(dob, dates.Today()); err != nil {
			c.printf("%v\n", err)

			continue
		}

		return dob, nil
	}
}

func (c *CLI) promptBoard() (hotel.BoardType, error) {
	c.printf("\nAvailable board types:\n--------------------\n")
	c.printf("1: Full-Board (FB)      | %v20 per person, per day\n", c.conf.Currency)
	c.printf("2: Half-Board (HB)      | %v15 per person, per day\n", c.conf.Currency)
	c.printf("3: Bed & Breakfast (BB) | %v5  per person, per day\n", c.conf.Currency)

	choice, err := c.promptInt("Select a board type (1-3): ", 1, 3)
	if err != nil {
		return "", err
	}

	boards := []hotel.BoardType{hotel.FullBoard, hotel.HalfBoard, hotel.BedBreakfast}

	return boards[choice-1], nil
}

func (c *CLI) promptGuests() (adults, children int, err error) {
	for {
		c.printf("\nA room can have a maximum of %d guests\n", hotel.MaxGuests)

		adults, err = c.promptInt("How many adults will be staying? ", 0, hotel.MaxGuests)
		if err != nil {
			return 0, 0, err
		}

		children, err = c.promptInt("How many children will be staying? ", 0, hotel.MaxGuests)
		if err != nil {
			return 0, 0, err
		}

		if total := adults + children; total >= 1 && total <= hotel.MaxGuests {
			return adults, children, nil
		}
	}
}

func (c *CLI) promptRoom(freeRooms []int) (int, error) {
	c.printf("\nHere are the available rooms:\n-----------------------------\n")

	for _, room := range freeRooms {
		c.printf("Room %d | %v%d per day\n", room, c.conf.Currency, hotel.RoomPrice(room))
	}

	for {
		room, err := c.promptInt(fmt.Sprintf("Please select a room %v: ", freeRooms), 1, hotel.NumRooms)
		if err != nil {
			return 0, err
		}

		for _, free := range freeRooms {
			if free == room {
				return room, nil
			}
		}

		c.printf("Room %d is not available\n", room)
	}
}

func (c *CLI) gatherCheckIn(freeRooms []int) (*hotel.CheckInInput, error) {
	input := &hotel.CheckInInput{}

	var err error

	if input.FirstName, err = c.promptName("Please enter your first name: "); err != nil {
		return nil, err
	}

	if input.LastName, err = c.promptName("Please enter your last name: "); err != nil {
		return nil, err
	}

	c.printf("\n")

	if input.DOB, err = c.promptDOB(); err != nil {
		return nil, err
	}

	if input.Board, err = c.promptBoard(); err != nil {
		return nil, err
	}

	c.printf("\n")

	prompt := fmt.Sprintf("How many days will you be staying? (1-%d) ", c.conf.MaxStayDays)
	if input.StayDays, err = c.promptInt(prompt, 1, c.conf.MaxStayDays); err != nil {
		return nil, err
	}

	if input.Adults, input.Children, err = c.promptGuests(); err != nil {
		return nil, err
	}

	if input.RoomNum, err = c.promptRoom(freeRooms); err != nil {
		return nil, err
	}

	c.printf("\n")

	if input.Newspaper, err = c.promptYesNo("Would you like to receive a newspaper each morning? (Y/N) "); err != nil {
		return nil, err
	}

	return input, nil
}

func (c *CLI) printSummary(input *hotel.CheckInInput) {
	c.printf("\nYour information:\n-----------------\n")
	c.printf("First Name    | %v\n", input.FirstName)
	c.printf("Last Name     | %v\n", input.LastName)
	c.printf("Date of Birth | %v\n", input.DOB)
	c.printf("Board Type    | %v\n", input.Board)
	c.printf("Room Number   | %d\n", input.RoomNum)
	c.printf("Stay length   | %d days\n", input.StayDays)
	c.printf("No. Adults    | %d\n", input.Adults)
	c.printf("No. Children  | %d\n", input.Children)
	c.printf("Newspaper     | %v\n", yesNo(input.Newspaper))
	c.printf("\n")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}

	return "No"
}

func (c *CLI) runCheckIn(ctx context.Context) error {
	freeRooms, err := c.manager.FreeRooms(ctx)
	if err != nil {
		return fmt.Errorf("list free rooms: %w", err)
	}

	if len(freeRooms) == 0 {
		c.printf("Sorry, there are no rooms available at the moment.\n")

		return nil
	}

	for {
		input, err := c.gatherCheckIn(freeRooms)
		if err != nil {
			return err
		}

		c.printSummary(input)

		confirmed, err := c.promptYesNo("Confirm your booking? (Y/N) ")
		if err != nil {
			return err
		}

		if !confirmed {
			continue
		}

		booking, err := c.manager.CheckIn(ctx, input)
		if validationErr := hotel.IsValidationError(err); validationErr != nil {
			for _, msgs := range validationErr.Fields() {
				for _, msg := range msgs {
					c.printf("%v\n", msg)
				}
			}

			continue
		}

		if err != nil {
			return fmt.Errorf("check in: %w", err)
		}

		c.printf("\nHere is your booking id: %v\n", booking.ID)
		c.printf("Do not forget it, you will need it to book a table and to check out\n")
		c.printf("Check-in was successful!\n")

		return nil
	}
}
