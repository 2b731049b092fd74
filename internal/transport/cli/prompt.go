package cli

import (
	"strconv"
	"strings"
)

func (c *CLI) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

func (c *CLI) promptString(prompt string) (string, error) {
	c.printf("%s", prompt)

	return c.readLine()
}

// promptInt re-prompts until the guest enters an integer in [min, max].
func (c *CLI) promptInt(prompt string, min, max int) (int, error) {
	for {
		line, err := c.promptString(prompt)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(line)
		if err != nil || n < min || n > max {
			c.printf("Please enter a number between %d and %d\n", min, max)

			continue
		}

		return n, nil
	}
}

func (c *CLI) promptFloat(prompt string) (float64, error) {
	for {
		line, err := c.promptString(prompt)
		if err != nil {
			return 0, err
		}

		f, err := strconv.ParseFloat(line, 64)
		if err != nil {
			c.printf("Please enter an amount\n")

			continue
		}

		return f, nil
	}
}

// promptYesNo re-prompts until the guest answers Y or N, case-insensitive.
func (c *CLI) promptYesNo(prompt string) (bool, error) {
	for {
		line, err := c.promptString(prompt)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
	}
}
