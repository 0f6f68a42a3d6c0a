package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/bookgrid/internal/calendar"
)

const toggleUsage = "Usage: bookgrid toggle <table> <week> <day> | bookgrid toggle <table> --date YYYY-MM-DD"

func (c *Cli) runToggle(ctx context.Context, args []string) error {
	semester := c.schedule.Semester()

	key, err := parseKey(args, semester, c.schedule.Limits())
	if err != nil {
		return err
	}

	result, err := c.schedule.Toggle(ctx, key)
	if err != nil {
		return fmt.Errorf("toggle failed: %w", err)
	}

	date := semester.DateForCell(key.Week, key.Day)
	c.io.Printf("Table %d, week %d, %s (%s): %s\n",
		key.ResourceID, key.Week, key.Day, date.Format(calendar.DateLayout), result.Record.Status)

	switch {
	case result.Pushed:
		c.io.Println("✓ Saved to server")
	case result.RemoteErr != nil:
		c.io.Printf("⚠️  Saved locally; server update failed: %v\n", result.RemoteErr)
		c.io.Println("Run 'bookgrid sync' to retry.")
	default:
		c.io.Println("Saved locally (write-back disabled)")
	}

	return nil
}
