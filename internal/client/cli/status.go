package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/bookgrid/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Booking Status ===")
	c.io.Println()

	// Pending загружает удаленные данные, если это еще не сделано
	pending := c.schedule.Pending(ctx)

	info, err := c.schedule.LastFetch(ctx)
	switch {
	case errors.Is(err, storage.ErrFetchInfoNotFound):
		c.io.Println("Last fetch: never")
	case err != nil:
		return fmt.Errorf("failed to get fetch info: %w", err)
	default:
		c.io.Printf("Last fetch: %s from %s (%s)\n",
			info.FetchedAt.Local().Format(time.RFC3339), sourceLabel(info.Source), plural(info.Records, "record"))
	}

	semester := c.schedule.Semester()
	c.io.Printf("Semester:   %s, %d weeks\n", semester.Start.Format("2006-01-02"), semester.Weeks)
	if c.opts.Namespace != "" {
		c.io.Printf("Overlay:    %s\n", c.opts.Namespace)
	}
	if c.schedule.CanPush() {
		c.io.Println("Write-back: enabled")
	} else {
		c.io.Println("Write-back: disabled")
	}

	c.io.Println()
	if len(pending) == 0 {
		c.io.Println("✓ No pending local edits")
		return nil
	}

	c.io.Printf("⚠️  Pending local edits: %d\n", len(pending))
	for _, edit := range pending {
		c.io.Printf("  table %d  week %2d  %s  -> %s\n", edit.ResourceID, edit.Week, edit.Day, edit.Status)
	}
	c.io.Println("Run 'bookgrid sync' to push them to the server.")

	return nil
}
