package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/bookgrid/internal/client/schedule"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()

	if !c.schedule.CanPush() {
		return errors.New("write-back is disabled, nothing to push")
	}

	result, err := c.schedule.Push(ctx)
	if err != nil {
		if errors.Is(err, schedule.ErrNoRemoteWriter) {
			return errors.New("write-back is disabled, nothing to push")
		}
		return fmt.Errorf("synchronization failed: %w", err)
	}

	if result.Pushed == 0 && result.Failed == 0 {
		c.io.Println("✓ Nothing to push, local edits match the server")
		return nil
	}

	c.io.Printf("Pushed to server: %d\n", result.Pushed)
	if result.Failed > 0 {
		c.io.Printf("Failed:           %d (kept locally)\n", result.Failed)
		return fmt.Errorf("%s not pushed", plural(result.Failed, "edit"))
	}
	c.io.Println("✓ All local edits pushed")

	return nil
}
