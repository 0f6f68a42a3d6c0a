package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/bookgrid/internal/grid"
	"github.com/iudanet/bookgrid/internal/models"
)

func (c *Cli) runShow(ctx context.Context, args []string) error {
	resources, err := parseResources(args, c.schedule.Limits())
	if err != nil {
		return err
	}
	return c.render(ctx, resources)
}

// render выводит сетки столов, источник данных и число ожидающих правок
func (c *Cli) render(ctx context.Context, resources []int) error {
	for i, id := range resources {
		g, err := c.schedule.Grid(ctx, id)
		if err != nil {
			return err
		}
		if i > 0 {
			c.io.Println()
		}

		title := fmt.Sprintf("Table %d  (booked: %d)", id, g.Count(models.StatusBooked))
		if err := grid.Render(c.io, g, grid.RenderOptions{Title: title, Color: c.color()}); err != nil {
			return fmt.Errorf("failed to render grid: %w", err)
		}
	}

	c.io.Println()
	c.io.Printf("Source: %s\n", sourceLabel(c.schedule.Source()))
	if pending := c.schedule.PendingCount(ctx); pending > 0 {
		c.io.Printf("Pending local edits: %d (run 'bookgrid sync' to push)\n", pending)
	}

	return nil
}

func sourceLabel(name string) string {
	if name == "" {
		return "none (all sources unavailable, showing local edits only)"
	}
	return name
}
