package cli

import (
	"context"
	"time"
)

const clearScreen = "\x1b[H\x1b[2J"

// runWatch выводит сетку и перерисовывает ее по расписанию обновления.
// Сигналы cron приходят через канал, загрузка и вывод выполняются
// только в этом цикле.
func (c *Cli) runWatch(ctx context.Context, args []string) error {
	resources, err := parseResources(args, c.schedule.Limits())
	if err != nil {
		return err
	}

	ticks, stop, err := c.ticker(c.opts.RefreshCron)
	if err != nil {
		return err
	}
	defer stop()

	if err := c.redraw(ctx, resources); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticks:
			c.schedule.Refresh(ctx)
			if err := c.redraw(ctx, resources); err != nil {
				return err
			}
		}
	}
}

func (c *Cli) redraw(ctx context.Context, resources []int) error {
	if c.color() {
		c.io.Printf("%s", clearScreen)
	}
	if err := c.render(ctx, resources); err != nil {
		return err
	}
	c.io.Printf("Updated %s, schedule %q. Press Ctrl+C to stop.\n", c.now().Format(time.TimeOnly), c.opts.RefreshCron)
	return nil
}
