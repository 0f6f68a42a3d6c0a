package cli

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownCommand возвращается для неизвестной команды
var ErrUnknownCommand = errors.New("unknown command")

// Run выполняет команду
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "show":
		return c.runShow(ctx, args)
	case "toggle":
		return c.runToggle(ctx, args)
	case "status":
		return c.runStatus(ctx)
	case "sync":
		return c.runSync(ctx)
	case "export":
		return c.runExport(ctx, args)
	case "import":
		return c.runImport(ctx, args)
	case "clear":
		return c.runClear(ctx, args)
	case "ics":
		return c.runICS(ctx, args)
	case "watch":
		return c.runWatch(ctx, args)
	case "help":
		PrintUsage(c.io)
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}
