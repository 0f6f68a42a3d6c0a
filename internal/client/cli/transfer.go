package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

func (c *Cli) runExport(ctx context.Context, args []string) error {
	if len(args) == 0 {
		_, err := c.admin.Export(ctx, c.io)
		return err
	}

	f, err := os.OpenFile(args[0], os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	n, err := c.admin.Export(ctx, f)
	if err != nil {
		return err
	}

	c.io.Printf("✓ Exported %s to %s\n", plural(n, "edit"), args[0])
	return nil
}

func (c *Cli) runImport(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("missing file. Usage: bookgrid import <file>")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	n, err := c.admin.Import(ctx, f)
	if err != nil {
		return err
	}

	c.io.Printf("✓ Imported %s from %s\n", plural(n, "edit"), args[0])
	return nil
}

func (c *Cli) runClear(ctx context.Context, args []string) error {
	if !hasFlag(args, "-y", "--yes") {
		answer, err := c.io.ReadInput("Discard all local edits? [y/N]: ")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
		default:
			c.io.Println("Aborted")
			return nil
		}
	}

	if err := c.admin.Clear(ctx); err != nil {
		return err
	}

	c.io.Println("✓ Local edits cleared")
	return nil
}

func (c *Cli) runICS(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("missing file. Usage: bookgrid ics <file>")
	}

	f, err := os.OpenFile(args[0], os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	n, err := c.admin.ExportICS(ctx, f, c.schedule.View(ctx), c.schedule.Semester())
	if err != nil {
		return err
	}

	c.io.Printf("✓ Exported %s to %s\n", plural(n, "booked day"), args[0])
	return nil
}
