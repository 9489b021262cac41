package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

func (c *CLI) newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Self-update to the latest version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.selfUpdate()
		},
	}
}

func (c *CLI) selfUpdate() error {
	v := c.version
	if v == "dev" {
		v = "0.0.0"
	}

	updater, err := selfupdate.NewUpdater(selfupdate.Config{})
	if err != nil {
		return err
	}

	latest, found, err := updater.DetectLatest(context.Background(), selfupdate.ParseSlug("Ericyuu1/NER"))
	if err != nil {
		return fmt.Errorf("detect latest version: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found")
	}

	if latest.LessOrEqual(v) {
		fmt.Printf("Already up to date (%s)\n", c.version)
		return nil
	}

	slog.Info("Updating", "from", c.version, "to", latest.Version())

	exe, err := os.Executable()
	if err != nil {
		return err
	}

	if err := updater.UpdateTo(context.Background(), latest, exe); err != nil {
		return fmt.Errorf("update: %w", err)
	}

	fmt.Printf("Updated to %s\n", latest.Version())
	return nil
}
