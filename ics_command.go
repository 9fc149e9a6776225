package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/llehouerou/weddingstory/internal/calendar"
)

func newICSCommand(ctx *commandContext) *cobra.Command {
	var dir string
	var toStdout bool

	cmd := &cobra.Command{
		Use:   "ics",
		Short: "Save the wedding day as a calendar (.ics) file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			inv, err := ctx.ensureContent()
			if err != nil {
				return err
			}

			event := calendar.FromContent(inv.Event)
			now := time.Now()
			if toStdout {
				_, err := cmd.OutOrStdout().Write(calendar.ICS(event, now))
				return err
			}

			if dir == "" {
				dir = cfg.ExportDir()
			}
			path, err := calendar.Export(dir, inv.Event.FileName, event, now)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory to write the file to (default: calendar.export_dir or Downloads)")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Print the calendar payload instead of writing a file")
	return cmd
}
