package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/llehouerou/weddingstory/internal/calendar"
	"github.com/llehouerou/weddingstory/internal/share"
)

func newLinksCommand(ctx *commandContext) *cobra.Command {
	var withQR bool

	cmd := &cobra.Command{
		Use:   "links",
		Short: "Print the share, map and calendar links",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inv, err := ctx.ensureContent()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			rows := [][2]string{
				{"Invitation", inv.ThankYou.ShareLink},
				{"WhatsApp", share.WhatsAppURL(inv.ThankYou.ShareText, inv.ThankYou.ShareLink)},
				{"Map", share.MapsURL(inv.Venue.MapsQuery)},
				{"Calendar", calendar.GoogleURL(calendar.FromContent(inv.Event))},
			}
			for _, r := range rows {
				if r[1] == "" {
					continue
				}
				fmt.Fprintf(out, "%-11s %s\n", r[0]+":", r[1])
			}

			if withQR {
				return printQR(out, inv.ThankYou.ShareLink)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withQR, "qr", false, "Also print a QR code of the invitation link")
	return cmd
}

func printQR(out io.Writer, link string) error {
	qr, err := share.QR(link)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "\n%s\n", qr)
	return err
}
