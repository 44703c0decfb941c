// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/parse-guard/models"
	"github.com/spf13/cobra"
)

func (c *cli) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the dashboard statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := c.signedIn(cmd)
			if err != nil {
				return err
			}

			stats, err := services.DashboardService.Stats(cmd.Context())
			if err != nil {
				return err
			}

			return c.print(cmd, stats, func(w io.Writer) {
				fmt.Fprintf(w, "Compliance items:\t%d\n", stats.TotalCompliance)
				fmt.Fprintf(w, "Documents:\t%d\n", stats.TotalDocuments)
				fmt.Fprintf(w, "Pending items:\t%d\n", stats.PendingItems)
				fmt.Fprintf(w, "High risk items:\t%d\n", stats.HighRiskItems)
			})
		},
	}
}

func (c *cli) activityCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show the recent activity feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 || limit > models.MaxActivityLimit {
				return fmt.Errorf("limit must be between 1 and %d", models.MaxActivityLimit)
			}

			services, err := c.signedIn(cmd)
			if err != nil {
				return err
			}

			items, err := services.DashboardService.Activity(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if items == nil {
				items = []models.ActivityItem{}
			}

			return c.print(cmd, items, func(w io.Writer) {
				fmt.Fprintln(w, "TIME\tTYPE\tTITLE\tDESCRIPTION")
				for _, item := range items {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
						item.Timestamp.Local().Format(time.DateTime), item.Type, item.Title, dash(item.Description))
				}
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", models.DefaultActivityLimit, "number of entries")

	return cmd
}
