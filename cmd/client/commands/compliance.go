// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/parse-guard/models"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// complianceFlags are shared by create and update.
type complianceFlags struct {
	title       string
	description string
	status      string
	priority    string
	risk        string
	due         string

	clearRisk bool
	clearDue  bool
}

func (f *complianceFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.title, "title", "", "item title")
	flags.StringVar(&f.description, "description", "", "item description")
	flags.StringVar(&f.status, "status", "", "pending, in_progress or completed")
	flags.StringVar(&f.priority, "priority", "", "low, medium or high")
	flags.StringVar(&f.risk, "risk", "", "risk level: low, medium or high")
	flags.StringVar(&f.due, "due", "", "due date, "+dateLayout)
}

func parseDue(raw string) (*time.Time, error) {
	due, err := time.ParseInLocation(dateLayout, strings.TrimSpace(raw), time.UTC)
	if err != nil {
		return nil, fmt.Errorf("due date must look like %s", dateLayout)
	}
	return &due, nil
}

func (f *complianceFlags) createDto() (models.CreateComplianceDto, error) {
	dto := models.CreateComplianceDto{
		Title:       strings.TrimSpace(f.title),
		Description: f.description,
		Status:      models.ComplianceStatus(f.status),
		Priority:    models.Priority(f.priority),
		RiskLevel:   models.RiskLevel(f.risk),
	}
	if f.due != "" {
		due, err := parseDue(f.due)
		if err != nil {
			return dto, err
		}
		dto.DueDate = due
	}
	return dto, nil
}

// updateDto carries only the flags set on the command line.
func (f *complianceFlags) updateDto(flags *pflag.FlagSet) (models.UpdateComplianceDto, error) {
	var dto models.UpdateComplianceDto

	if flags.Changed("title") {
		dto.Title = &f.title
	}
	if flags.Changed("description") {
		dto.Description = &f.description
	}
	if flags.Changed("status") {
		status := models.ComplianceStatus(f.status)
		dto.Status = &status
	}
	if flags.Changed("priority") {
		priority := models.Priority(f.priority)
		dto.Priority = &priority
	}
	if flags.Changed("risk") {
		risk := models.RiskLevel(f.risk)
		dto.RiskLevel = &risk
	}
	if flags.Changed("due") {
		due, err := parseDue(f.due)
		if err != nil {
			return dto, err
		}
		dto.DueDate = due
	}
	dto.ClearRiskLevel = f.clearRisk
	dto.ClearDueDate = f.clearDue

	return dto, nil
}

func (c *cli) complianceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "compliance",
		Aliases: []string{"c"},
		Short:   "Manage compliance items",
	}

	cmd.AddCommand(
		c.complianceListCmd(),
		c.complianceGetCmd(),
		c.complianceCreateCmd(),
		c.complianceUpdateCmd(),
		c.complianceDeleteCmd(),
	)

	return cmd
}

func (c *cli) complianceListCmd() *cobra.Command {
	var status, priority string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List compliance items",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := c.signedIn(cmd)
			if err != nil {
				return err
			}

			items, err := services.ComplianceService.List(cmd.Context(), models.ComplianceFilter{
				Status:   models.ComplianceStatus(status),
				Priority: models.Priority(priority),
			})
			if err != nil {
				return err
			}
			if items == nil {
				items = []models.ComplianceItem{}
			}

			return c.print(cmd, items, func(w io.Writer) {
				printComplianceTable(w, items)
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "only items with this status")
	cmd.Flags().StringVar(&priority, "priority", "", "only items with this priority")

	return cmd
}

func (c *cli) complianceGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a compliance item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := c.signedIn(cmd)
			if err != nil {
				return err
			}

			item, err := services.ComplianceService.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return c.print(cmd, item, func(w io.Writer) {
				printComplianceItem(w, item)
			})
		},
	}
}

func (c *cli) complianceCreateCmd() *cobra.Command {
	var f complianceFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a compliance item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dto, err := f.createDto()
			if err != nil {
				return err
			}

			services, err := c.signedIn(cmd)
			if err != nil {
				return err
			}

			item, err := services.ComplianceService.Create(cmd.Context(), dto)
			if err != nil {
				return err
			}

			return c.print(cmd, item, func(w io.Writer) {
				printComplianceItem(w, item)
			})
		},
	}

	f.register(cmd.Flags())
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func (c *cli) complianceUpdateCmd() *cobra.Command {
	var f complianceFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a compliance item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dto, err := f.updateDto(cmd.Flags())
			if err != nil {
				return err
			}
			if dto.IsEmpty() {
				return fmt.Errorf("nothing to update, set at least one field flag")
			}

			services, err := c.signedIn(cmd)
			if err != nil {
				return err
			}

			item, err := services.ComplianceService.Update(cmd.Context(), args[0], dto)
			if err != nil {
				return err
			}

			return c.print(cmd, item, func(w io.Writer) {
				printComplianceItem(w, item)
			})
		},
	}

	f.register(cmd.Flags())
	cmd.Flags().BoolVar(&f.clearRisk, "clear-risk", false, "remove the risk level")
	cmd.Flags().BoolVar(&f.clearDue, "clear-due", false, "remove the due date")
	cmd.MarkFlagsMutuallyExclusive("risk", "clear-risk")
	cmd.MarkFlagsMutuallyExclusive("due", "clear-due")

	return cmd
}

func (c *cli) complianceDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a compliance item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := c.signedIn(cmd)
			if err != nil {
				return err
			}

			if !yes {
				answer, err := c.prompt(cmd, fmt.Sprintf("Delete %s? [y/N]: ", args[0]))
				if err != nil {
					return err
				}
				if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
					return nil
				}
			}

			if err = services.ComplianceService.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	return cmd
}
