// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package commands

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/parse-guard/internal/service"
	"github.com/MKhiriev/parse-guard/models"
	"github.com/spf13/cobra"
)

const (
	outputText = "text"
	outputJSON = "json"
)

var errNotSignedIn = errors.New("not signed in, run \"parseguard login\" first")

const dateLayout = "2006-01-02"

// print writes v as JSON or calls text to render it.
func (c *cli) print(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	out := cmd.OutOrStdout()
	if c.output == outputJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	text(tw)
	return tw.Flush()
}

// requireSession restores the persisted session; protected commands call
// it first.
func requireSession(cmd *cobra.Command, env *Env) (models.Session, error) {
	session, err := env.Client.Services().AuthService.Restore(cmd.Context())
	if err != nil {
		return models.Session{}, errNotSignedIn
	}
	return session, nil
}

// signedIn opens the runtime and requires a session.
func (c *cli) signedIn(cmd *cobra.Command) (*service.ClientServices, error) {
	env, err := c.client(cmd.Context())
	if err != nil {
		return nil, err
	}
	if _, err = requireSession(cmd, env); err != nil {
		return nil, err
	}
	return env.Client.Services(), nil
}

// prompt reads one line from the command's input.
func (c *cli) prompt(cmd *cobra.Command, label string) (string, error) {
	if c.stdin == nil {
		c.stdin = bufio.NewReader(cmd.InOrStdin())
	}

	fmt.Fprint(cmd.ErrOrStderr(), label)
	line, err := c.stdin.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", fmt.Errorf("reading %s: %w", strings.TrimSuffix(label, ": "), err)
	}
	return strings.TrimSpace(line), nil
}

func formatDue(due *time.Time) string {
	if due == nil {
		return "-"
	}
	return due.Format(dateLayout)
}

func dash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func printComplianceTable(w io.Writer, items []models.ComplianceItem) {
	fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tPRIORITY\tRISK\tDUE")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			item.ID, item.Title, item.Status, item.Priority, dash(string(item.RiskLevel)), formatDue(item.DueDate))
	}
}

func printComplianceItem(w io.Writer, item models.ComplianceItem) {
	fmt.Fprintf(w, "ID:\t%s\n", item.ID)
	fmt.Fprintf(w, "Title:\t%s\n", item.Title)
	fmt.Fprintf(w, "Description:\t%s\n", dash(item.Description))
	fmt.Fprintf(w, "Status:\t%s\n", item.Status)
	fmt.Fprintf(w, "Priority:\t%s\n", item.Priority)
	fmt.Fprintf(w, "Risk level:\t%s\n", dash(string(item.RiskLevel)))
	fmt.Fprintf(w, "Due date:\t%s\n", formatDue(item.DueDate))
	fmt.Fprintf(w, "Created:\t%s\n", item.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Updated:\t%s\n", item.UpdatedAt.Format(time.RFC3339))
}
