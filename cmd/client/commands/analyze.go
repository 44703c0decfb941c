// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/parse-guard/internal/service"
	"github.com/MKhiriev/parse-guard/internal/tui"
	"github.com/MKhiriev/parse-guard/models"
	"github.com/spf13/cobra"
)

// maxAnalyzeInput bounds what is read from a file or stdin.
const maxAnalyzeInput = 1 << 20

func readInput(cmd *cobra.Command, args []string) (string, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(io.LimitReader(r, maxAnalyzeInput+1))
	if err != nil {
		return "", err
	}
	if len(data) > maxAnalyzeInput {
		return "", fmt.Errorf("input is larger than %d bytes", maxAnalyzeInput)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", errors.New("nothing to analyze")
	}
	return text, nil
}

func (c *cli) analyzeCmd() *cobra.Command {
	var markdown, save, saveItems bool

	cmd := &cobra.Command{
		Use:   "analyze [file|-]",
		Short: "Analyze a document for compliance topics and risks",
		Long:  "Analyze a document read from a file, or from stdin when the file is \"-\" or omitted.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			services, err := c.signedIn(cmd)
			if err != nil {
				return err
			}
			analyzer := services.AnalyzerService

			analysis, err := analyzer.Analyze(cmd.Context(), text)
			if err != nil {
				return err
			}

			if err = c.printAnalysis(cmd, analysis, markdown); err != nil {
				return err
			}

			now := time.Now()
			if save {
				doc, err := analyzer.SaveAsDocument(cmd.Context(), text, analysis, now)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Saved document %q (%s)\n", doc.Title, doc.ID)
			}
			if saveItems {
				for _, suggestion := range analysis.SuggestedItems {
					item, err := analyzer.SaveSuggestedItem(cmd.Context(), suggestion, now)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.ErrOrStderr(), "Created compliance item %q (%s)\n", item.Title, item.ID)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&markdown, "markdown", false, "print raw Markdown instead of rendering it")
	cmd.Flags().BoolVar(&save, "save", false, "save the text and the analysis as a document")
	cmd.Flags().BoolVar(&saveItems, "save-items", false, "create a compliance item for every suggestion")

	return cmd
}

func (c *cli) printAnalysis(cmd *cobra.Command, analysis models.DocumentAnalysis, markdown bool) error {
	if c.output == outputJSON {
		return c.print(cmd, analysis, nil)
	}

	md := tui.AnalysisMarkdown(analysis)
	if !markdown {
		md = tui.RenderMarkdown(md, 0)
	}
	_, err := io.WriteString(cmd.OutOrStdout(), md)
	return err
}

func (c *cli) assessRiskCmd() *cobra.Command {
	var title, description string

	cmd := &cobra.Command{
		Use:   "assess-risk [id]",
		Short: "Assess the risk of a compliance item or of a title and description",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && strings.TrimSpace(title) == "" {
				return errors.New("either an item id or --title is required")
			}

			services, err := c.signedIn(cmd)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				item, err := services.ComplianceService.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				title, description = item.Title, item.Description
			}

			assessment, err := services.AnalyzerService.AssessRisk(cmd.Context(), title, description)
			if err != nil {
				return err
			}

			return c.print(cmd, assessment, func(w io.Writer) {
				fmt.Fprintf(w, "Risk level:\t%s\n", assessment.RiskLevel)
				fmt.Fprintf(w, "Risk score:\t%s\n", service.FormatConfidence(assessment.RiskScore))
				for _, factor := range assessment.Factors {
					fmt.Fprintf(w, "Factor:\t%s\n", factor)
				}
				for _, rec := range assessment.Recommendations {
					fmt.Fprintf(w, "Recommendation:\t%s\n", rec)
				}
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "title to assess")
	cmd.Flags().StringVar(&description, "description", "", "description to assess")

	return cmd
}
