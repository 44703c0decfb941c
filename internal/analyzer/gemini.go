// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package analyzer

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/MKhiriev/parse-guard/internal/config"
	"github.com/MKhiriev/parse-guard/models"
	"github.com/tidwall/gjson"
	"google.golang.org/genai"
)

const systemInstruction = `You are a regulatory compliance analyst. ` +
	`Answer with a single JSON object and nothing else. Do not use Markdown.`

const analyzePrompt = `Analyze the document below for regulatory compliance.
Return JSON with these fields:
  "summary": string, at most two sentences,
  "compliance_topics": array of strings such as "GDPR", "HIPAA", "SOX", "PCI DSS",
  "risk_indicators": array of short strings,
  "suggested_items": array of {"title": string, "description": string, "risk_level": "low"|"medium"|"high"},
  "confidence": number between 0 and 1.

Document:
"""
%s
"""`

const assessPrompt = `Assess the compliance risk of the item below.
Return JSON with these fields:
  "risk_level": "low"|"medium"|"high",
  "risk_score": number between 0 and 1,
  "factors": array of short strings,
  "recommendations": array of short strings.

Title: %s
Description: %s`

// generator produces raw model output for a prompt.
type generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// genaiGenerator calls the Gemini API.
type genaiGenerator struct {
	client *genai.Client
	model  string
}

func (g *genaiGenerator) Generate(ctx context.Context, system, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType:  "application/json",
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	return resp.Text(), nil
}

// GeminiAnalyzer asks a Gemini model for the analysis and reads the answer
// leniently with gjson.
type GeminiAnalyzer struct {
	gen     generator
	timeout time.Duration
}

// NewGeminiAnalyzer creates the Gemini client.
func NewGeminiAnalyzer(ctx context.Context, cfg config.AI) (*GeminiAnalyzer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GeminiAnalyzer{
		gen:     &genaiGenerator{client: client, model: cfg.Model},
		timeout: cfg.Timeout,
	}, nil
}

func (g *GeminiAnalyzer) Analyze(ctx context.Context, text string) (models.DocumentAnalysis, error) {
	raw, err := g.generate(ctx, fmt.Sprintf(analyzePrompt, text))
	if err != nil {
		return models.DocumentAnalysis{}, err
	}

	return parseAnalysis(raw)
}

func (g *GeminiAnalyzer) AssessRisk(ctx context.Context, title, description string) (models.RiskAssessment, error) {
	raw, err := g.generate(ctx, fmt.Sprintf(assessPrompt, title, description))
	if err != nil {
		return models.RiskAssessment{}, err
	}

	return parseAssessment(raw)
}

func (g *GeminiAnalyzer) generate(ctx context.Context, prompt string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	raw, err := g.gen.Generate(ctx, systemInstruction, prompt)
	if err != nil {
		return "", err
	}

	body := extractJSON(raw)
	if body == "" {
		return "", ErrEmptyResponse
	}
	return body, nil
}

// extractJSON returns the outermost JSON object in s, ignoring code fences
// and prose around it.
func extractJSON(s string) string {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return ""
	}

	body := s[start : end+1]
	if !gjson.Valid(body) {
		return ""
	}
	return body
}

func parseAnalysis(body string) (models.DocumentAnalysis, error) {
	res := gjson.Parse(body)

	analysis := models.DocumentAnalysis{
		Summary:          strings.TrimSpace(res.Get("summary").String()),
		ComplianceTopics: stringArray(res.Get("compliance_topics")),
		RiskIndicators:   stringArray(res.Get("risk_indicators")),
		SuggestedItems:   make([]models.SuggestedItem, 0),
		Confidence:       clamp01(res.Get("confidence").Float()),
	}

	res.Get("suggested_items").ForEach(func(_, item gjson.Result) bool {
		title := strings.TrimSpace(item.Get("title").String())
		if title == "" {
			return true
		}
		level := models.RiskLevel(strings.ToLower(item.Get("risk_level").String()))
		if !level.Valid() {
			level = models.RiskMedium
		}
		analysis.SuggestedItems = append(analysis.SuggestedItems, models.SuggestedItem{
			Title:       title,
			Description: strings.TrimSpace(item.Get("description").String()),
			RiskLevel:   level,
		})
		return true
	})

	if analysis.Summary == "" && len(analysis.ComplianceTopics) == 0 && len(analysis.RiskIndicators) == 0 {
		return models.DocumentAnalysis{}, ErrEmptyResponse
	}

	return analysis, nil
}

func parseAssessment(body string) (models.RiskAssessment, error) {
	res := gjson.Parse(body)

	scoreField := res.Get("risk_score")
	level := models.RiskLevel(strings.ToLower(res.Get("risk_level").String()))
	if !scoreField.Exists() && !level.Valid() {
		return models.RiskAssessment{}, ErrEmptyResponse
	}

	score := clamp01(scoreField.Float())
	if !level.Valid() {
		level = levelForScore(score)
	}

	assessment := models.RiskAssessment{
		RiskLevel:       level,
		RiskScore:       score,
		Factors:         stringArray(res.Get("factors")),
		Recommendations: stringArray(res.Get("recommendations")),
	}
	if len(assessment.Recommendations) == 0 {
		assessment.Recommendations = Recommendations(level)
	}

	return assessment, nil
}

func stringArray(res gjson.Result) []string {
	out := make([]string, 0)
	for _, v := range res.Array() {
		if s := strings.TrimSpace(v.String()); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func clamp01(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return math.Max(0, math.Min(1, f))
}
