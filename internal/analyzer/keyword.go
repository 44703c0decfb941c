// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package analyzer

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/parse-guard/models"
)

const (
	summarySentences = 2
	summaryMaxRunes  = 300

	baseConfidence   = 0.35
	signalConfidence = 0.1
	maxConfidence    = 0.95
)

var sentenceRegex = regexp.MustCompile(`[^.!?]+[.!?]*`)

// KeywordAnalyzer matches text against fixed topic and risk lexicons. It
// needs no network and gives the same answer for the same input.
type KeywordAnalyzer struct{}

// NewKeywordAnalyzer returns the keyword analyzer.
func NewKeywordAnalyzer() *KeywordAnalyzer {
	return &KeywordAnalyzer{}
}

func (k *KeywordAnalyzer) Analyze(_ context.Context, text string) (models.DocumentAnalysis, error) {
	analysis := models.DocumentAnalysis{
		Summary:          summarize(text),
		ComplianceTopics: make([]string, 0),
		RiskIndicators:   make([]string, 0),
		SuggestedItems:   make([]models.SuggestedItem, 0),
	}

	for _, t := range topics {
		if t.pattern.MatchString(text) {
			analysis.ComplianceTopics = append(analysis.ComplianceTopics, t.name)
		}
	}

	for _, r := range riskIndicators {
		match := r.pattern.FindString(text)
		if match == "" {
			continue
		}
		analysis.RiskIndicators = append(analysis.RiskIndicators, r.label)
		analysis.SuggestedItems = append(analysis.SuggestedItems, models.SuggestedItem{
			Title:       r.action,
			Description: fmt.Sprintf("The document mentions %q. %s.", strings.ToLower(match), r.label),
			RiskLevel:   levelForWeight(r.weight),
		})
	}

	signals := len(analysis.ComplianceTopics) + len(analysis.RiskIndicators)
	analysis.Confidence = round2(math.Min(maxConfidence, baseConfidence+signalConfidence*float64(signals)))

	return analysis, nil
}

func (k *KeywordAnalyzer) AssessRisk(_ context.Context, title, description string) (models.RiskAssessment, error) {
	text := title + "\n" + description

	var (
		sum     float64
		factors = make([]string, 0)
	)
	for _, r := range riskIndicators {
		if r.pattern.MatchString(text) {
			sum += r.weight
			factors = append(factors, r.label)
		}
	}
	for _, t := range topics {
		if t.pattern.MatchString(text) {
			factors = append(factors, "Regulated area: "+t.name)
		}
	}
	if len(factors) == 0 {
		factors = append(factors, "No risk indicators found")
	}

	score := round2(math.Min(1, sum/3))
	level := levelForScore(score)

	return models.RiskAssessment{
		RiskLevel:       level,
		RiskScore:       score,
		Factors:         factors,
		Recommendations: Recommendations(level),
	}, nil
}

// summarize returns the first sentences of text, capped in length.
func summarize(text string) string {
	sentences := make([]string, 0, summarySentences)
	for _, s := range sentenceRegex.FindAllString(text, -1) {
		s = strings.Join(strings.Fields(s), " ")
		if s == "" {
			continue
		}
		sentences = append(sentences, s)
		if len(sentences) == summarySentences {
			break
		}
	}

	summary := strings.Join(sentences, " ")
	if utf8.RuneCountInString(summary) > summaryMaxRunes {
		runes := []rune(summary)
		summary = strings.TrimSpace(string(runes[:summaryMaxRunes-1])) + "…"
	}

	return summary
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
