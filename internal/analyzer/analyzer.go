// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package analyzer turns free text into a compliance analysis and scores the
// risk of a single compliance item.
//
// Two backends exist: a deterministic keyword analyzer and a Gemini backed
// one. When an API key is configured the Gemini analyzer is used and the
// keyword analyzer serves as its fallback.
package analyzer

import (
	"context"
	"errors"

	"github.com/MKhiriev/parse-guard/internal/config"
	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/models"
)

//go:generate mockgen -source=analyzer.go -destination=../mock/analyzer_mock.go -package=mock

// MaxTextRunes is the longest input passed to a backend. Longer input is
// truncated by [Truncate].
const MaxTextRunes = 50_000

var (
	// ErrEmptyResponse is returned when a model answers with no usable JSON.
	ErrEmptyResponse = errors.New("model returned no analysis")
)

// Analyzer is implemented by every backend.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (models.DocumentAnalysis, error)
	AssessRisk(ctx context.Context, title, description string) (models.RiskAssessment, error)
}

// New builds the analyzer selected by cfg.
func New(ctx context.Context, cfg config.AI, log *logger.Logger) (Analyzer, error) {
	keyword := NewKeywordAnalyzer()
	if cfg.APIKey == "" {
		log.Info().Msg("no AI key configured, using keyword analyzer")
		return keyword, nil
	}

	gemini, err := NewGeminiAnalyzer(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Info().Str("model", cfg.Model).Msg("using gemini analyzer")

	return NewFallbackAnalyzer(gemini, keyword, log), nil
}

// Truncate cuts text to at most MaxTextRunes runes.
func Truncate(text string) string {
	if len(text) <= MaxTextRunes {
		return text
	}

	runes := []rune(text)
	if len(runes) <= MaxTextRunes {
		return text
	}
	return string(runes[:MaxTextRunes])
}

// fallbackAnalyzer answers with secondary whenever primary fails.
type fallbackAnalyzer struct {
	primary   Analyzer
	secondary Analyzer
	logger    *logger.Logger
}

// NewFallbackAnalyzer chains two analyzers.
func NewFallbackAnalyzer(primary, secondary Analyzer, log *logger.Logger) Analyzer {
	return &fallbackAnalyzer{primary: primary, secondary: secondary, logger: log}
}

func (f *fallbackAnalyzer) Analyze(ctx context.Context, text string) (models.DocumentAnalysis, error) {
	analysis, err := f.primary.Analyze(ctx, text)
	if err == nil {
		return analysis, nil
	}
	if ctx.Err() != nil {
		return models.DocumentAnalysis{}, ctx.Err()
	}

	logger.FromContext(ctx).Warn().Err(err).Str("func", "*fallbackAnalyzer.Analyze").Msg("primary analyzer failed, falling back")
	return f.secondary.Analyze(ctx, text)
}

func (f *fallbackAnalyzer) AssessRisk(ctx context.Context, title, description string) (models.RiskAssessment, error) {
	assessment, err := f.primary.AssessRisk(ctx, title, description)
	if err == nil {
		return assessment, nil
	}
	if ctx.Err() != nil {
		return models.RiskAssessment{}, ctx.Err()
	}

	logger.FromContext(ctx).Warn().Err(err).Str("func", "*fallbackAnalyzer.AssessRisk").Msg("primary analyzer failed, falling back")
	return f.secondary.AssessRisk(ctx, title, description)
}
