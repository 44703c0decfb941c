// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/parse-guard/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldTitle       = "title"
	FieldStatus      = "status"
	FieldPriority    = "priority"
	FieldRiskLevel   = "risk_level"
	FieldDueDate     = "dueDate"
	FieldAnyUpdate   = "any_update"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldName        = "name"
	FieldContent     = "content"
	FieldText        = "text"
	FieldDescription = "description"
)

// Limits of compliance items and documents.
const (
	MaxTitleLength    = 200
	MaxNameLength     = 100
	MaxDocumentLength = 1 << 20
)

// RequestValidator validates the request DTOs accepted by the server.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateComplianceDto:
		return v.validateCreateCompliance(ctx, value, fields...)
	case *models.CreateComplianceDto:
		return v.validateCreateCompliance(ctx, *value, fields...)

	case models.UpdateComplianceDto:
		return v.validateUpdateCompliance(ctx, value, fields...)
	case *models.UpdateComplianceDto:
		return v.validateUpdateCompliance(ctx, *value, fields...)

	case models.ComplianceFilter:
		return v.validateFilter(ctx, value, fields...)
	case *models.ComplianceFilter:
		return v.validateFilter(ctx, *value, fields...)

	case models.RegisterData:
		return v.validateRegister(ctx, value, fields...)
	case *models.RegisterData:
		return v.validateRegister(ctx, *value, fields...)

	case models.LoginCredentials:
		return v.validateLogin(ctx, value, fields...)
	case *models.LoginCredentials:
		return v.validateLogin(ctx, *value, fields...)

	case models.CreateDocumentFromText:
		return v.validateDocument(ctx, value, fields...)
	case *models.CreateDocumentFromText:
		return v.validateDocument(ctx, *value, fields...)

	case models.AnalyzeRequest:
		return v.validateAnalyze(ctx, value, fields...)
	case *models.AnalyzeRequest:
		return v.validateAnalyze(ctx, *value, fields...)

	case models.RiskAssessmentRequest:
		return v.validateRiskAssessment(ctx, value, fields...)
	case *models.RiskAssessmentRequest:
		return v.validateRiskAssessment(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return fmt.Errorf("%w: max %d characters", ErrTitleTooLong, MaxTitleLength)
	}
	return nil
}

func (v *RequestValidator) validateCreateCompliance(ctx context.Context, dto models.CreateComplianceDto, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldStatus, FieldPriority, FieldRiskLevel}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if err := validateTitle(dto.Title); err != nil {
				return err
			}
		case FieldStatus:
			if dto.Status != "" && !dto.Status.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidStatus, dto.Status)
			}
		case FieldPriority:
			if dto.Priority != "" && !dto.Priority.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidPriority, dto.Priority)
			}
		case FieldRiskLevel:
			if dto.RiskLevel != "" && !dto.RiskLevel.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidRiskLevel, dto.RiskLevel)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *RequestValidator) validateUpdateCompliance(ctx context.Context, dto models.UpdateComplianceDto, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAnyUpdate, FieldTitle, FieldStatus, FieldPriority, FieldRiskLevel, FieldDueDate}
	}

	for _, f := range fields {
		switch f {
		case FieldAnyUpdate:
			if dto.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldTitle:
			if dto.Title != nil {
				if err := validateTitle(*dto.Title); err != nil {
					return err
				}
			}
		case FieldStatus:
			if dto.Status != nil && !dto.Status.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidStatus, *dto.Status)
			}
		case FieldPriority:
			if dto.Priority != nil && !dto.Priority.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidPriority, *dto.Priority)
			}
		case FieldRiskLevel:
			if dto.RiskLevel != nil && !dto.RiskLevel.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidRiskLevel, *dto.RiskLevel)
			}
			if dto.RiskLevel != nil && dto.ClearRiskLevel {
				return fmt.Errorf("%w: %s", ErrSetAndClear, FieldRiskLevel)
			}
		case FieldDueDate:
			if dto.DueDate != nil && dto.ClearDueDate {
				return fmt.Errorf("%w: %s", ErrSetAndClear, FieldDueDate)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *RequestValidator) validateFilter(ctx context.Context, filter models.ComplianceFilter, fields ...string) error {
	if filter.Status != "" && !filter.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, filter.Status)
	}
	if filter.Priority != "" && !filter.Priority.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, filter.Priority)
	}
	return nil
}

func (v *RequestValidator) validateRegister(ctx context.Context, data models.RegisterData, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if res := ValidateEmail(data.Email); !res.Valid {
				return fmt.Errorf("%w: %s", ErrInvalidEmail, res.Message)
			}
		case FieldPassword:
			if res := ValidatePassword(data.Password); !res.Valid {
				return fmt.Errorf("%w: %s", ErrInvalidPassword, res.Message)
			}
		case FieldName:
			if utf8.RuneCountInString(data.Name) > MaxNameLength {
				return ErrNameTooLong
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *RequestValidator) validateLogin(ctx context.Context, creds models.LoginCredentials, fields ...string) error {
	if res := ValidateEmail(creds.Email); !res.Valid {
		return fmt.Errorf("%w: %s", ErrInvalidEmail, res.Message)
	}
	if creds.Password == "" {
		return ErrInvalidPassword
	}
	return nil
}

func (v *RequestValidator) validateDocument(ctx context.Context, doc models.CreateDocumentFromText, fields ...string) error {
	if err := validateTitle(doc.Title); err != nil {
		return err
	}
	if strings.TrimSpace(doc.Content) == "" {
		return ErrEmptyContent
	}
	if len(doc.Content) > MaxDocumentLength {
		return fmt.Errorf("%w: max %d bytes", ErrContentTooLarge, MaxDocumentLength)
	}
	return nil
}

func (v *RequestValidator) validateAnalyze(ctx context.Context, req models.AnalyzeRequest, fields ...string) error {
	if strings.TrimSpace(req.Text) == "" {
		return ErrEmptyText
	}
	if len(req.Text) > MaxDocumentLength {
		return fmt.Errorf("%w: max %d bytes", ErrContentTooLarge, MaxDocumentLength)
	}
	return nil
}

func (v *RequestValidator) validateRiskAssessment(ctx context.Context, req models.RiskAssessmentRequest, fields ...string) error {
	return validateTitle(req.Title)
}
