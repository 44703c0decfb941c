// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Document is stored document metadata. The content itself lives in object
// storage under FilePath.
type Document struct {
	ID         string          `json:"id"`
	UserID     string          `json:"userId"`
	Title      string          `json:"title"`
	FilePath   string          `json:"filePath,omitempty"`
	FileSize   int64           `json:"fileSize,omitempty"`
	MimeType   string          `json:"mimeType,omitempty"`
	AIAnalysis json.RawMessage `json:"aiAnalysis,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// CreateDocumentFromText is the body of POST /api/documents/text.
type CreateDocumentFromText struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// MimeTypeText is the content type of documents created from text.
const MimeTypeText = "text/plain; charset=utf-8"
