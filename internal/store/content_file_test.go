// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileContentStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileContentStorage(t.TempDir(), logger.Nop())
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, "u1/d1.txt", strings.NewReader("hello"), 5, "text/plain"))

	rc, err := s.Get(ctx, "u1/d1.txt")
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "hello", string(body))

	require.NoError(t, s.Delete(ctx, "u1/d1.txt"))
	_, err = s.Get(ctx, "u1/d1.txt")
	assert.ErrorIs(t, err, ErrContentNotFound)

	// deleting twice is fine
	assert.NoError(t, s.Delete(ctx, "u1/d1.txt"))
}

func TestFileContentStorage_RejectsEscapingKeys(t *testing.T) {
	s, err := NewFileContentStorage(t.TempDir(), logger.Nop())
	require.NoError(t, err)

	for _, key := range []string{"", "../x", "/etc/passwd", "a/../../b"} {
		err := s.Put(context.Background(), key, strings.NewReader("x"), 1, "")
		assert.ErrorIs(t, err, ErrStoringContent, key)
	}
}
