package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_WriteHeader(t *testing.T) {
	tests := []struct {
		name       string
		statuses   []int
		wantStatus int
	}{
		{name: "single call", statuses: []int{http.StatusCreated}, wantStatus: http.StatusCreated},
		{name: "second call ignored", statuses: []int{http.StatusNotFound, http.StatusOK}, wantStatus: http.StatusNotFound},
		{name: "no content", statuses: []int{http.StatusNoContent}, wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rw := newResponseWriter(rec)

			for _, s := range tt.statuses {
				rw.WriteHeader(s)
			}

			assert.Equal(t, tt.wantStatus, rw.Status())
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestResponseWriter_Write(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	n1, err := rw.Write([]byte(`{"id":`))
	require.NoError(t, err)
	n2, err := rw.Write([]byte(`"c-1"}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rw.status, "implicit 200 on first write")
	assert.Equal(t, n1+n2, rw.size)
	assert.Equal(t, `{"id":"c-1"}`, rec.Body.String())
}

func TestResponseWriter_StatusWithoutWrites(t *testing.T) {
	rw := newResponseWriter(httptest.NewRecorder())

	assert.Equal(t, http.StatusOK, rw.Status())
	assert.Zero(t, rw.size)
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	require.NoError(t, http.NewResponseController(rw).Flush())
	assert.True(t, rec.Flushed)
}
