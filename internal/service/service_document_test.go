package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/MKhiriev/parse-guard/internal/logger"
	"github.com/MKhiriev/parse-guard/internal/mock"
	"github.com/MKhiriev/parse-guard/internal/store"
	"github.com/MKhiriev/parse-guard/internal/validators"
	"github.com/MKhiriev/parse-guard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type documentMocks struct {
	repo     *mock.MockDocumentRepository
	content  *mock.MockContentStorage
	activity *mock.MockActivityRepository
	cache    *mock.MockStatsCache
}

func newTestDocumentService(t *testing.T, ctrl *gomock.Controller) (DocumentService, documentMocks) {
	t.Helper()
	rec, activity, statsCache := newTestRecorder(t, ctrl)
	repo := mock.NewMockDocumentRepository(ctrl)
	content := mock.NewMockContentStorage(ctrl)

	svc := NewDocumentService(repo, content, validators.NewRequestValidator(), &sequentialIDs{}, rec, logger.Nop())
	return svc, documentMocks{repo: repo, content: content, activity: activity, cache: statsCache}
}

func TestDocumentService_CreateFromText_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestDocumentService(t, ctrl)
	ctx := context.Background()
	body := "All vendors must sign a DPA."

	gomock.InOrder(
		m.content.EXPECT().Put(ctx, "u1/id-1.txt", gomock.Any(), int64(len(body)), models.MimeTypeText).DoAndReturn(
			func(_ context.Context, _ string, r io.Reader, _ int64, _ string) error {
				got, err := io.ReadAll(r)
				require.NoError(t, err)
				assert.Equal(t, body, string(got))
				return nil
			},
		),
		m.repo.EXPECT().Create(ctx, models.Document{
			ID:       "id-1",
			UserID:   "u1",
			Title:    "Vendor policy",
			FilePath: "u1/id-1.txt",
			FileSize: int64(len(body)),
			MimeType: models.MimeTypeText,
		}).DoAndReturn(func(_ context.Context, d models.Document) (models.Document, error) { return d, nil }),
		m.activity.EXPECT().Add(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, items ...models.ActivityItem) error {
				assert.Equal(t, models.ActivityDocumentCreated, items[0].Type)
				assert.Equal(t, "Vendor policy", items[0].Title)
				return nil
			},
		),
		m.cache.EXPECT().Invalidate(ctx, "u1").Return(nil),
	)

	doc, err := svc.CreateFromText(ctx, "u1", models.CreateDocumentFromText{Title: " Vendor policy ", Content: body})
	require.NoError(t, err)
	assert.Equal(t, "id-1", doc.ID)
}

func TestDocumentService_CreateFromText_RemovesContentWhenInsertFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestDocumentService(t, ctrl)
	boom := errors.New("insert failed")

	m.content.EXPECT().Put(gomock.Any(), "u1/id-1.txt", gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Document{}, boom)
	m.content.EXPECT().Delete(gomock.Any(), "u1/id-1.txt").Return(nil)

	_, err := svc.CreateFromText(context.Background(), "u1", models.CreateDocumentFromText{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, boom)
}

func TestDocumentService_CreateFromText_ContentStoreFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestDocumentService(t, ctrl)

	m.content.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(store.ErrStoringContent)

	_, err := svc.CreateFromText(context.Background(), "u1", models.CreateDocumentFromText{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, store.ErrStoringContent)
}

func TestDocumentService_CreateFromText_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestDocumentService(t, ctrl)

	_, err := svc.CreateFromText(context.Background(), "u1", models.CreateDocumentFromText{Title: "t", Content: "  "})
	assert.ErrorIs(t, err, validators.ErrEmptyContent)

	_, err = svc.CreateFromText(context.Background(), "u1", models.CreateDocumentFromText{Content: "c"})
	assert.ErrorIs(t, err, validators.ErrEmptyTitle)
}

func TestDocumentService_Content(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestDocumentService(t, ctrl)

	doc := models.Document{ID: "d1", UserID: "u1", FilePath: "u1/d1.txt"}
	m.repo.EXPECT().Get(gomock.Any(), "u1", "d1").Return(doc, nil)
	m.content.EXPECT().Get(gomock.Any(), "u1/d1.txt").Return(io.NopCloser(strings.NewReader("hello")), nil)

	got, body, err := svc.Content(context.Background(), "u1", "d1")
	require.NoError(t, err)
	defer body.Close()

	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(raw))
	assert.Equal(t, doc, got)
}

func TestDocumentService_Content_NotOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, m := newTestDocumentService(t, ctrl)

	m.repo.EXPECT().Get(gomock.Any(), "u2", "d1").Return(models.Document{}, store.ErrDocumentNotFound)

	_, body, err := svc.Content(context.Background(), "u2", "d1")
	assert.ErrorIs(t, err, store.ErrDocumentNotFound)
	assert.Nil(t, body)
}
