package service

import (
	"context"
	"testing"

	"github.com/haierkeys/link-moodboard-service/internal/dao"
	"github.com/haierkeys/link-moodboard-service/internal/domain"
	"github.com/haierkeys/link-moodboard-service/internal/dto"
	"github.com/haierkeys/link-moodboard-service/internal/model"
	pkgapp "github.com/haierkeys/link-moodboard-service/pkg/app"
	"github.com/haierkeys/link-moodboard-service/pkg/code"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakePreview 返回固定元数据或固定错误的 PreviewService
type fakePreview struct {
	meta *dto.PreviewDTO
	err  error
}

func (f *fakePreview) Fetch(ctx context.Context, rawURL string) (*dto.PreviewDTO, error) {
	if f.err != nil {
		return nil, f.err
	}
	meta := *f.meta
	meta.URL = rawURL
	return &meta, nil
}

func newTestItemService(t *testing.T, preview PreviewService) (ItemService, domain.ItemRepository) {
	t.Helper()

	db, err := dao.NewDBEngineWithConfig(dao.DatabaseConfig{
		Type:            "sqlite",
		Path:            ":memory:",
		MaxIdleConns:    1,
		MaxOpenConns:    1,
		ConnMaxLifetime: "30m",
		ConnMaxIdleTime: "10m",
	}, nil)
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db, "Item"))

	repo := dao.NewItemRepository(dao.New(db, context.Background()))
	return NewItemService(repo, preview, zap.NewNop()), repo
}

func defaultPreview() *fakePreview {
	return &fakePreview{
		meta: &dto.PreviewDTO{
			Title:       "Fetched Title",
			Description: "Fetched Description",
			ImageURL:    "https://cdn.example.com/img.png",
			SourceURL:   "example.com",
		},
	}
}

func TestItemService_Ingest(t *testing.T) {
	svc, _ := newTestItemService(t, defaultPreview())
	ctx := context.Background()

	item, err := svc.Ingest(ctx, &dto.ItemIngestRequest{URL: "https://example.com/post"})
	require.NoError(t, err)

	assert.NotZero(t, item.ID)
	assert.Equal(t, "Fetched Title", item.Title)
	assert.Equal(t, "Fetched Description", item.Description)
	assert.Equal(t, "https://example.com/post", item.URL)
	assert.Equal(t, domain.ItemTypeLink, item.Type)
	assert.Equal(t, "", item.Note)
}

func TestItemService_IngestDuplicateConflict(t *testing.T) {
	svc, _ := newTestItemService(t, defaultPreview())
	ctx := context.Background()

	_, err := svc.Ingest(ctx, &dto.ItemIngestRequest{URL: "https://example.com/post"})
	require.NoError(t, err)

	// 完全相同的 URL 再次摄取必须报告冲突
	_, err = svc.Ingest(ctx, &dto.ItemIngestRequest{URL: "https://example.com/post"})
	assert.ErrorIs(t, err, code.ErrorItemURLExists)

	// 仅大小写不同的 URL 是不同条目
	_, err = svc.Ingest(ctx, &dto.ItemIngestRequest{URL: "https://example.com/Post"})
	assert.NoError(t, err)
}

func TestItemService_IngestExtractionFailure(t *testing.T) {
	svc, repo := newTestItemService(t, &fakePreview{err: code.ErrorPreviewFetchFailed})
	ctx := context.Background()

	_, err := svc.Ingest(ctx, &dto.ItemIngestRequest{URL: "https://unreachable.example.com/"})
	assert.ErrorIs(t, err, code.ErrorPreviewFetchFailed)

	// 抓取失败时不得写入任何条目
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestItemService_CreateSkipsExtraction(t *testing.T) {
	// 抓取服务若被调用则直接失败
	svc, _ := newTestItemService(t, &fakePreview{err: code.ErrorPreviewFetchFailed})
	ctx := context.Background()

	item, err := svc.Create(ctx, &dto.ItemCreateRequest{
		Title:       "Scraped Title",
		Description: "Scraped Description",
		ImageURL:    "https://cdn.example.com/s.png",
		URL:         "https://example.com/scraped",
		Note:        "from extension",
	})
	require.NoError(t, err)

	assert.Equal(t, "Scraped Title", item.Title)
	assert.Equal(t, domain.ItemTypeLink, item.Type)
	// source_url 由 url 派生
	assert.Equal(t, "example.com", item.SourceURL)
	assert.Equal(t, "from extension", item.Note)
}

func TestItemService_CreateInvalidURL(t *testing.T) {
	svc, repo := newTestItemService(t, defaultPreview())
	ctx := context.Background()

	for _, rawURL := range []string{"", "not a url", "ftp://example.com/x", "/relative"} {
		_, err := svc.Create(ctx, &dto.ItemCreateRequest{URL: rawURL})
		assert.ErrorIs(t, err, code.ErrorInvalidURL, "url: %q", rawURL)
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestItemService_ListNewestFirst(t *testing.T) {
	svc, _ := newTestItemService(t, defaultPreview())
	ctx := context.Background()

	for _, u := range []string{
		"https://example.com/1",
		"https://example.com/2",
		"https://example.com/3",
	} {
		_, err := svc.Ingest(ctx, &dto.ItemIngestRequest{URL: u})
		require.NoError(t, err)
	}

	list, count, err := svc.List(ctx, &pkgapp.Pager{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	require.Len(t, list, 3)
	assert.Equal(t, "https://example.com/3", list[0].URL)
	assert.Equal(t, "https://example.com/1", list[2].URL)

	// 分页
	page2, _, err := svc.List(ctx, &pkgapp.Pager{Page: 2, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "https://example.com/1", page2[0].URL)
}

func TestItemService_UpdateNoteOnly(t *testing.T) {
	svc, _ := newTestItemService(t, defaultPreview())
	ctx := context.Background()

	created, err := svc.Ingest(ctx, &dto.ItemIngestRequest{URL: "https://example.com/note"})
	require.NoError(t, err)

	updated, err := svc.UpdateNote(ctx, created.ID, &dto.ItemUpdateNoteRequest{Note: "my note"})
	require.NoError(t, err)

	assert.Equal(t, "my note", updated.Note)
	// note 以外的字段保持不变
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.URL, updated.URL)
	assert.Equal(t, created.ImageURL, updated.ImageURL)

	_, err = svc.UpdateNote(ctx, 99999, &dto.ItemUpdateNoteRequest{Note: "x"})
	assert.ErrorIs(t, err, code.ErrorItemNotFound)
}

func TestItemService_DeleteThenReingest(t *testing.T) {
	svc, _ := newTestItemService(t, defaultPreview())
	ctx := context.Background()

	created, err := svc.Ingest(ctx, &dto.ItemIngestRequest{URL: "https://example.com/cycle"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	assert.ErrorIs(t, svc.Delete(ctx, created.ID), code.ErrorItemNotFound)

	// 删除之后同一 URL 可重新摄取
	again, err := svc.Ingest(ctx, &dto.ItemIngestRequest{URL: "https://example.com/cycle"})
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, again.ID)
}
