package dao

import (
	"context"
	"testing"
	"time"

	"github.com/haierkeys/link-moodboard-service/internal/domain"
	"github.com/haierkeys/link-moodboard-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) domain.ItemRepository {
	t.Helper()

	db, err := NewDBEngineWithConfig(DatabaseConfig{
		Type:            "sqlite",
		Path:            ":memory:",
		MaxIdleConns:    1,
		MaxOpenConns:    1,
		ConnMaxLifetime: "30m",
		ConnMaxIdleTime: "10m",
	}, nil)
	require.NoError(t, err)

	require.NoError(t, model.AutoMigrate(db, "Item"))

	return NewItemRepository(New(db, context.Background()))
}

func testItem(url string) *domain.Item {
	return &domain.Item{
		Title:       "Example",
		Description: "An example page",
		ImageURL:    "https://example.com/img.png",
		URL:         url,
		Type:        domain.ItemTypeLink,
		SourceURL:   "example.com",
		Note:        "",
	}
}

func TestItemRepository_CreateAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, testItem("https://example.com/a"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.URL, byID.URL)

	byURL, err := repo.GetByURL(ctx, "https://example.com/a")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byURL.ID)
}

func TestItemRepository_DuplicateURL(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, testItem("https://example.com/dup"))
	require.NoError(t, err)

	// 唯一索引是去重守卫之后的最终防线
	_, err = repo.Create(ctx, testItem("https://example.com/dup"))
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestItemRepository_URLCaseSensitive(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, testItem("https://example.com/Page"))
	require.NoError(t, err)

	_, err = repo.GetByURL(ctx, "https://example.com/page")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestItemRepository_ListNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	urls := []string{
		"https://example.com/1",
		"https://example.com/2",
		"https://example.com/3",
	}
	for _, u := range urls {
		_, err := repo.Create(ctx, testItem(u))
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	items, err := repo.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "https://example.com/3", items[0].URL)
	assert.Equal(t, "https://example.com/2", items[1].URL)
	assert.Equal(t, "https://example.com/1", items[2].URL)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestItemRepository_UpdateNote(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, testItem("https://example.com/n"))
	require.NoError(t, err)

	require.NoError(t, repo.UpdateNote(ctx, created.ID, "keep this"))

	updated, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "keep this", updated.Note)
	// note 以外的字段不被更新
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.URL, updated.URL)

	err = repo.UpdateNote(ctx, 99999, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestItemRepository_Delete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, testItem("https://example.com/d"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = repo.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// 删除后同一 URL 可重新入库
	_, err = repo.Create(ctx, testItem("https://example.com/d"))
	assert.NoError(t, err)
}
