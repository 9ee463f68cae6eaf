package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubgrid/clubgrid-backend/internal/dto"
	"github.com/clubgrid/clubgrid-backend/internal/models"
)

func TestContentGetUnwrittenPageReturnsEmptyDefault(t *testing.T) {
	db := testDB(t)
	svc := NewContentService(db)

	page, err := svc.Get(models.SlugRuleBook)
	require.NoError(t, err)
	assert.Equal(t, models.SlugRuleBook, page.Slug)
	assert.Equal(t, "Rule Book", page.Title)
	assert.Empty(t, page.Content)

	// Repeated reads without a write stay identical.
	again, err := svc.Get(models.SlugRuleBook)
	require.NoError(t, err)
	assert.Equal(t, page, again)
}

func TestContentUpsertIsSingleton(t *testing.T) {
	db := testDB(t)
	svc := NewContentService(db)

	first, err := svc.Upsert(models.SlugPrivacyPolicy, &dto.UpsertContentRequest{Content: "<p>v1</p>"})
	require.NoError(t, err)
	assert.Equal(t, "<p>v1</p>", first.Content)

	second, err := svc.Upsert(models.SlugPrivacyPolicy, &dto.UpsertContentRequest{Content: "<p>v2</p>"})
	require.NoError(t, err)
	assert.Equal(t, "<p>v2</p>", second.Content)

	var count int64
	db.Model(&models.ContentPage{}).Where("slug = ?", models.SlugPrivacyPolicy).Count(&count)
	assert.Equal(t, int64(1), count)

	got, err := svc.Get(models.SlugPrivacyPolicy)
	require.NoError(t, err)
	assert.Equal(t, "<p>v2</p>", got.Content)
}

func TestContentUnknownSlugRejected(t *testing.T) {
	db := testDB(t)
	svc := NewContentService(db)

	_, err := svc.Get("marketing-page")
	assert.ErrorIs(t, err, ErrUnknownContentSlug)

	_, err = svc.Upsert("marketing-page", &dto.UpsertContentRequest{Content: "x"})
	assert.ErrorIs(t, err, ErrUnknownContentSlug)
}
