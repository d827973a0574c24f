package services

import (
	"errors"
	"testing"

	"github.com/bizlingo/bizlingo-be/internal/apperror"
	"github.com/bizlingo/bizlingo-be/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContentService(t *testing.T) *ContentService {
	t.Helper()
	return NewContentService(newTestDB(t), &stubNotifier{})
}

func sampleContent(productName string) models.MarketingContent {
	price := 1999.0
	return models.MarketingContent{
		OwnerID:             "user-1",
		BusinessDescription: "Handwoven sarees from Kanchipuram.",
		ProductName:         productName,
		Price:               &price,
		SelectedLanguage:    models.LanguageHindi,
		ContentType:         models.ContentTypeCaption,
		GeneratedText:       "✨ पेश है " + productName + "!",
		Keywords:            []string{"saree", "handloom"},
	}
}

func TestSaveAndListContent(t *testing.T) {
	svc := newTestContentService(t)

	saved, err := svc.SaveContent(sampleContent("Silk Saree"))
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	contents, err := svc.GetAllContent()
	require.NoError(t, err)
	require.Len(t, contents, 1)

	got := contents[0]
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "Silk Saree", got.ProductName)
	assert.Equal(t, []string{"saree", "handloom"}, got.Keywords)
	require.NotNil(t, got.Price)
	assert.Equal(t, 1999.0, *got.Price)
	assert.Nil(t, got.Rating)
}

func TestSaveContentValidation(t *testing.T) {
	svc := newTestContentService(t)

	_, err := svc.SaveContent(sampleContent("  "))
	assert.True(t, errors.Is(err, apperror.ErrValidation))

	empty := sampleContent("Silk Saree")
	empty.GeneratedText = ""
	_, err = svc.SaveContent(empty)
	assert.True(t, errors.Is(err, apperror.ErrValidation))
}

func TestDeleteContentRemovesExactlyOne(t *testing.T) {
	svc := newTestContentService(t)

	first, err := svc.SaveContent(sampleContent("First"))
	require.NoError(t, err)
	second, err := svc.SaveContent(sampleContent("Second"))
	require.NoError(t, err)
	third, err := svc.SaveContent(sampleContent("Third"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteContent(second.ID, "user-1"))

	contents, err := svc.GetAllContent()
	require.NoError(t, err)
	require.Len(t, contents, 2)

	// The survivors keep their order and content.
	ids := []string{contents[0].ID, contents[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, third.ID)
	assert.NotContains(t, ids, second.ID)
}

func TestDeleteContentUnknownIDIsNoOp(t *testing.T) {
	svc := newTestContentService(t)

	saved, err := svc.SaveContent(sampleContent("Silk Saree"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteContent("missing-id", "user-1"))

	contents, err := svc.GetAllContent()
	require.NoError(t, err)
	require.Len(t, contents, 1)
	assert.Equal(t, saved.ID, contents[0].ID)
}

func TestSaveContentStartsUnrated(t *testing.T) {
	svc := newTestContentService(t)

	rating := 99
	content := sampleContent("Silk Saree")
	content.Rating = &rating

	saved, err := svc.SaveContent(content)
	require.NoError(t, err)
	assert.Nil(t, saved.Rating)

	contents, err := svc.GetAllContent()
	require.NoError(t, err)
	require.Len(t, contents, 1)
	assert.Nil(t, contents[0].Rating, "a rating on save must not be persisted")
}

func TestRateContentClampsOutOfRangeValues(t *testing.T) {
	svc := newTestContentService(t)

	saved, err := svc.SaveContent(sampleContent("Silk Saree"))
	require.NoError(t, err)

	require.NoError(t, svc.RateContent(saved.ID, 9, "user-1"))
	contents, err := svc.GetAllContent()
	require.NoError(t, err)
	require.NotNil(t, contents[0].Rating)
	assert.Equal(t, 5, *contents[0].Rating)

	require.NoError(t, svc.RateContent(saved.ID, -3, "user-1"))
	contents, err = svc.GetAllContent()
	require.NoError(t, err)
	assert.Equal(t, 1, *contents[0].Rating)

	require.NoError(t, svc.RateContent(saved.ID, 4, "user-1"))
	contents, err = svc.GetAllContent()
	require.NoError(t, err)
	assert.Equal(t, 4, *contents[0].Rating)
}

func TestRateContentUnknownIDIsNoOp(t *testing.T) {
	svc := newTestContentService(t)

	assert.NoError(t, svc.RateContent("missing-id", 3, "user-1"))
}

func TestDeleteAndRateNotifyActingUser(t *testing.T) {
	notifier := &stubNotifier{}
	svc := NewContentService(newTestDB(t), notifier)

	saved, err := svc.SaveContent(sampleContent("Silk Saree"))
	require.NoError(t, err)

	require.NoError(t, svc.RateContent(saved.ID, 5, "user-1"))
	require.NoError(t, svc.DeleteContent(saved.ID, "user-1"))

	require.Len(t, notifier.targets, 3)
	for _, target := range notifier.targets {
		assert.Equal(t, "user-1", target, "notifications must be addressed, not global")
	}
}
