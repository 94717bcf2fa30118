package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-news-kiosk/models"
)

func TestImageURL(t *testing.T) {
	tests := []struct {
		name    string
		article models.Article
		want    string
	}{
		{
			name:    "no media",
			article: models.Article{},
			want:    PlaceholderImageURL,
		},
		{
			name: "preferred format",
			article: models.Article{Media: []models.Media{{Metadata: []models.MediaMetadata{
				{URL: "thumb.jpg", Format: "Standard Thumbnail"},
				{URL: "big.jpg", Format: "mediumThreeByTwo440"},
				{URL: "mid.jpg", Format: "mediumThreeByTwo210"},
			}}}},
			want: "big.jpg",
		},
		{
			name: "falls back to last rendition",
			article: models.Article{Media: []models.Media{{Metadata: []models.MediaMetadata{
				{URL: "thumb.jpg", Format: "Standard Thumbnail"},
				{URL: "mid.jpg", Format: "mediumThreeByTwo210"},
			}}}},
			want: "mid.jpg",
		},
		{
			name:    "media without renditions",
			article: models.Article{Media: []models.Media{{Type: "image"}}},
			want:    PlaceholderImageURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ImageURL(tt.article))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exact", Truncate("exact", 5))
	assert.Equal(t, "trunc...", Truncate("truncated", 5))
	assert.Equal(t, "héll...", Truncate("héllo wörld", 4))
	assert.Equal(t, "", Truncate("", 3))
}

func TestFilterByTitle(t *testing.T) {
	articles := []models.Article{
		{ID: 1, Title: "Markets Rally on Rate Cut"},
		{ID: 2, Title: "The Election Results"},
		{ID: 3, Title: "rate of inflation slows"},
	}

	got := FilterByTitle(articles, "RATE")
	assert.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)

	assert.Len(t, FilterByTitle(articles, ""), 3)
	assert.Len(t, FilterByTitle(articles, "   "), 3)
	assert.Empty(t, FilterByTitle(articles, "weather"))
}
