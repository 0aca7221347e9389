package linkmeta

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrape(t *testing.T) {
	tests := []struct {
		name          string
		html          string
		pageURL       string
		explicitImage string
		want          *ScrapedPage
	}{
		{
			name: "og tags",
			html: `<html><head>
				<title>Page Title</title>
				<meta property="og:image" content="https://cdn.example.com/og.png">
				<meta property="og:description" content="OG Desc">
			</head><body></body></html>`,
			pageURL: "https://example.com/post/1",
			want: &ScrapedPage{
				Title:       "Page Title",
				URL:         "https://example.com/post/1",
				ImageURL:    "https://cdn.example.com/og.png",
				Description: "OG Desc",
				Type:        TypeLink,
				SourceURL:   "example.com",
			},
		},
		{
			name:          "explicit image wins over og",
			html:          `<html><head><meta property="og:image" content="https://cdn.example.com/og.png"></head></html>`,
			pageURL:       "https://example.com/",
			explicitImage: "https://cdn.example.com/picked.jpg",
			want: &ScrapedPage{
				URL:       "https://example.com/",
				ImageURL:  "https://cdn.example.com/picked.jpg",
				Type:      TypeLink,
				SourceURL: "example.com",
			},
		},
		{
			name: "first large image",
			html: `<html><body>
				<img src="https://example.com/icon.png" width="32" height="32">
				<img src="https://example.com/banner.jpg" width="640" height="480">
				<img src="https://example.com/another.jpg" width="800" height="600">
			</body></html>`,
			pageURL: "https://example.com/gallery",
			want: &ScrapedPage{
				URL:       "https://example.com/gallery",
				ImageURL:  "https://example.com/banner.jpg",
				Type:      TypeLink,
				SourceURL: "example.com",
			},
		},
		{
			name: "small images ignored",
			html: `<html><body>
				<img src="https://example.com/icon.png" width="32" height="32">
				<img src="https://example.com/wide.png" width="640" height="20">
			</body></html>`,
			pageURL: "https://example.com/",
			want: &ScrapedPage{
				URL:       "https://example.com/",
				Type:      TypeLink,
				SourceURL: "example.com",
			},
		},
		{
			name: "meta description fallback",
			html: `<html><head>
				<meta name="description" content="Plain Meta Desc">
			</head></html>`,
			pageURL: "https://example.com/",
			want: &ScrapedPage{
				URL:         "https://example.com/",
				Description: "Plain Meta Desc",
				Type:        TypeLink,
				SourceURL:   "example.com",
			},
		},
		{
			name:    "empty document stays well-formed",
			html:    ``,
			pageURL: "https://example.com/empty",
			want: &ScrapedPage{
				URL:       "https://example.com/empty",
				Type:      TypeLink,
				SourceURL: "example.com",
			},
		},
		{
			name:    "unparsable page url keeps empty source",
			html:    `<html><head><title>T</title></head></html>`,
			pageURL: "://bad",
			want: &ScrapedPage{
				Title: "T",
				URL:   "://bad",
				Type:  TypeLink,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scrape(strings.NewReader(tt.html), tt.pageURL, tt.explicitImage)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScrape_NoteAlwaysEmpty(t *testing.T) {
	got := Scrape(strings.NewReader("<html></html>"), "https://example.com/", "")
	assert.Equal(t, "", got.Note)
	assert.Equal(t, TypeLink, got.Type)
}
