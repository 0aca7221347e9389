package linkmeta

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor() *Extractor {
	return NewExtractor(5*time.Second, "moodboard-test", 0)
}

func TestExtract_InvalidURL(t *testing.T) {
	e := newTestExtractor()

	tests := []string{
		"",
		"not a url",
		"ftp://example.com/file",
		"/relative/path",
		"example.com",
	}

	for _, rawURL := range tests {
		_, err := e.Extract(context.Background(), rawURL)
		assert.ErrorIs(t, err, ErrInvalidURL, "url: %q", rawURL)
	}
}

func TestExtract_OpenGraphTags(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<html><head>
			<title>Plain Title</title>
			<meta property="og:title" content="OG Title">
			<meta property="og:description" content="OG Description">
			<meta property="og:image" content="https://cdn.example.com/img.png">
		</head><body></body></html>`))
	}))
	defer ts.Close()

	e := newTestExtractor()
	meta, err := e.Extract(context.Background(), ts.URL)
	require.NoError(t, err)

	assert.Equal(t, "OG Title", meta.Title)
	assert.Equal(t, "OG Description", meta.Description)
	assert.Equal(t, "https://cdn.example.com/img.png", meta.ImageURL)
	assert.Equal(t, ts.URL, meta.URL)
}

func TestExtract_FallbackChain(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<html><head>
			<title>Document Title</title>
			<meta name="description" content="Meta Description">
			<meta name="twitter:image" content="https://cdn.example.com/tw.png">
		</head><body></body></html>`))
	}))
	defer ts.Close()

	e := newTestExtractor()
	meta, err := e.Extract(context.Background(), ts.URL)
	require.NoError(t, err)

	// og 标签缺失时退回次级候选
	assert.Equal(t, "Document Title", meta.Title)
	assert.Equal(t, "Meta Description", meta.Description)
	assert.Equal(t, "https://cdn.example.com/tw.png", meta.ImageURL)
}

func TestExtract_EmptyPageUsesPlaceholders(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<html><head></head><body></body></html>`))
	}))
	defer ts.Close()

	e := newTestExtractor()
	meta, err := e.Extract(context.Background(), ts.URL)
	require.NoError(t, err)

	assert.Equal(t, NoTitle, meta.Title)
	assert.Equal(t, NoDescription, meta.Description)
	assert.Equal(t, NoImage, meta.ImageURL)
}

func TestExtract_ImageContentType(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte{0x89, 0x50, 0x4E, 0x47})
	}))
	defer ts.Close()

	e := newTestExtractor()
	meta, err := e.Extract(context.Background(), ts.URL)
	require.NoError(t, err)

	// 目标是图片时 image 即输入地址本身
	assert.Equal(t, ts.URL, meta.ImageURL)
	assert.Equal(t, NoTitle, meta.Title)
	assert.Equal(t, NoDescription, meta.Description)
}

func TestExtract_Non2xxStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer ts.Close()

	e := newTestExtractor()
	_, err := e.Extract(context.Background(), ts.URL)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestExtract_UnreachableHost(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // 立即关闭，制造连接失败

	e := newTestExtractor()
	_, err := e.Extract(context.Background(), ts.URL)
	assert.ErrorIs(t, err, ErrFetchFailed)
}

func TestExtract_SourceURLIsHostname(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><head><title>t</title></head></html>`))
	}))
	defer ts.Close()

	e := newTestExtractor()
	meta, err := e.Extract(context.Background(), ts.URL+"/some/page?a=1")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", meta.SourceURL)
	assert.Equal(t, ts.URL+"/some/page?a=1", meta.URL)
}

func TestExtract_UserAgentSent(t *testing.T) {
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html></html>`))
	}))
	defer ts.Close()

	e := NewExtractor(5*time.Second, "LinkMoodboardBot/1.0", 0)
	_, err := e.Extract(context.Background(), ts.URL)
	require.NoError(t, err)

	assert.Equal(t, "LinkMoodboardBot/1.0", gotUA)
}
