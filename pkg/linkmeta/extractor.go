// Package linkmeta 链接元数据抓取与页面解析
package linkmeta

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/pkg/errors"
)

// 候选链全部落空时使用的占位文案
const (
	NoTitle       = "No title available"
	NoDescription = "No description available"
	NoImage       = "No image available"
)

var (
	// ErrInvalidURL 非绝对 http(s) 地址
	ErrInvalidURL = errors.New("invalid url: only absolute http(s) urls are accepted")
	// ErrFetchFailed 页面不可达、超时、非 2xx 或响应体不可解析
	ErrFetchFailed = errors.New("fetch failed")
)

// Metadata 抓取得到的页面元数据
type Metadata struct {
	Title       string
	Description string
	ImageURL    string
	URL         string
	SourceURL   string
}

// Extractor 通过单次 GET 请求抓取页面元数据
type Extractor struct {
	client      *http.Client
	userAgent   string
	maxBodySize int64
}

// NewExtractor 创建 Extractor
// timeout 约束整个请求，maxBodySize 约束读取的响应体大小
func NewExtractor(timeout time.Duration, userAgent string, maxBodySize int64) *Extractor {
	if maxBodySize <= 0 {
		maxBodySize = 5 * 1024 * 1024
	}
	return &Extractor{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent:   userAgent,
		maxBodySize: maxBodySize,
	}
}

// ValidateURL 校验 rawURL 是否为绝对 http(s) 地址，返回解析结果
func ValidateURL(rawURL string) (*url.URL, error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, ErrInvalidURL
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, ErrInvalidURL
	}
	return parsed, nil
}

// Extract fetches the page once and evaluates the metadata candidate
// chains. The input URL is stored unmodified; SourceURL is the hostname.
// Extract 单次抓取页面并按候选链求值元数据。
// 输入 URL 原样保留，SourceURL 取其主机名。
func (e *Extractor) Extract(ctx context.Context, rawURL string) (*Metadata, error) {
	parsed, err := ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}

	meta := &Metadata{
		URL:       rawURL,
		SourceURL: parsed.Hostname(),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return nil, errors.Wrap(ErrFetchFailed, err.Error())
	}
	if e.userAgent != "" {
		req.Header.Set("User-Agent", e.userAgent)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(ErrFetchFailed, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Wrapf(ErrFetchFailed, "unexpected status %d", resp.StatusCode)
	}

	// 目标本身是图片时，图片地址即输入 URL
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "image/") {
		meta.Title = NoTitle
		meta.Description = NoDescription
		meta.ImageURL = rawURL
		return meta, nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, e.maxBodySize))
	if err != nil {
		return nil, errors.Wrap(ErrFetchFailed, err.Error())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(ErrFetchFailed, err.Error())
	}

	// readability 解析失败只影响兜底候选项，不影响整体抓取
	article, articleErr := readability.FromReader(bytes.NewReader(body), parsed)

	meta.Title = First(NoTitle,
		metaContent(doc, `meta[property="og:title"]`),
		func() string { return doc.Find("title").First().Text() },
		func() string {
			if articleErr != nil {
				return ""
			}
			return article.Title
		},
	)

	meta.Description = First(NoDescription,
		metaContent(doc, `meta[property="og:description"]`),
		metaContent(doc, `meta[name="description"]`),
		func() string {
			if articleErr != nil {
				return ""
			}
			return article.Excerpt
		},
	)

	meta.ImageURL = First(NoImage,
		metaContent(doc, `meta[property="og:image"]`),
		metaContent(doc, `meta[name="twitter:image"]`),
		func() string {
			if articleErr != nil {
				return ""
			}
			return article.Image
		},
	)

	return meta, nil
}

// metaContent 返回读取指定 meta 标签 content 属性的候选项
func metaContent(doc *goquery.Document, selector string) Candidate {
	return func() string {
		content, _ := doc.Find(selector).First().Attr("content")
		return content
	}
}
