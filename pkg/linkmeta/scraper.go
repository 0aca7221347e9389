package linkmeta

import (
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/haierkeys/link-moodboard-service/pkg/convert"
)

// TypeLink 页面抓取结果的条目类型
const TypeLink = "link"

// ScrapedPage 页面就地抓取结果，可直接作为创建条目的载荷
type ScrapedPage struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
	Type        string `json:"type"`
	SourceURL   string `json:"source_url"`
	Note        string `json:"note"`
}

// Scrape parses an already-loaded document without network access.
// The result is always well-formed: parse failures yield empty-string
// fields, never an error.
// Scrape 解析已加载的文档，不做任何网络访问。
// 结果总是完整的：解析失败产生空串字段，而不是错误。
func Scrape(r io.Reader, pageURL string, explicitImageURL string) *ScrapedPage {
	page := &ScrapedPage{
		URL:  pageURL,
		Type: TypeLink,
		Note: "",
	}

	if parsed, err := url.Parse(pageURL); err == nil {
		page.SourceURL = parsed.Hostname()
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return page
	}

	page.Title = strings.TrimSpace(doc.Find("title").First().Text())

	page.ImageURL = First("",
		func() string { return explicitImageURL },
		metaContent(doc, `meta[property="og:image"]`),
		func() string { return firstLargeImage(doc) },
	)

	page.Description = First("",
		metaContent(doc, `meta[property="og:description"]`),
		metaContent(doc, `meta[name="description"]`),
	)

	return page
}

// firstLargeImage 返回首个宽高声明均大于 100 的 <img> 地址
func firstLargeImage(doc *goquery.Document) string {
	var src string
	doc.Find("img").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		width := convert.StrTo(s.AttrOr("width", "")).MustInt()
		height := convert.StrTo(s.AttrOr("height", "")).MustInt()
		if width > 100 && height > 100 {
			src = s.AttrOr("src", "")
			return false
		}
		return true
	})
	return src
}
