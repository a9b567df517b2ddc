package fetcher

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// applyMetadata 는 OpenGraph 메타 태그를 우선 사용한다.
// 비어 있는 항목은 readability, trafilatura, <title> 순서로 채운다.
func applyMetadata(doc *Document, rawHTML, pageURL string) {
	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return
	}

	q := goquery.NewDocumentFromNode(root)
	doc.Title = metaContent(q, "og:title")
	doc.Description = metaContent(q, "og:description")
	doc.Image = metaContent(q, "og:image")
	if price := metaContent(q, "product:price:amount"); price != "" {
		if v, err := strconv.ParseFloat(strings.ReplaceAll(price, ",", ""), 64); err == nil {
			doc.Price = v
		}
	}
	if metadataComplete(doc) {
		return
	}

	base, _ := url.Parse(pageURL)
	if article, err := readability.FromDocument(root, base); err == nil {
		fillMissing(doc, article.Title, article.Excerpt, article.Image)
	}
	if !metadataComplete(doc) {
		if res, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{OriginalURL: base}); err == nil && res != nil {
			fillMissing(doc, res.Metadata.Title, res.Metadata.Description, res.Metadata.Image)
		}
	}
	if doc.Title == "" {
		doc.Title = strings.TrimSpace(q.Find("title").First().Text())
	}
}

func metadataComplete(doc *Document) bool {
	return doc.Title != "" && doc.Description != "" && doc.Image != ""
}

func fillMissing(doc *Document, title, description, image string) {
	if doc.Title == "" {
		doc.Title = strings.TrimSpace(title)
	}
	if doc.Description == "" {
		doc.Description = strings.TrimSpace(description)
	}
	if doc.Image == "" {
		doc.Image = strings.TrimSpace(image)
	}
}

func metaContent(q *goquery.Document, property string) string {
	sel := q.Find(`meta[property="` + property + `"]`).First()
	if sel.Length() == 0 {
		sel = q.Find(`meta[name="` + property + `"]`).First()
	}
	v, _ := sel.Attr("content")
	return strings.TrimSpace(v)
}
