package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/soc-tools/testudo/internal/catalog"
)

// Departments scans the department index page for listing links. Each
// anchor pointing at the schedule-of-classes endpoint yields one
// Department: the code is the anchor's label, the title is the text
// between the anchor and the next line break. Anchors with no terminating
// <br> are not emitted. Duplicates are passed through untouched, in
// document order.
func Departments(page string) []catalog.Department {
	departments := make([]catalog.Department, 0)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return departments
	}

	doc.Find("a").Each(func(i int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || !strings.HasPrefix(strings.ToLower(href), "soc") {
			return
		}

		// The title runs from the anchor to the terminating <br>.
		var title strings.Builder
		for n := sel.Get(0).NextSibling; n != nil; n = n.NextSibling {
			if n.Type == html.ElementNode && strings.EqualFold(n.Data, "br") {
				departments = append(departments, catalog.Department{
					Code:  catalog.CleanText(sel.Text()),
					Title: catalog.CleanText(title.String()),
				})
				return
			}
			if n.Type == html.TextNode {
				title.WriteString(n.Data)
			}
		}
	})

	return departments
}
