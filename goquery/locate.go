// Package goquery implements bbref.RosterParser using goquery.
//
// baseball-reference.com ships many of its tables inside HTML comments and
// un-comments them with JavaScript, so table lookup falls back to parsing
// comment nodes when the table is not part of the live document.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// FindTable returns the table with the given id, searching inside HTML
// comments when it is not in the document proper. Returns nil if no such
// table exists.
func FindTable(doc *goquery.Document, id string) *goquery.Selection {
	if table := findTableByID(doc.Selection, id); table != nil {
		return table
	}
	return findTableInComments(doc.Selection, id)
}

func findTableByID(sel *goquery.Selection, id string) *goquery.Selection {
	table := sel.Find("table").FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, ok := s.Attr("id")
		return ok && v == id
	}).First()
	if table.Length() == 0 {
		return nil
	}
	return table
}

func findTableInComments(sel *goquery.Selection, id string) *goquery.Selection {
	for _, n := range sel.Nodes {
		for _, comment := range commentsContaining(n, id) {
			doc, err := goquery.NewDocumentFromReader(strings.NewReader(comment))
			if err != nil {
				continue
			}
			if table := findTableByID(doc.Selection, id); table != nil {
				return table
			}
		}
	}
	return nil
}

// commentsContaining returns, in document order, the text of every comment
// node under n that mentions s.
func commentsContaining(n *html.Node, s string) []string {
	var comments []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.CommentNode && strings.Contains(n.Data, s) {
			comments = append(comments, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return comments
}

// headings returns the header cells of the first row of a table with the
// leading rank column removed.
func headings(table *goquery.Selection) []string {
	var cols []string
	table.Find("tr").First().Find("th").Each(func(i int, th *goquery.Selection) {
		if i == 0 {
			return
		}
		cols = append(cols, strings.TrimSpace(th.Text()))
	})
	return cols
}

// eachPlayerRow calls fn for every body row that links to a player, with
// the trimmed text of its data cells and the first link in the row.
func eachPlayerRow(table *goquery.Selection, fn func(cells []string, link *goquery.Selection) error) error {
	var err error
	table.Find("tbody").First().Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		link := row.Find("a").First()
		if link.Length() == 0 {
			return true
		}
		var cells []string
		row.Find("td").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(td.Text()))
		})
		err = fn(cells, link)
		return err == nil
	})
	return err
}
