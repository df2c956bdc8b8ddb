package screenshot

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const maxOutlineItems = 20

// landmarkTags are the structural elements recorded in an Outline.
var landmarkTags = []string{"header", "nav", "main", "section", "article", "aside", "footer", "form", "table", "dialog"}

// Outline is a text summary of a page's structure, used to guess which
// components the page is built from.
type Outline struct {
	Title     string         `json:"title"`
	Headings  []string       `json:"headings"`
	Landmarks map[string]int `json:"landmarks"`
	Actions   []string       `json:"actions"`
	Images    int            `json:"images"`
	Inputs    int            `json:"inputs"`
}

// ExtractOutline parses html and collects title, headings, landmark counts
// and the text of buttons and links.
func ExtractOutline(html string) (Outline, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Outline{}, fmt.Errorf("parse html: %w", err)
	}

	o := Outline{
		Title:     cleanText(doc.Find("title").First().Text()),
		Landmarks: map[string]int{},
	}

	doc.Find("h1, h2, h3").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if text := cleanText(s.Text()); text != "" {
			o.Headings = append(o.Headings, text)
		}
		return len(o.Headings) < maxOutlineItems
	})

	for _, tag := range landmarkTags {
		if n := doc.Find(tag).Length(); n > 0 {
			o.Landmarks[tag] = n
		}
	}

	seen := map[string]bool{}
	doc.Find("button, a, [role=button]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := cleanText(s.Text())
		if text == "" || seen[text] {
			return true
		}
		seen[text] = true
		o.Actions = append(o.Actions, text)
		return len(o.Actions) < maxOutlineItems
	})

	o.Images = doc.Find("img, picture, svg").Length()
	o.Inputs = doc.Find("input, textarea, select").Length()
	return o, nil
}

// Text flattens the outline into prose for keyword matching.
func (o Outline) Text() string {
	var b strings.Builder
	if o.Title != "" {
		fmt.Fprintf(&b, "title: %s\n", o.Title)
	}
	for _, h := range o.Headings {
		fmt.Fprintf(&b, "heading: %s\n", h)
	}
	for _, tag := range landmarkTags {
		if n := o.Landmarks[tag]; n > 0 {
			fmt.Fprintf(&b, "%s x%d\n", landmarkWord(tag), n)
		}
	}
	if len(o.Actions) > 0 {
		fmt.Fprintf(&b, "actions: %s\n", strings.Join(o.Actions, ", "))
	}
	if o.Images > 4 {
		b.WriteString("image gallery\n")
	}
	if o.Inputs > 0 {
		fmt.Fprintf(&b, "form inputs x%d\n", o.Inputs)
	}
	return b.String()
}

// landmarkWord maps a tag to the word the pattern table knows it by.
func landmarkWord(tag string) string {
	switch tag {
	case "nav":
		return "navigation"
	case "dialog":
		return "modal dialog"
	default:
		return tag
	}
}

func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
