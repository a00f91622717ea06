package graph

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var sterling = message.NewPrinter(language.BritishEnglish)

// FormatValue renders a monetary amount for edge labels, e.g. "£176,250,001.00".
func FormatValue(amount int64) string {
	return sterling.Sprintf("£%.2f", float64(amount))
}

// FormatFunding renders an accumulated funding total for node titles,
// e.g. "£ 176,250,001".
func FormatFunding(amount int64) string {
	return sterling.Sprintf("£ %d", amount)
}

// LinkHTML builds the anchor markup used as node title for linkable
// entities. Registry resource URLs point at the API; the "api/" segment is
// stripped so the link opens the human-readable page.
func LinkHTML(link, text string) string {
	href := strings.ReplaceAll(link, "api/", "")
	return fmt.Sprintf(`<a href=%q target="_blank">%s</a>`, href, text)
}
