// Package presenter renders article records for human consumption.
package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/Hiida3li/NewsGenie-nlp-pipeline/internal/models"
	"github.com/Hiida3li/NewsGenie-nlp-pipeline/pkg/text"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// truncationMarker starts the upstream truncation suffix, as in
// "Full text here...[+1500 chars]". Everything before it is the preview.
const truncationMarker = "[+"

const maxTitleWidth = 60

// Presenter writes article summaries and details to an output stream.
type Presenter struct {
	out         io.Writer
	fullContent bool
	styles      Styles
}

// New creates a presenter writing to out. With fullContent set, article
// content is shown verbatim instead of cut at the truncation marker.
func New(out io.Writer, fullContent bool, styles Styles) *Presenter {
	return &Presenter{
		out:         out,
		fullContent: fullContent,
		styles:      styles,
	}
}

// Render writes the summary table followed by one detail block per
// article. An empty list prints only a notice.
func (p *Presenter) Render(articles []models.Article) {
	if len(articles) == 0 {
		fmt.Fprintln(p.out, p.styles.Notice.Render("No articles found."))

		return
	}

	p.renderTable(articles)

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, p.styles.Header.Render("📄 Article Details"))

	for i, article := range articles {
		p.renderDetail(i+1, article)
	}
}

func (p *Presenter) renderTable(articles []models.Article) {
	fmt.Fprintln(p.out, p.styles.Header.Render("📰 News Articles Summary"))

	rows := make([][]string, 0, len(articles)+1)
	rows = append(rows, []string{"#", "Title", "Source", "Published"})

	for i, article := range articles {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			text.Truncate(text.NormalizeSpace(article.Title), maxTitleWidth),
			text.NormalizeSpace(article.SourceName),
			article.PublishedAt,
		})
	}

	for i, line := range formatTable(rows) {
		if i == 0 {
			line = p.styles.TableHead.Render(line)
		}

		fmt.Fprintln(p.out, line)
	}
}

func (p *Presenter) renderDetail(index int, article models.Article) {
	fmt.Fprintf(p.out, "\n%s\n", p.styles.Title.Render(fmt.Sprintf("%d. %s", index, article.Title)))

	p.field("Source", article.SourceName)

	if has(article.Author) {
		p.field("Author", *article.Author)
	}

	if has(article.Description) {
		p.field("Description", *article.Description)
	}

	p.field("Published", article.PublishedAt)
	p.styledField("URL", article.URL, p.styles.Link)

	if has(article.ImageURL) {
		p.styledField("Image", *article.ImageURL, p.styles.Link)
	}

	p.renderContent(article)

	fmt.Fprintln(p.out, "   "+strings.Repeat("-", 50))
}

func (p *Presenter) renderContent(article models.Article) {
	if !has(article.Content) {
		return
	}

	content := *article.Content

	if p.fullContent {
		p.field("Content", content)

		return
	}

	preview, truncated := splitPreview(content)
	if !truncated {
		p.field("Content", content)

		return
	}

	p.field("Content Preview", preview)
	fmt.Fprintf(p.out, "   %s\n", p.styles.Note.Render("(Full content available with --full-content flag)"))
}

func (p *Presenter) field(label, value string) {
	fmt.Fprintf(p.out, "   %s %s\n", p.styles.Label.Render(label+":"), value)
}

func (p *Presenter) styledField(label, value string, style lipgloss.Style) {
	fmt.Fprintf(p.out, "   %s %s\n", p.styles.Label.Render(label+":"), style.Render(value))
}

// splitPreview cuts content at the upstream truncation marker. The second
// return reports whether a marker was found.
func splitPreview(content string) (string, bool) {
	if idx := strings.Index(content, truncationMarker); idx >= 0 {
		return content[:idx], true
	}

	return content, false
}

// has reports whether an optional field is present with a non-empty value.
func has(value *string) bool {
	return value != nil && *value != ""
}

// formatTable lays out rows as a pipe-delimited table with columns padded
// to the widest cell by display width, so wide characters line up.
func formatTable(rows [][]string) []string {
	if len(rows) == 0 {
		return nil
	}

	colCount := len(rows[0])
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	colWidths := make([]int, colCount)

	for _, row := range rows {
		for i := 0; i < len(row) && i < colCount; i++ {
			width := runewidth.StringWidth(row[i])
			if width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	// Keep the separator at least as wide as "---".
	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	var result []string

	for rowIdx, row := range rows {
		var sb strings.Builder

		sb.WriteString("|")

		for j := 0; j < colCount; j++ {
			sb.WriteString(" ")

			content := ""
			if j < len(row) {
				content = row[j]
			}

			sb.WriteString(content)

			padding := colWidths[j] - runewidth.StringWidth(content)
			if padding > 0 {
				sb.WriteString(strings.Repeat(" ", padding))
			}

			sb.WriteString(" |")
		}

		result = append(result, sb.String())

		if rowIdx == 0 {
			result = append(result, separatorLine(colWidths))
		}
	}

	return result
}

func separatorLine(colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for _, width := range colWidths {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", width))
		sb.WriteString(" |")
	}

	return sb.String()
}
