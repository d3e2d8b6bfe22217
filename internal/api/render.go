package api

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"sort"
	"strings"

	"github.com/dgallion1/resumeparser/internal/export"
	"github.com/dgallion1/resumeparser/internal/parser"
	"github.com/dgallion1/resumeparser/internal/resume"
	"github.com/dgallion1/resumeparser/internal/store"
	"github.com/yuin/goldmark"
)

type indexPage struct {
	Error          string
	MaxUploadBytes int64
	Extensions     []string
}

type resultPage struct {
	ID       string
	Filename string
	Record   resume.Record
	Summary  template.HTML
	JSON     string
	JSONURL  string
	CSVURL   string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, http.StatusOK, "index.html", s.indexData(""))
}

func (s *Server) indexData(errMsg string) indexPage {
	exts := make([]string, 0, len(parser.SupportedExtensions))
	for ext := range parser.SupportedExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return indexPage{Error: errMsg, MaxUploadBytes: s.cfg.MaxUploadBytes, Extensions: exts}
}

// renderPage executes a template into a buffer so a failed render never
// leaves a half-written page behind.
func (s *Server) renderPage(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		s.log.Error("template render failed", "template", name, "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func newResultPage(entry store.Entry) (resultPage, error) {
	rec := entry.Record.Normalized()
	data, err := export.JSON(rec)
	if err != nil {
		return resultPage{}, err
	}
	summary, err := renderSummary(rec)
	if err != nil {
		return resultPage{}, err
	}
	return resultPage{
		ID:       entry.ID,
		Filename: entry.Filename,
		Record:   rec,
		Summary:  summary,
		JSON:     string(data),
		JSONURL:  fmt.Sprintf("/api/records/%s/export.json", entry.ID),
		CSVURL:   fmt.Sprintf("/api/records/%s/export.csv", entry.ID),
	}, nil
}

// renderSummary lays the record out as markdown and converts it to HTML.
// Raw HTML in the source is not passed through by goldmark's default
// renderer, and field values are escaped before they reach the markdown.
func renderSummary(rec resume.Record) (template.HTML, error) {
	var md strings.Builder
	name := rec.Name
	if name == "" {
		name = "Unnamed candidate"
	}
	fmt.Fprintf(&md, "## %s\n\n", escapeMarkdown(name))
	if rec.Email != "" {
		fmt.Fprintf(&md, "- **Email:** %s\n", escapeMarkdown(rec.Email))
	}
	if rec.Phone != "" {
		fmt.Fprintf(&md, "- **Phone:** %s\n", escapeMarkdown(rec.Phone))
	}
	md.WriteString("\n")

	writeList(&md, "Skills", rec.Skills)
	writeList(&md, "Education", rec.Education)
	writeList(&md, "Experience", rec.ExperienceParsed)

	var out bytes.Buffer
	if err := goldmark.Convert([]byte(md.String()), &out); err != nil {
		return "", fmt.Errorf("render summary: %w", err)
	}
	return template.HTML(out.String()), nil
}

func writeList(md *strings.Builder, title string, items []string) {
	fmt.Fprintf(md, "### %s\n\n", title)
	if len(items) == 0 {
		md.WriteString("_None found._\n\n")
		return
	}
	for _, item := range items {
		fmt.Fprintf(md, "- %s\n", escapeMarkdown(item))
	}
	md.WriteString("\n")
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", "*", `\*`, "_", `\_`,
	"[", `\[`, "]", `\]`, "<", `\<`, ">", `\>`,
	"#", `\#`, "|", `\|`, "!", `\!`, "~", `\~`,
	"&", `\&`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
