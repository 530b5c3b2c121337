// Package resume renders the profile's résumé as a PDF document.
package resume

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/sirupsen/logrus"

	"github.com/akyairhashvil/folio/internal/config"
	"github.com/akyairhashvil/folio/internal/content"
	"github.com/akyairhashvil/folio/internal/util"
)

const (
	pageWidth = 210.0
	margin    = 18.0
	lineH     = 6.0
)

// FileName is the name Export writes under its target directory.
func FileName(p content.Profile) string {
	slug := p.Slug()
	if slug == "" {
		slug = config.AppName
	}
	return slug + config.ResumeSuffix
}

// DefaultDir is the documents folder used when no directory is given.
func DefaultDir() string {
	return util.ReportsDir(config.AppName)
}

// Export writes the résumé into dir and returns the absolute file path.
func Export(p content.Profile, dir string) (string, error) {
	if dir == "" {
		dir = DefaultDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	path, err := filepath.Abs(filepath.Join(dir, FileName(p)))
	if err != nil {
		return "", err
	}
	pdf := build(p)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write resume: %w", err)
	}
	logrus.WithField("path", path).Info("resume exported")
	return path, nil
}

// Render streams the résumé to w.
func Render(w io.Writer, p content.Profile) error {
	return build(p).Output(w)
}

func build(p content.Profile) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(p.Name+" - Resume", true)
	pdf.SetAuthor(p.Name, true)
	pdf.SetMargins(margin, margin, margin)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	width := pageWidth - 2*margin

	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(width, 12, tr(p.Name), "", 1, "L", false, 0, "")
	if len(p.Roles) > 0 {
		pdf.SetFont("Helvetica", "", 12)
		pdf.SetTextColor(59, 130, 246)
		pdf.CellFormat(width, lineH+1, tr(strings.Join(nonEmpty(p.Roles), "  |  ")), "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
	if intro := strings.TrimSpace(p.Headline + " " + p.Bio); intro != "" {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(width, lineH, tr(intro), "", "L", false)
	}

	if len(p.Education) > 0 {
		heading(pdf, tr, width, "Education")
		for _, e := range p.Education {
			entry(pdf, tr, width, e.Degree, joinNonEmpty(" - ", e.Institution, e.Detail))
		}
	}
	if len(p.Experience) > 0 {
		heading(pdf, tr, width, "Experience")
		for _, e := range p.Experience {
			entry(pdf, tr, width, e.Role, joinNonEmpty(" - ", e.Company, e.Summary))
		}
	}
	if len(p.Skills) > 0 {
		heading(pdf, tr, width, "Skills")
		pdf.SetFont("Helvetica", "", 11)
		for _, s := range p.Skills {
			level := strings.Repeat("*", s.Level) + strings.Repeat("-", config.SkillLevels-s.Level)
			pdf.CellFormat(width*0.6, lineH, tr(s.Name), "", 0, "L", false, 0, "")
			pdf.CellFormat(width*0.4, lineH, level, "", 1, "R", false, 0, "")
		}
	}
	if len(p.Projects) > 0 {
		heading(pdf, tr, width, "Projects")
		for _, pr := range p.Projects {
			detail := pr.Description
			if len(pr.Tools) > 0 {
				detail = joinNonEmpty("\n", detail, "Tools: "+strings.Join(pr.Tools, ", "))
			}
			if pr.HasLink() {
				detail = joinNonEmpty("\n", detail, pr.Link)
			}
			entry(pdf, tr, width, pr.Title, detail)
		}
	}
	if len(p.Socials) > 0 {
		heading(pdf, tr, width, "Contact")
		pdf.SetFont("Helvetica", "", 11)
		for _, s := range p.Socials {
			href := strings.TrimPrefix(s.Href, "mailto:")
			if href == "#" {
				continue
			}
			pdf.CellFormat(width, lineH, tr(s.Label+": "+href), "", 1, "L", false, 0, "")
		}
	}
	return pdf
}

func heading(pdf *fpdf.Fpdf, tr func(string) string, width float64, title string) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(width, 9, tr(title), "B", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func entry(pdf *fpdf.Fpdf, tr func(string) string, width float64, title, detail string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.MultiCell(width, lineH, tr(title), "", "L", false)
	if detail != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(width, lineH-1, tr(detail), "", "L", false)
	}
	pdf.Ln(1)
}

func joinNonEmpty(sep string, parts ...string) string {
	return strings.Join(nonEmpty(parts), sep)
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
