// Package export serializes parsed resumes as pretty JSON documents and as
// flattened CSV rows.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/resumeparser/internal/resume"
)

// Separators used to flatten list fields into a single CSV cell. Each field
// has its own so a cell can be split back without ambiguity.
const (
	SkillsSep     = "; "
	EducationSep  = " | "
	ExperienceSep = " || "
)

// Header is the fixed CSV column header.
var Header = []string{"_source_file", "name", "email", "phone", "skills", "education", "experience"}

// JSON returns the two-space indented JSON form of rec.
func JSON(rec resume.Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, rec); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSON writes rec as indented JSON followed by a newline.
func WriteJSON(w io.Writer, rec resume.Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec.Normalized()); err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	return nil
}

// ReadJSON decodes a record written by WriteJSON.
func ReadJSON(r io.Reader) (resume.Record, error) {
	var rec resume.Record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return resume.Record{}, fmt.Errorf("decode record: %w", err)
	}
	return rec.Normalized(), nil
}

// Row flattens rec into cells matching Header. The experience column holds
// the segmented entries.
func Row(rec resume.Record) []string {
	return []string{
		rec.SourceFile,
		rec.Name,
		rec.Email,
		rec.Phone,
		strings.Join(rec.Skills, SkillsSep),
		strings.Join(rec.Education, EducationSep),
		strings.Join(rec.ExperienceParsed, ExperienceSep),
	}
}

// WriteCSV writes Header followed by one row per record.
func WriteCSV(w io.Writer, recs []resume.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range recs {
		if err := cw.Write(Row(rec)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SplitSkills reverses the skills flattening of Row. The flattening is not
// escaped: an item that itself contains SkillsSep, such as a paragraph item
// "Go; Rust", comes back as several items. The same holds for the other
// Split functions and their separators.
func SplitSkills(cell string) []string { return split(cell, SkillsSep) }

// SplitEducation reverses the education flattening of Row. Items containing
// EducationSep are split apart.
func SplitEducation(cell string) []string { return split(cell, EducationSep) }

// SplitExperience reverses the experience flattening of Row. Entries
// containing ExperienceSep are split apart.
func SplitExperience(cell string) []string { return split(cell, ExperienceSep) }

func split(cell, sep string) []string {
	if cell == "" {
		return []string{}
	}
	return strings.Split(cell, sep)
}
