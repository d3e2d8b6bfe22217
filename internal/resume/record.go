package resume

// Record is the structured result of parsing one resume.
//
// Field order is the JSON key order.
type Record struct {
	SourceFile string `json:"_source_file,omitempty"`

	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	Skills    []string `json:"skills"`
	Education []string `json:"education"`

	// Experience is the raw experience block before segmentation.
	Experience []string `json:"experience"`
	// ExperienceParsed holds one joined entry per job.
	ExperienceParsed []string `json:"experience_parsed"`
}

// Normalized returns a copy with every nil slice replaced by an empty one,
// so the record always serializes lists as [].
func (r Record) Normalized() Record {
	r.Skills = nonNil(r.Skills)
	r.Education = nonNil(r.Education)
	r.Experience = nonNil(r.Experience)
	r.ExperienceParsed = nonNil(r.ExperienceParsed)
	return r
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
