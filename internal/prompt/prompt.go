// Copyright Hadayhoc Technology, 2026. All rights reserved.

// Package prompt assembles the generation request payload from a lesson-plan
// HTML document and a digital-competence requirements text.
package prompt

import (
	"bytes"
	"text/template"
)

// SystemInstruction is the fixed behavioral instruction sent with every
// generation request. It states the merge policy: locate the objective and
// activity sections, insert the applicable digital-competence requirements,
// preserve the original HTML structure, and wrap every inserted span in a
// blue marker so a reviewer can identify additions.
const SystemInstruction = `You are an education specialist fluent in the Vietnamese 2018 general education program (GDPT 2018) and Official Letter 5512. Your task is to integrate "digital competence requirements" into a lesson plan.

RULES:
1. Read the lesson plan (HTML) and the digital competence requirements (plain text).
2. Locate the sections "I. MỤC TIÊU" (objectives) and "II. THIẾT BỊ DẠY HỌC VÀ HỌC LIỆU" or "III. TIẾN TRÌNH DẠY HỌC" (activities).
3. Insert the applicable digital competence requirements into the matching objectives and activities.
4. Preserve the original HTML structure of the lesson plan as much as possible.
5. MANDATORY: wrap every inserted span in <span style="color: blue">...</span> so the user can identify additions.
6. Return only the HTML of the full edited lesson plan. No Markdown fences, no commentary. Return the raw string.`

// buildTmpl renders the user payload: the two documents under delimited
// headings plus the merge request. The rendering is deterministic; identical
// inputs produce an identical prompt byte for byte.
var buildTmpl = template.Must(template.New("integrate").Parse(`--- INPUT DATA ---

1. DIGITAL COMPETENCE REQUIREMENTS (APPENDIX III):
{{.Requirements}}

2. ORIGINAL LESSON PLAN (HTML):
{{.Lesson}}

--- REQUEST ---
Integrate the digital competence requirements into the lesson plan above.
Color every passage you add blue (style="color: blue").
Return the complete HTML.
`))

// Build assembles the user prompt from the lesson-plan HTML and the
// requirements text. Pure function: no network or state access.
func Build(lessonHTML, requirementsText string) string {
	var buf bytes.Buffer
	// The template only references the two string fields, so Execute
	// cannot fail at runtime.
	_ = buildTmpl.Execute(&buf, struct {
		Requirements string
		Lesson       string
	}{Requirements: requirementsText, Lesson: lessonHTML})
	return buf.String()
}
