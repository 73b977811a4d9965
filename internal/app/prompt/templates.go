package prompt

import (
	"fmt"

	"learnpath_backend/internal/common"
)

// Request is one of the five AI feature kinds. Each variant knows its own
// required fields, its prompt template, and the JSON key its completion is
// returned under. Prompt construction is pure: same inputs, same string.
//
// User text is interpolated into the templates unescaped. The template
// wording (role framing, item counts, formatting instructions) is a
// behavioral contract with the provider; tests pin it.
type Request interface {
	Validate() error
	Prompt() string
	ResponseKey() string
}

// MentorChat answers a student question in the context of a course.
type MentorChat struct {
	Question    string `json:"question"`
	CourseTitle string `json:"course_title"`
}

func (r MentorChat) Validate() error {
	if r.Question == "" || r.CourseTitle == "" {
		return common.WithMessage(common.ErrBadRequest, "Missing data")
	}
	return nil
}

func (r MentorChat) Prompt() string {
	return fmt.Sprintf("You are an expert AI mentor for a course titled '%s'. "+
		"A student asked: '%s'. Provide a helpful, clear, and encouraging explanation. "+
		"If asked for more courses, suggest 1-2 specific online courses related to '%s'.",
		r.CourseTitle, r.Question, r.CourseTitle)
}

func (r MentorChat) ResponseKey() string { return "answer" }

// Summarize condenses free text into bullet points.
type Summarize struct {
	Text string `json:"text"`
}

func (r Summarize) Validate() error {
	if r.Text == "" {
		return common.WithMessage(common.ErrBadRequest, "No text provided")
	}
	return nil
}

func (r Summarize) Prompt() string {
	return fmt.Sprintf("Summarize the following text into a few key bullet points:\n\n%s", r.Text)
}

func (r Summarize) ResponseKey() string { return "summary" }

// SummarizeDocument condenses text extracted from an uploaded document.
type SummarizeDocument struct {
	Text string
}

func (r SummarizeDocument) Validate() error {
	if r.Text == "" {
		return common.WithMessage(common.ErrBadRequest, "No text provided")
	}
	return nil
}

func (r SummarizeDocument) Prompt() string {
	return fmt.Sprintf("Summarize the following document into key bullet points:\n\n%s", r.Text)
}

func (r SummarizeDocument) ResponseKey() string { return "summary" }

// RecommendCourses suggests online courses for a subject.
type RecommendCourses struct {
	Subject string `json:"subject"`
}

func (r RecommendCourses) Validate() error {
	if r.Subject == "" {
		return common.WithMessage(common.ErrBadRequest, "Subject is required")
	}
	return nil
}

func (r RecommendCourses) Prompt() string {
	return fmt.Sprintf("Act as an expert student counselor. A user is interested in '%s'. "+
		"Suggest 3 relevant online courses from popular platforms. For each course, provide: "+
		"1. Title. 2. Platform. 3. A short description. 4. A Google search link. "+
		"Format the entire output in Markdown, with the title as a heading and the link as a clickable URL.",
		r.Subject)
}

func (r RecommendCourses) ResponseKey() string { return "recommendation" }

// BrainstormCareer proposes career paths matching a skill set.
type BrainstormCareer struct {
	Skills string `json:"skills"`
}

func (r BrainstormCareer) Validate() error {
	if r.Skills == "" {
		return common.WithMessage(common.ErrBadRequest, "Skills are required")
	}
	return nil
}

func (r BrainstormCareer) Prompt() string {
	return fmt.Sprintf("Act as a creative career coach. A user has skills/interests in '%s'. "+
		"Brainstorm 3-5 interesting career paths. For each one, provide a brief description of why it's a good match.",
		r.Skills)
}

func (r BrainstormCareer) ResponseKey() string { return "career_ideas" }
