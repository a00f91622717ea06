package query

import (
	"regexp"
	"strings"
)

var sampleQuestions = []string{
	"What projects are related to [entity]",
	"What is the project with the most funding for [entity]",
	"What people are related to project [entity]",
}

var parenthetical = regexp.MustCompile(`\(.*?\)`)

// SampleQuestions returns the question templates with the [entity]
// placeholder replaced by the comma-joined selected labels. Parenthesized
// fragments such as neighbor counts are stripped from the labels so the
// questions read naturally.
func SampleQuestions(selected []string) []string {
	entity := strings.Join(selected, ", ")
	questions := make([]string, 0, len(sampleQuestions))
	for _, template := range sampleQuestions {
		question := strings.ReplaceAll(template, "[entity]", entity)
		questions = append(questions, parenthetical.ReplaceAllString(question, ""))
	}
	return questions
}
