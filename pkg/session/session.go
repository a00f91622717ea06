// Package session models the exploration state a user builds up against one
// graph: the active neighborhood filter and the question/answer history.
// Sessions are immutable values; every change returns a new Session, so a
// session can be passed through component calls without ambient state.
package session

import "fundgraph/pkg/graph"

// QA is one question/answer exchange with the query collaborator.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Session is the current exploration state for one graph.
type Session struct {
	FilterActive   bool
	NodeGroup      string
	SelectedLabels []string
	FilterSet      graph.FilterSet
	History        []QA
}

// New returns an empty session: no filter, no history.
func New() Session {
	return Session{}
}

// WithFilter returns a copy with an active neighborhood filter.
func (s Session) WithFilter(group string, labels []string, set graph.FilterSet) Session {
	s.FilterActive = true
	s.NodeGroup = group
	s.SelectedLabels = append([]string(nil), labels...)
	s.FilterSet = set
	return s
}

// WithoutFilter returns a copy with no filter active.
func (s Session) WithoutFilter() Session {
	s.FilterActive = false
	s.NodeGroup = ""
	s.SelectedLabels = nil
	s.FilterSet = nil
	return s
}

// WithAnswer returns a copy with one more exchange appended to the history.
func (s Session) WithAnswer(question, answer string) Session {
	history := make([]QA, len(s.History), len(s.History)+1)
	copy(history, s.History)
	s.History = append(history, QA{Question: question, Answer: answer})
	return s
}

// WithoutHistory returns a copy with the chat history cleared.
func (s Session) WithoutHistory() Session {
	s.History = nil
	return s
}

// FilterNode is the node-existence predicate for graph views: a node passes
// when no filter set is active, or when it is a member of the active set.
func (s Session) FilterNode(label string) bool {
	if !s.FilterActive || len(s.FilterSet) == 0 {
		return true
	}
	return s.FilterSet.Contains(label)
}
