package tui

import (
	"bytes"
	"encoding/json"
)

// Answer is one collected field value. Value is a string for single-valued
// items and []string for checkboxes.
type Answer struct {
	Name  string
	Title string
	Value any
}

// State tracks answers in form order. Unanswered choice and file items are
// absent, matching what a browser leaves out of a submission.
type State struct {
	answers []Answer
	index   map[string]int
}

// NewState returns an empty State.
func NewState() *State {
	return &State{index: make(map[string]int)}
}

// Set records or replaces an answer.
func (s *State) Set(name, title string, value any) {
	if i, ok := s.index[name]; ok {
		s.answers[i].Value = value
		return
	}
	s.index[name] = len(s.answers)
	s.answers = append(s.answers, Answer{Name: name, Title: title, Value: value})
}

// Delete removes an answer if present.
func (s *State) Delete(name string) {
	i, ok := s.index[name]
	if !ok {
		return
	}
	s.answers = append(s.answers[:i], s.answers[i+1:]...)
	delete(s.index, name)
	for j := i; j < len(s.answers); j++ {
		s.index[s.answers[j].Name] = j
	}
}

// Get returns the value for name.
func (s *State) Get(name string) (any, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.answers[i].Value, true
}

// Answers returns a copy of the answers in form order.
func (s *State) Answers() []Answer {
	return append([]Answer(nil), s.answers...)
}

// MarshalJSON encodes the answers as one object whose keys keep form order.
func (s *State) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, a := range s.answers {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(a.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(a.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
