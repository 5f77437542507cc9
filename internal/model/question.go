package model

import "slices"

// Question represents a single multiple-choice quiz item.
// CorrectAnswer is an index into Options.
type Question struct {
	ID            int      `json:"id" yaml:"id"`
	Question      string   `json:"question" yaml:"question" binding:"required"`
	Options       []string `json:"options" yaml:"options" binding:"required,min=1"`
	CorrectAnswer int      `json:"correct_answer" yaml:"correct_answer" binding:"gte=0"`
}

// Clone returns a copy of q that shares no memory with it.
func (q Question) Clone() Question {
	q.Options = slices.Clone(q.Options)
	return q
}

// QuestionSet is the on-disk document shape for a question file.
type QuestionSet struct {
	Questions []Question `json:"questions" yaml:"questions"`
}

// QuestionURI is the path parameter of GET /questions/:question_id.
type QuestionURI struct {
	QuestionID int `uri:"question_id"`
}
