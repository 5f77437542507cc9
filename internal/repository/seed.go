package repository

import "github.com/stemsi/quiz-backend/internal/model"

// DefaultQuestions returns the built-in question set served when no
// question file is configured. Each call returns a fresh slice.
func DefaultQuestions() []model.Question {
	return []model.Question{
		{
			ID:            1,
			Question:      "Python'un yaratıcısı kimdir?",
			Options:       []string{"Guido van Rossum", "James Gosling", "Brendan Eich", "Rasmus Lerdorf"},
			CorrectAnswer: 0,
		},
		{
			ID:            2,
			Question:      "Hangisi bir Python web framework'ü değildir?",
			Options:       []string{"Django", "Flask", "FastAPI", "Express"},
			CorrectAnswer: 3,
		},
		{
			ID:            3,
			Question:      "Python'da bir liste metodunu seçin:",
			Options:       []string{"push()", "append()", "add()", "insert[]"},
			CorrectAnswer: 1,
		},
		{
			ID:            4,
			Question:      "Python hangi yılda geliştirilmiştir?",
			Options:       []string{"1989", "1991", "1995", "2000"},
			CorrectAnswer: 1,
		},
		{
			ID:            5,
			Question:      "Hangisi Python'da bir veri tipi değildir?",
			Options:       []string{"integer", "float", "varchar", "string"},
			CorrectAnswer: 2,
		},
	}
}
