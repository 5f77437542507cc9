package repository

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/stemsi/quiz-backend/internal/model"
	"gopkg.in/yaml.v3"
)

// LoadQuestionsFile reads a question set from a YAML or JSON file.
// The format is chosen by extension; anything other than .json is read as YAML.
// Unknown fields and multiple documents are rejected.
func LoadQuestionsFile(path string) ([]model.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question file: %w", err)
	}

	var set model.QuestionSet
	if strings.EqualFold(filepath.Ext(path), ".json") {
		set, err = parseJSONQuestions(data)
	} else {
		set, err = parseYAMLQuestions(data)
	}
	if err != nil {
		return nil, err
	}
	if len(set.Questions) == 0 {
		return nil, fmt.Errorf("question file %s: no questions defined", path)
	}
	return set.Questions, nil
}

func parseJSONQuestions(data []byte) (model.QuestionSet, error) {
	var set model.QuestionSet
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&set); err != nil {
		return model.QuestionSet{}, fmt.Errorf("parse json: %w", err)
	}
	var rest json.RawMessage
	if err := decoder.Decode(&rest); !errors.Is(err, io.EOF) {
		if err == nil {
			return model.QuestionSet{}, errors.New("parse json: multiple documents are not supported")
		}
		return model.QuestionSet{}, fmt.Errorf("parse json: %w", err)
	}
	return set, nil
}

func parseYAMLQuestions(data []byte) (model.QuestionSet, error) {
	var set model.QuestionSet
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&set); err != nil {
		return model.QuestionSet{}, fmt.Errorf("parse yaml: %w", err)
	}
	var rest yaml.Node
	if err := decoder.Decode(&rest); !errors.Is(err, io.EOF) {
		if err == nil {
			return model.QuestionSet{}, errors.New("parse yaml: multiple documents are not supported")
		}
		return model.QuestionSet{}, fmt.Errorf("parse yaml: %w", err)
	}
	return set, nil
}
