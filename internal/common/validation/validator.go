package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/educross/educross/internal/learning/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func Validate(data interface{}) []ValidationError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var errs []ValidationError
	for _, err := range err.(validator.ValidationErrors) {
		errs = append(errs, ValidationError{
			Field:   err.Field(),
			Message: fmt.Sprintf("field must satisfy %s constraint", err.Tag()),
		})
	}
	return errs
}

// ValidateActivity checks the kind-specific payload of a teacher-created
// activity before it reaches the catalog, so malformed input never becomes
// a corrupt definition.
func ValidateActivity(req models.CreateActivityRequest) error {
	switch req.Kind {
	case models.KindChoiceQuiz:
		if len(req.Choices) < 2 {
			return fmt.Errorf("choice quiz needs at least two choices")
		}
		if strings.TrimSpace(req.Answer) == "" {
			return fmt.Errorf("choice quiz needs a correct answer")
		}
		if !contains(req.Choices, req.Answer) {
			return fmt.Errorf("correct answer must be one of the choices")
		}
	case models.KindMatching:
		if len(req.Pairs) == 0 {
			return fmt.Errorf("matching activity needs at least one item-category pair")
		}
		if len(req.Categories) == 0 {
			return fmt.Errorf("matching activity needs a category set")
		}
		for item, category := range req.Pairs {
			if !contains(req.Categories, category) {
				return fmt.Errorf("item %q maps to unknown category %q", item, category)
			}
		}
	case models.KindCrossword:
		if len(req.Words) == 0 {
			return fmt.Errorf("crossword needs at least one clue-answer pair")
		}
		for clue, answer := range req.Words {
			if strings.TrimSpace(answer) == "" {
				return fmt.Errorf("clue %q has an empty answer", clue)
			}
		}
	default:
		return fmt.Errorf("unknown activity kind %q", req.Kind)
	}
	return nil
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
