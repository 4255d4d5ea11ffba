package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/educross/educross/internal/learning/models"
)

func validChoiceQuiz() models.CreateActivityRequest {
	return models.CreateActivityRequest{
		Kind:    models.KindChoiceQuiz,
		Title:   "Capitals",
		Prompt:  "Capital of France?",
		Points:  10,
		Choices: []string{"Paris", "Lyon"},
		Answer:  "Paris",
	}
}

func TestValidateActivity_ChoiceQuiz(t *testing.T) {
	assert.NoError(t, ValidateActivity(validChoiceQuiz()))

	missingAnswer := validChoiceQuiz()
	missingAnswer.Answer = " "
	assert.Error(t, ValidateActivity(missingAnswer))

	answerNotAChoice := validChoiceQuiz()
	answerNotAChoice.Answer = "Marseille"
	assert.Error(t, ValidateActivity(answerNotAChoice))

	tooFewChoices := validChoiceQuiz()
	tooFewChoices.Choices = []string{"Paris"}
	assert.Error(t, ValidateActivity(tooFewChoices))
}

func TestValidateActivity_Matching(t *testing.T) {
	valid := models.CreateActivityRequest{
		Kind:       models.KindMatching,
		Title:      "Animals",
		Prompt:     "Sort them",
		Points:     10,
		Categories: []string{"Mammals", "Birds"},
		Pairs:      map[string]string{"Dog": "Mammals", "Eagle": "Birds"},
	}
	assert.NoError(t, ValidateActivity(valid))

	unknownCategory := valid
	unknownCategory.Pairs = map[string]string{"Dog": "Fish"}
	assert.Error(t, ValidateActivity(unknownCategory))

	noPairs := valid
	noPairs.Pairs = nil
	assert.Error(t, ValidateActivity(noPairs))

	noCategories := valid
	noCategories.Categories = nil
	assert.Error(t, ValidateActivity(noCategories))
}

func TestValidateActivity_Crossword(t *testing.T) {
	valid := models.CreateActivityRequest{
		Kind:   models.KindCrossword,
		Title:  "Space",
		Prompt: "Fill it in",
		Points: 10,
		Words:  map[string]string{"Red planet": "MARS"},
	}
	assert.NoError(t, ValidateActivity(valid))

	emptyAnswer := valid
	emptyAnswer.Words = map[string]string{"Red planet": "  "}
	assert.Error(t, ValidateActivity(emptyAnswer))

	noWords := valid
	noWords.Words = nil
	assert.Error(t, ValidateActivity(noWords))
}

func TestValidateActivity_UnknownKind(t *testing.T) {
	req := validChoiceQuiz()
	req.Kind = "essay"
	assert.Error(t, ValidateActivity(req))
}

func TestValidate_StructTags(t *testing.T) {
	type payload struct {
		Name string `validate:"required,min=2"`
	}

	assert.Nil(t, Validate(payload{Name: "ok"}))

	errs := Validate(payload{Name: ""})
	assert.NotEmpty(t, errs)
	assert.Equal(t, "Name", errs[0].Field)
}
