package service

import (
	"context"
	"errors"
	"testing"
)

func validIdeaInput() CreateIdeaInput {
	return CreateIdeaInput{
		Title:         "Poultry Farming",
		Description:   "Layer farming for egg production targeting local markets.",
		Industry:      "Agriculture",
		Location:      "Eldoret",
		InvestmentMin: 20000,
		InvestmentMax: 80000,
	}
}

func TestCreateIdeaValidationErrors(t *testing.T) {
	svc := &IdeaService{}

	tests := []struct {
		name    string
		mutate  func(*CreateIdeaInput)
		wantErr error
	}{
		{"missing_title", func(i *CreateIdeaInput) { i.Title = "" }, ErrTitleRequired},
		{"whitespace_title", func(i *CreateIdeaInput) { i.Title = "   " }, ErrTitleRequired},
		{"missing_description", func(i *CreateIdeaInput) { i.Description = "" }, ErrDescriptionRequired},
		{"missing_industry", func(i *CreateIdeaInput) { i.Industry = "" }, ErrIndustryRequired},
		{"missing_location", func(i *CreateIdeaInput) { i.Location = "" }, ErrLocationRequired},
		{"negative_min", func(i *CreateIdeaInput) { i.InvestmentMin = -1 }, ErrInvalidInvestment},
		{"negative_max", func(i *CreateIdeaInput) { i.InvestmentMax = -1; i.InvestmentMin = -2 }, ErrInvalidInvestment},
		{"min_above_max", func(i *CreateIdeaInput) { i.InvestmentMin = 100; i.InvestmentMax = 50 }, ErrInvalidInvestment},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			input := validIdeaInput()
			test.mutate(&input)

			_, err := svc.CreateIdea(context.Background(), "user-1", input)
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("expected %v, got %v", test.wantErr, err)
			}
		})
	}
}

func TestEmptyIfNil(t *testing.T) {
	if got := emptyIfNil(nil); got == nil || len(got) != 0 {
		t.Errorf("expected empty slice, got %v", got)
	}
	if got := emptyIfNil([]string{"a"}); len(got) != 1 {
		t.Errorf("expected passthrough, got %v", got)
	}
}
