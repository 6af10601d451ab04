package service

import (
	"socialhub_backend/internal/model"
	"socialhub_backend/internal/repository"
)

type SuggestionService struct {
	SuggestionRepo *repository.SuggestionRepository
}

func NewSuggestionService(suggestionRepo *repository.SuggestionRepository) *SuggestionService {
	return &SuggestionService{SuggestionRepo: suggestionRepo}
}

func (s *SuggestionService) Submit(username, content string) (*model.Suggestion, error) {
	suggestion := &model.Suggestion{
		Username: username,
		Content:  content,
	}
	return suggestion, s.SuggestionRepo.Create(suggestion)
}
