package repository

import (
	"context"
	"time"

	"traderedge-backend/internal/models"
	"traderedge-backend/internal/store"
)

type QuestionnaireRepo struct {
	store store.Backend
}

func NewQuestionnaireRepo(backend store.Backend) *QuestionnaireRepo {
	return &QuestionnaireRepo{store: backend}
}

func (r *QuestionnaireRepo) Create(ctx context.Context, questionnaire *models.Questionnaire) error {
	questionnaire.CreatedAt = time.Now().UTC()
	questionnaire.UpdatedAt = time.Now().UTC()
	doc, err := store.ToDocument(questionnaire)
	if err != nil {
		return err
	}
	id, err := r.store.Insert(ctx, store.Questionnaires, doc)
	if err != nil {
		return err
	}
	questionnaire.ID = id
	return nil
}

func (r *QuestionnaireRepo) FindByUserID(ctx context.Context, userID string) (*models.Questionnaire, error) {
	doc, err := r.store.FindOne(ctx, store.Questionnaires, store.Document{"user_id": userID})
	if err != nil || doc == nil {
		return nil, err
	}
	var questionnaire models.Questionnaire
	if err := store.DecodeDocument(doc, &questionnaire); err != nil {
		return nil, err
	}
	return &questionnaire, nil
}

func (r *QuestionnaireRepo) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx, store.Questionnaires, nil)
}

func (r *QuestionnaireRepo) CountByLevel(ctx context.Context, level int) (int64, error) {
	return r.store.Count(ctx, store.Questionnaires, store.Document{"milestone_access_level": level})
}

// CountDistinctPropFirms counts unique prop-firm names across up to limit
// questionnaires. Empty names are skipped.
func (r *QuestionnaireRepo) CountDistinctPropFirms(ctx context.Context, limit int64) (int, error) {
	docs, err := r.store.FindMany(ctx, store.Questionnaires, nil, limit)
	if err != nil {
		return 0, err
	}
	firms := make(map[string]struct{})
	for _, doc := range docs {
		if firm, ok := doc["prop_firm"].(string); ok && firm != "" {
			firms[firm] = struct{}{}
		}
	}
	return len(firms), nil
}
