package session

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quizapp-lambda/internal/aigen"
	"github.com/saulo-duarte/quizapp-lambda/internal/article"
	"github.com/saulo-duarte/quizapp-lambda/internal/config"
)

var ErrArticleMissing = errors.New("article not in history")

// HistoryStore is the read side the history view needs.
type HistoryStore interface {
	ListArticles(ctx context.Context) ([]*article.Article, error)
	DeleteArticle(ctx context.Context, id uuid.UUID) error
}

// HistoryView holds the user's saved articles, newest first, plus the entry
// currently highlighted in the session. It implements SelectionSink so a
// session reset clears the highlight.
type HistoryView struct {
	store    HistoryStore
	items    []*article.Article
	selected uuid.UUID
}

func NewHistoryView(store HistoryStore) *HistoryView {
	return &HistoryView{store: store}
}

// Load refreshes the list from the store.
func (h *HistoryView) Load(ctx context.Context) error {
	items, err := h.store.ListArticles(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load article history")
		return err
	}
	h.items = items
	return nil
}

func (h *HistoryView) Items() []*article.Article {
	return h.items
}

// Selected returns uuid.Nil when nothing is highlighted.
func (h *HistoryView) Selected() uuid.UUID {
	return h.selected
}

// Select highlights an entry and builds the event that rehydrates the session
// from it. Stored quiz rows that no longer decode are skipped.
func (h *HistoryView) Select(ctx context.Context, id uuid.UUID) (ArticleLoaded, error) {
	a := h.find(id)
	if a == nil {
		return ArticleLoaded{}, ErrArticleMissing
	}

	log := config.WithContext(ctx)
	questions := make([]aigen.Question, 0, len(a.Quizzes))
	quizIDs := make([]uuid.UUID, 0, len(a.Quizzes))
	for _, row := range a.Quizzes {
		q, err := row.DecodeQuestion()
		if err != nil {
			log.WithError(err).WithField("quiz_id", row.ID).Warn("Skipping undecodable quiz row")
			continue
		}
		questions = append(questions, aigen.Question{
			Question: q.Question,
			Options:  q.Options,
			Correct:  q.Correct,
		})
		quizIDs = append(quizIDs, row.ID)
	}

	h.selected = a.ID
	return ArticleLoaded{
		ArticleID: a.ID,
		Title:     a.Title,
		Content:   a.Content,
		Summary:   a.Summary,
		Questions: questions,
		QuizIDs:   quizIDs,
	}, nil
}

func (h *HistoryView) ClearSelection() {
	h.selected = uuid.Nil
}

// Delete removes an article and drops it from the loaded list. Deleting the
// highlighted entry also clears the highlight.
func (h *HistoryView) Delete(ctx context.Context, id uuid.UUID) error {
	if err := h.store.DeleteArticle(ctx, id); err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to delete article from history")
		return err
	}

	kept := h.items[:0]
	for _, a := range h.items {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	h.items = kept

	if h.selected == id {
		h.ClearSelection()
	}
	return nil
}

func (h *HistoryView) find(id uuid.UUID) *article.Article {
	for _, a := range h.items {
		if a.ID == id {
			return a
		}
	}
	return nil
}
