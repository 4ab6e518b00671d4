package article

type CreateArticleDTO struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Summary string `json:"summary"`
}

// UpdateArticleDTO carries a partial update: only non-nil fields are applied.
type UpdateArticleDTO struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Summary *string `json:"summary"`
}
