package category

type CreateCategoryRequest struct {
	Name     string   `json:"name" validate:"required,min=2,max=40"`
	Keywords []string `json:"keywords" validate:"omitempty,dive,min=2"`
}

type CategoryResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Emoji    string   `json:"emoji"`
	Color    string   `json:"color"`
	Selected bool     `json:"selected"`
	Priority float64  `json:"priority"`
	Keywords []string `json:"keywords"`
	Position int      `json:"position"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}
