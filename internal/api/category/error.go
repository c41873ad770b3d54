package category

import "github.com/ISLASKRIGA/IMony3/pkg/response"

var (
	ErrCategoryNotFound      = response.NewError(404, "category not found")
	ErrCategoryAlreadyExists = response.NewError(409, "category already exists")
	ErrCreateCategory        = response.NewError(500, "failed to create category")
	ErrUpdateCategory        = response.NewError(500, "failed to update category")
)
