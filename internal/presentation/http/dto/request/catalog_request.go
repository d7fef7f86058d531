package request

// CreateCategoryRequest represents a category creation request
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// CreateSaleSpaceRequest represents a sale space creation request
type CreateSaleSpaceRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// UpdateSaleSpaceRequest represents a sale space update request
type UpdateSaleSpaceRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=2,max=100"`
	Active *bool   `json:"active"`
}
