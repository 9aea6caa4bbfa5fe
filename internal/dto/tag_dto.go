package dto

// CreateTagRequest creates a reusable tag
type CreateTagRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=50"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
}
