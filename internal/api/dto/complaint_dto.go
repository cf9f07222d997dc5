package dto

// CreateComplaintRequest payload. Every field is required.
type CreateComplaintRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateStatusRequest payload for PUT /api/complaints/:id.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ComplaintResponse renders a complaint with its external "CMP###" id.
type ComplaintResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}
