package equipment

type CreateEquipmentRequest struct {
	Name     string  `json:"name" binding:"required"`
	Code     *string `json:"code"`
	Quantity int     `json:"quantity"`
	Status   string  `json:"status"`
	Notes    string  `json:"notes"`
}

type UpdateEquipmentRequest struct {
	Name     string  `json:"name" binding:"required"`
	Code     *string `json:"code"`
	Quantity int     `json:"quantity"`
	Status   string  `json:"status"`
	Notes    string  `json:"notes"`
}

type EquipmentFilter struct {
	Status   string `form:"status"`
	ParentID string `form:"parent_id"`
}

type EquipmentResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Code      *string `json:"code,omitempty"`
	Quantity  int     `json:"quantity"`
	Status    string  `json:"status"`
	ParentID  *string `json:"parent_id,omitempty"`
	Notes     string  `json:"notes,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}
