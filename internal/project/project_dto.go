package project

import "github.com/shopspring/decimal"

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type UpdateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type ProjectResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Location      string           `json:"location,omitempty"`
	Description   string           `json:"description,omitempty"`
	Status        string           `json:"status"`
	TotalExpenses *decimal.Decimal `json:"total_expenses,omitempty"`
	CreatedAt     string           `json:"created_at"`
	UpdatedAt     string           `json:"updated_at"`
}
