package dto

import "time"

// CreateUserRequest is the JSON body for POST /usuario.
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100" example:"Ana Souza"`
	Age   int    `json:"age" binding:"required,min=1,max=120" example:"30"`
	Email string `json:"email" binding:"required,email,max=254" example:"ana@example.com"`
}

// UpdateUserRequest is the JSON body for PUT /usuario. Age cannot change.
type UpdateUserRequest struct {
	Identifier string `json:"identifier" binding:"required,len=10,alphanum" example:"aB3dE5gH7j"`
	Name       string `json:"name" binding:"required,min=1,max=100" example:"Ana Maria Souza"`
	Email      string `json:"email" binding:"required,email,max=254" example:"ana.maria@example.com"`
}

// UserResponse is a user with its totals. Amounts are decimal strings.
type UserResponse struct {
	Identifier   string    `json:"identifier" example:"aB3dE5gH7j"`
	Name         string    `json:"name" example:"Ana Souza"`
	Age          int       `json:"age" example:"30"`
	Email        string    `json:"email" example:"ana@example.com"`
	TotalIncome  string    `json:"total_income" example:"1500.00"`
	TotalExpense string    `json:"total_expense" example:"320.50"`
	Balance      string    `json:"balance" example:"1179.50"`
	CreatedAt    time.Time `json:"created_at"`
}

// TotalsResponse aggregates every user and transaction.
type TotalsResponse struct {
	TotalIncome      string `json:"total_income" example:"5000.00"`
	TotalExpense     string `json:"total_expense" example:"1200.00"`
	NetBalance       string `json:"net_balance" example:"3800.00"`
	UserCount        int64  `json:"user_count" example:"3"`
	TransactionCount int64  `json:"transaction_count" example:"12"`
}
