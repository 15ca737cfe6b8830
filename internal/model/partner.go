package model

// GeneratePartnerCodeRequest represents partner code generation parameters
type GeneratePartnerCodeRequest struct {
	UserID string `json:"userId" binding:"required"`
}
