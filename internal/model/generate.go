package model

// GenerateRequest represents request for POST /api/wallet/generate
type GenerateRequest struct {
	Network string `json:"network" example:"testnet"`
}

// GenerateResponse represents response for POST /api/wallet/generate
type GenerateResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Wallet  WalletRecord `json:"wallet"`
}
