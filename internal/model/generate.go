package model

// CreateAccountResponse represents response for POST /aptos/account/create
type CreateAccountResponse struct {
	Address    string `json:"address"`
	PrivateKey string `json:"private_key"`
}

// ConnectResponse represents response for POST /wallet/connect
type ConnectResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Address string `json:"address,omitempty"`
}
