package model

// TxAck is the acknowledgment returned by backend write operations
type TxAck struct {
	Success         bool   `json:"success"`
	TransactionHash string `json:"transaction_hash,omitempty"`
	Error           string `json:"error,omitempty"`
}
