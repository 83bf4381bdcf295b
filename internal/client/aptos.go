package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/AlexZinkM/dataset-wallet/internal/model"
)

// GetInfo gets backend network info
func (c *BackendClient) GetInfo(ctx context.Context) (json.RawMessage, error) {
	var info json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/aptos/", nil, &info); err != nil {
		return nil, err
	}
	return info, nil
}

// CreateAccount asks the backend to create a new funded-on-demand account
func (c *BackendClient) CreateAccount(ctx context.Context) (*model.CreateAccountResponse, error) {
	var resp model.CreateAccountResponse
	if err := c.do(ctx, http.MethodPost, "/aptos/account/create", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetBalance gets the APT balance of address
func (c *BackendClient) GetBalance(ctx context.Context, address string) (*model.BalanceResponse, error) {
	var resp model.BalanceResponse
	path := "/aptos/account/balance/" + url.PathEscape(address)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FundAccount requests amount octas for address from the backend faucet
func (c *BackendClient) FundAccount(ctx context.Context, address string, amount uint64) (*model.TxAck, error) {
	var ack model.TxAck
	req := model.FundRequest{Address: address, Amount: amount}
	if err := c.do(ctx, http.MethodPost, "/aptos/account/fund", req, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

// MintDataset mints the dataset NFT signed with the owner's key
func (c *BackendClient) MintDataset(ctx context.Context, req model.MintRequest) (*model.TxAck, error) {
	var ack model.TxAck
	if err := c.do(ctx, http.MethodPost, "/aptos/dataset/mint", req, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

// GrantLicense grants a license on-chain
func (c *BackendClient) GrantLicense(ctx context.Context, req model.GrantLicenseRequest) (*model.TxAck, error) {
	var ack model.TxAck
	if err := c.do(ctx, http.MethodPost, "/aptos/license/grant", req, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

// SetPrice sets the on-chain license price of a dataset
func (c *BackendClient) SetPrice(ctx context.Context, req model.SetPriceRequest) (*model.TxAck, error) {
	var ack model.TxAck
	if err := c.do(ctx, http.MethodPost, "/aptos/payment/set-price", req, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

// PayLicense pays for a dataset license
func (c *BackendClient) PayLicense(ctx context.Context, req model.PayLicenseRequest) (*model.TxAck, error) {
	var ack model.TxAck
	if err := c.do(ctx, http.MethodPost, "/aptos/payment/pay-license", req, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

// SetRoyalty sets the resale royalty of a dataset
func (c *BackendClient) SetRoyalty(ctx context.Context, req model.SetRoyaltyRequest) (*model.TxAck, error) {
	var ack model.TxAck
	if err := c.do(ctx, http.MethodPost, "/aptos/royalty/set", req, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

// GetTransaction gets a transaction by hash, passed through as raw JSON
func (c *BackendClient) GetTransaction(ctx context.Context, hash string) (json.RawMessage, error) {
	var tx json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/aptos/transaction/"+url.PathEscape(hash), nil, &tx); err != nil {
		return nil, err
	}
	return tx, nil
}
