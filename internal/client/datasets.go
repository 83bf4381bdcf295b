package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/AlexZinkM/dataset-wallet/internal/model"
)

// ListDatasets lists marketplace datasets, optionally filtered
func (c *BackendClient) ListDatasets(ctx context.Context, q model.DatasetQuery) ([]model.Dataset, error) {
	params := url.Values{}
	if q.Category != "" && q.Category != "All" {
		params.Set("category", q.Category)
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}

	path := "/api/datasets/"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	datasets := make([]model.Dataset, 0)
	if err := c.do(ctx, http.MethodGet, path, nil, &datasets); err != nil {
		return nil, err
	}
	return datasets, nil
}

// GetDataset gets one dataset by id
func (c *BackendClient) GetDataset(ctx context.Context, id int64) (*model.Dataset, error) {
	var dataset model.Dataset
	if err := c.do(ctx, http.MethodGet, "/api/datasets/"+strconv.FormatInt(id, 10), nil, &dataset); err != nil {
		return nil, err
	}
	return &dataset, nil
}

// CreateDataset creates a dataset listing
func (c *BackendClient) CreateDataset(ctx context.Context, req model.DatasetCreate) (*model.Dataset, error) {
	var dataset model.Dataset
	if err := c.do(ctx, http.MethodPost, "/api/datasets/", req, &dataset); err != nil {
		return nil, err
	}
	return &dataset, nil
}

// MarkMinted records the mint transaction of a dataset
func (c *BackendClient) MarkMinted(ctx context.Context, id int64, txHash string) error {
	req := model.MintedRequest{TransactionHash: txHash}
	return c.do(ctx, http.MethodPost, "/api/datasets/mint/"+strconv.FormatInt(id, 10), req, nil)
}

// PurchaseLicense records a paid license
func (c *BackendClient) PurchaseLicense(ctx context.Context, req model.PurchaseRequest) (*model.License, error) {
	var license model.License
	if err := c.do(ctx, http.MethodPost, "/api/datasets/purchase", req, &license); err != nil {
		return nil, err
	}
	return &license, nil
}

// UserLicenses lists licenses bought by wallet
func (c *BackendClient) UserLicenses(ctx context.Context, wallet string) ([]model.License, error) {
	licenses := make([]model.License, 0)
	path := "/api/datasets/user/" + url.PathEscape(wallet) + "/licenses"
	if err := c.do(ctx, http.MethodGet, path, nil, &licenses); err != nil {
		return nil, err
	}
	return licenses, nil
}

// UserDatasets lists datasets owned by wallet
func (c *BackendClient) UserDatasets(ctx context.Context, wallet string) ([]model.Dataset, error) {
	datasets := make([]model.Dataset, 0)
	path := "/api/datasets/user/" + url.PathEscape(wallet) + "/owned"
	if err := c.do(ctx, http.MethodGet, path, nil, &datasets); err != nil {
		return nil, err
	}
	return datasets, nil
}

// Categories lists dataset categories
func (c *BackendClient) Categories(ctx context.Context) ([]string, error) {
	categories := make([]string, 0)
	if err := c.do(ctx, http.MethodGet, "/api/datasets/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
