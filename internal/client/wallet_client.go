package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	walletRequest "github.com/khizar217naat-alt/commission-ledger-service/internal/delivery/http/dto/wallet/request"
	walletResponse "github.com/khizar217naat-alt/commission-ledger-service/internal/delivery/http/dto/wallet/response"
)

// HTTPWalletClient talks to an external wallet service. Used instead of
// the in-store ledger when wallet-service mode is "http".
type HTTPWalletClient struct {
	Address string
}

func NewHTTPWalletClient(address string) (*HTTPWalletClient, error) {
	return &HTTPWalletClient{
		Address: address,
	}, nil
}

func (c *HTTPWalletClient) Credit(ctx context.Context, partnerID string, amount float64, description string) (float64, error) {
	requestBodyBytes, err := json.Marshal(walletRequest.CreditRequest{
		PartnerID:   partnerID,
		Amount:      amount,
		Description: description,
	})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/wallets/credit", c.Address), bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	response, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return 0, err
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		var creditResponse walletResponse.CreditResponse
		if err := json.Unmarshal(responseBodyBytes, &creditResponse); err != nil {
			return 0, err
		}
		return creditResponse.Balance, nil
	}
	var errorResponse walletResponse.ErrorResponse
	if err := json.Unmarshal(responseBodyBytes, &errorResponse); err != nil {
		return 0, err
	}
	return 0, errors.New(errorResponse.Error)
}

func (c *HTTPWalletClient) Balance(ctx context.Context, partnerID string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/wallets/%s/balance", c.Address, partnerID), nil)
	if err != nil {
		return 0, err
	}

	response, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return 0, err
	}
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		var balanceResponse walletResponse.BalanceResponse
		if err := json.Unmarshal(responseBodyBytes, &balanceResponse); err != nil {
			return 0, err
		}
		return balanceResponse.Balance, nil
	}
	var errorResponse walletResponse.ErrorResponse
	if err := json.Unmarshal(responseBodyBytes, &errorResponse); err != nil {
		return 0, err
	}
	return 0, errors.New(errorResponse.Error)
}
