package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/urbandrive/urbandrive/internal/pkg/apperrors"
	"github.com/urbandrive/urbandrive/internal/pkg/logger"
	"github.com/urbandrive/urbandrive/internal/pkg/models"
)

// Customer defaults sent when the initiation request leaves optional
// fields empty. The provider rejects payloads with missing cus_* fields.
const (
	defaultCustomerAddress  = "Address Line 1"
	defaultCustomerCity     = "City"
	defaultCustomerPostcode = "1234"
	defaultCustomerCountry  = "Bangladesh"
	defaultCustomerPhone    = "01711111111"
	defaultProductName      = "Car"
)

// initiationResponse is the provider's answer to an initiation POST.
// GatewayPageURL is the only field the flow depends on.
type initiationResponse struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	GatewayPageURL string `json:"GatewayPageURL"`
}

// HostedPageGateway submits form-encoded initiation requests to the
// hosted payment page provider.
type HostedPageGateway struct {
	cfg    *models.PaymentConfig
	client *http.Client
}

// NewHostedPageGateway creates a hosted page gateway with a bounded
// outbound call budget.
func NewHostedPageGateway(cfg *models.PaymentConfig) *HostedPageGateway {
	timeout := time.Duration(cfg.InitTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HostedPageGateway{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

// InitiateHostedPayment POSTs the initiation payload and returns the
// provider redirect URL. A missing redirect URL in the response is a
// gateway failure; the caller must not persist anything in that case.
func (g *HostedPageGateway) InitiateHostedPayment(ctx context.Context, txn *models.Transaction) (string, error) {
	form := g.buildInitiationForm(txn)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.GatewayURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", apperrors.Gateway("failed to build initiation request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", apperrors.Gateway("payment provider unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apperrors.Gateway(fmt.Sprintf("payment provider returned status %d", resp.StatusCode), nil)
	}

	var initResp initiationResponse
	if err := json.NewDecoder(resp.Body).Decode(&initResp); err != nil {
		return "", apperrors.Gateway("failed to decode provider response", err)
	}

	if initResp.GatewayPageURL == "" {
		logger.Warn("Provider initiation rejected",
			logger.String("transaction_id", txn.TransactionID),
			logger.String("provider_status", initResp.Status),
			logger.String("failed_reason", initResp.FailedReason))
		return "", apperrors.Gateway("provider response contains no redirect URL", nil)
	}

	return initResp.GatewayPageURL, nil
}

func (g *HostedPageGateway) buildInitiationForm(txn *models.Transaction) url.Values {
	phone := txn.CustomerPhone
	if phone == "" {
		phone = defaultCustomerPhone
	}
	productName := txn.ProductName
	if productName == "" {
		productName = defaultProductName
	}

	base := strings.TrimRight(g.cfg.CallbackBaseURL, "/")

	form := url.Values{}
	form.Set("store_id", g.cfg.StoreID)
	form.Set("store_passwd", g.cfg.StorePassword)
	form.Set("total_amount", fmt.Sprintf("%.2f", txn.Amount))
	form.Set("currency", txn.Currency)
	form.Set("tran_id", txn.TransactionID)
	form.Set("success_url", base+"/api/v1/payments/success")
	form.Set("fail_url", base+"/api/v1/payments/fail")
	form.Set("cancel_url", base+"/api/v1/payments/cancel")
	form.Set("emi_option", "0")
	form.Set("cus_name", txn.CustomerName)
	form.Set("cus_email", txn.CustomerEmail)
	form.Set("cus_add1", defaultCustomerAddress)
	form.Set("cus_city", defaultCustomerCity)
	form.Set("cus_postcode", defaultCustomerPostcode)
	form.Set("cus_country", defaultCustomerCountry)
	form.Set("cus_phone", phone)
	form.Set("shipping_method", "NO")
	form.Set("product_name", productName)
	form.Set("product_category", "General")
	form.Set("product_profile", "general")
	return form
}
