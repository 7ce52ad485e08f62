package models

import (
	"time"
)

// PaymentReconciledEvent is published when a transaction reaches a
// terminal state. Consumers must tolerate duplicates; the transaction ID
// plus status is the deduplication key.
type PaymentReconciledEvent struct {
	TransactionID string            `json:"transaction_id"`
	Status        TransactionStatus `json:"status"`
	Amount        float64           `json:"amount"`
	Currency      string            `json:"currency"`
	CustomerEmail string            `json:"customer_email"`
	ProductType   string            `json:"product_type"`
	Timestamp     time.Time         `json:"timestamp"`
}

// EmailJob is a queued outbound email
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
