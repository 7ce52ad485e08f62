package constants

// NATS Subjects
const (
	// Payment Service
	SubjectPaymentReconciled = "payments.reconciled"
)
