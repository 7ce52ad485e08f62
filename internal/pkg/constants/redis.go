package constants

// Redis key formats
const (
	// User Service
	KeyVerificationCode = "user:verification:%s" // Format: user:verification:{email}
)
