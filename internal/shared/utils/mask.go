package utils

// MaskSecret masks a credential secret for safe display and logging.
// Keeps the first four characters so operators can tell keys apart.
// Example: "pk_live_abcdef123456" -> "pk_l************"
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return "****"
	}
	masked := make([]byte, len(secret))
	copy(masked, secret[:4])
	for i := 4; i < len(secret); i++ {
		masked[i] = '*'
	}
	return string(masked)
}
