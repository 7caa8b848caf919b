package config

// AppConfig holds the application configuration
type AppConfig struct {
	RedisAddress string
	SymmetricKey string
	UploadDir    string
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPass     string
}

// GetSymmetricKey returns the session token encryption key as bytes
func (c *AppConfig) GetSymmetricKey() []byte {
	return []byte(c.SymmetricKey)
}
