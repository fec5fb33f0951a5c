package cmd

import "fmt"

// Config carries the environment-driven settings for the dispatch service.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	OrderServiceURL        string
	AuthServiceURL         string
	NotificationServiceURL string
	NotificationAPIKey     string

	PaymentSecret string
	JWTSecret     string
}

// PostgresDSN builds the connection string for the local registry database.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
