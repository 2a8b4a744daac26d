package dsn

import (
	"fmt"
	"os"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Driver returns DB_DRIVER, postgres when unset.
func Driver() string {
	driver := strings.ToLower(strings.TrimSpace(os.Getenv("DB_DRIVER")))
	if driver == "" {
		return DriverPostgres
	}
	return driver
}

// FromEnv builds the connection string for the configured driver.
// DATABASE_URL wins over the individual DB_* variables.
func FromEnv() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	host := getenv("DB_HOST", "localhost")
	user := getenv("DB_USER", "postgres")
	pass := os.Getenv("DB_PASS")
	name := getenv("DB_NAME", "maritime_registry")

	if Driver() == DriverMySQL {
		port := getenv("DB_PORT", "3306")
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			user, pass, host, port, name)
	}

	port := getenv("DB_PORT", "5432")
	sslmode := getenv("DB_SSLMODE", "disable")
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pass, name, sslmode)
}

// Dialector opens the gorm dialector matching DB_DRIVER.
func Dialector(dsn string) (gorm.Dialector, error) {
	switch Driver() {
	case DriverPostgres:
		return postgres.Open(dsn), nil
	case DriverMySQL:
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", Driver())
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
