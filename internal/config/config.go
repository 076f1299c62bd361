package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
)

// Config holds everything the server reads from the environment.
// godotenv is loaded in main before Load is called, so a local .env
// file and real environment variables behave the same way.
type Config struct {
	Addr          string
	SessionSecret string

	// --- Mail transport ---
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	AdminEmail   string

	// --- File locations ---
	DataDir      string
	StoreFile    string
	TemplateGlob string
	StaticDir    string
}

// Load reads the configuration from the environment, applying defaults
// for everything except the SMTP credentials, which stay empty so a dev
// instance never accidentally sends mail with a baked-in account.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:          getenv("ADDR", ":8080"),
		SessionSecret: getenv("SESSION_SECRET", "dev-secret-key-change-in-production"),
		SMTPHost:      getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPUsername:  os.Getenv("SMTP_USERNAME"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		DataDir:       getenv("DATA_DIR", "data"),
		StoreFile:     getenv("STORE_CONFIG", "store.yaml"),
		TemplateGlob:  getenv("TEMPLATE_GLOB", "web/templates/*.html"),
		StaticDir:     getenv("STATIC_DIR", "web/static"),
	}

	portStr := getenv("SMTP_PORT", "587")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", portStr, err)
	}
	cfg.SMTPPort = port

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// StoreInfo is the store identity block rendered into page footers and
// order emails. It comes from store.yaml so the shop name and contact
// details are not scattered through templates.
type StoreInfo struct {
	Name             string `yaml:"name"`
	Tagline          string `yaml:"tagline"`
	Phone            string `yaml:"phone"`
	Email            string `yaml:"email"`
	DeliveryEstimate string `yaml:"delivery_estimate"`
}

// DefaultStoreInfo returns the identity used when no store.yaml exists.
func DefaultStoreInfo() StoreInfo {
	return StoreInfo{
		Name:             "A CASIO STORE.pk",
		Tagline:          "Original Casio watches, delivered across Pakistan",
		Phone:            "+92 346 2738961",
		Email:            "acasiostore@gmail.com",
		DeliveryEstimate: "3-7 working days",
	}
}

// LoadStoreInfo reads the store identity file. A missing file falls back
// to the defaults; a present but malformed file is an error, because a
// half-parsed identity would leak into customer emails.
func LoadStoreInfo(path string) (StoreInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultStoreInfo(), nil
		}
		return StoreInfo{}, fmt.Errorf("failed to read store config: %w", err)
	}

	info := DefaultStoreInfo()
	if err := yaml.Unmarshal(data, &info); err != nil {
		return StoreInfo{}, fmt.Errorf("failed to parse store config: %w", err)
	}
	if info.Name == "" {
		return StoreInfo{}, fmt.Errorf("store config %s: name is required", path)
	}
	return info, nil
}
