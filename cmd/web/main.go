package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/acasiostore/storefront-golang/internal/cart"
	"github.com/acasiostore/storefront-golang/internal/catalog"
	"github.com/acasiostore/storefront-golang/internal/config"
	"github.com/acasiostore/storefront-golang/internal/handlers"
	"github.com/acasiostore/storefront-golang/internal/mailer"
	"github.com/acasiostore/storefront-golang/internal/routes"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	storeInfo, err := config.LoadStoreInfo(cfg.StoreFile)
	if err != nil {
		log.Fatalf("Failed to load store identity: %v", err)
	}

	// 1. --- Catalog (read-only, loaded once) ---
	store, err := catalog.Load(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	// 2. --- Mail transport ---
	if cfg.SMTPUsername == "" || cfg.AdminEmail == "" {
		log.Println("WARNING: SMTP_USERNAME or ADMIN_EMAIL not set; order emails will fail until configured.")
	}
	sender := mailer.NewSMTPSender(cfg, storeInfo)
	orders := mailer.NewService(sender, cfg.AdminEmail, storeInfo)

	// --- Application Setup ---
	app := &handlers.Handlers{
		Catalog: store,
		Cart:    cart.NewManager(store),
		Orders:  orders,
		Store:   storeInfo,
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app, routes.Options{
		SessionSecret: cfg.SessionSecret,
		TemplateGlob:  cfg.TemplateGlob,
		StaticDir:     cfg.StaticDir,
	})

	// --- Start Server ---
	log.Printf("Starting %s storefront on %s...", storeInfo.Name, cfg.Addr)
	if err := router.Run(cfg.Addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
