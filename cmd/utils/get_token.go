package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"tourcatalog-service/internal/infrastructure/config"
	"tourcatalog-service/internal/infrastructure/oauth"
	"tourcatalog-service/pkg/logger"

	"github.com/google/uuid"
)

// Prints a Gmail refresh token with the send scope for GMAIL_REFRESH_TOKEN.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.GmailClientID == "" || cfg.GmailClientSecret == "" {
		log.Fatal("GMAIL_CLIENT_ID and GMAIL_CLIENT_SECRET must be set")
	}

	appLogger := logger.NewLogger(cfg.LogLevel)
	defer appLogger.Sync()

	gmailAuth := oauth.NewGmailOAuth(cfg.GmailClientID, cfg.GmailClientSecret, "", appLogger)
	gmailAuth.SetRedirectURL("http://localhost:8090/oauth2callback")
	state := uuid.NewString()

	// Start an HTTP server to handle the OAuth callback
	http.HandleFunc("/oauth2callback", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("state") != state {
			http.Error(w, "Invalid state parameter", http.StatusBadRequest)
			return
		}

		token, err := gmailAuth.ExchangeCode(context.Background(), r.URL.Query().Get("code"))
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to exchange code: %v", err), http.StatusInternalServerError)
			return
		}

		tokenJSON, _ := gmailAuth.TokenToJSON(token)
		fmt.Printf("\nToken:\n%s\n\nGMAIL_REFRESH_TOKEN=%s\n\n", tokenJSON, token.RefreshToken)

		fmt.Fprintf(w, "Authentication successful! You can close this window.")
		os.Exit(0)
	})

	authURL := gmailAuth.GenerateAuthURL(state)
	fmt.Printf("Open this URL in your browser:\n%s\n", authURL)

	log.Fatal(http.ListenAndServe(":8090", nil))
}
