// Command token mints an access token for the local API. The token's
// subject is the configured owner id.
//
// Usage:
//
//	token [--device=laptop]
//
// Requires SYNC_OWNER_ID and AUTH_JWT_SECRET (or a config file).
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/heartmarshall/wardrobe-backend/internal/auth"
	"github.com/heartmarshall/wardrobe-backend/internal/config"
)

func main() {
	device := flag.String("device", "default", "device name recorded in the token")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ownerID, err := uuid.Parse(cfg.Sync.OwnerID)
	if err != nil {
		log.Fatalf("owner id: %v", err)
	}

	m := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	token, err := m.GenerateAccessToken(ownerID, *device)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
