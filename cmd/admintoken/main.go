// Command admintoken prints a bearer token for the /admin routes, signed with
// AUTH_JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/spec-kit/org-directory/internal/auth"
	"github.com/spec-kit/org-directory/internal/config"
	"github.com/spec-kit/org-directory/internal/domain"
)

func main() {
	subject := flag.String("subject", "admin", "operator name recorded in admin logs")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	token, exp, err := tokens.GenerateToken(*subject, domain.SubjectTypeAdmin)
	if err != nil {
		log.Fatalf("failed to sign token: %v", err)
	}
	fmt.Printf("Bearer %s\n# expires %s\n", token, exp.Format("2006-01-02 15:04:05 MST"))
}
