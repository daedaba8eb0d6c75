// Command token mints a bearer token for the speaker API's protected routes.
//
//	JWT_SECRET=... go run ./cmd/token -sub operator -ttl 24h
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"speakerservice/config"
	"speakerservice/internal/adapters/auth"
)

func main() {
	subject := flag.String("sub", "operator", "token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if !cfg.AuthEnabled() {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is not set")
		os.Exit(1)
	}
	if *subject == "" || *ttl <= 0 {
		fmt.Fprintln(os.Stderr, "sub must be non-empty and ttl positive")
		os.Exit(2)
	}

	token, err := auth.NewJWTIssuer(cfg.JWTSecret).Issue(*subject, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(token)
}
