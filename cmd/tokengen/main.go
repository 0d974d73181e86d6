// Command tokengen mints a development bearer token through the same
// codec the server uses, for poking at protected routes with curl.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/Rahulstark2/blogging-platform-backend/jwtauth"
)

func main() {
	var (
		secret = flag.String("secret", "", "Signing secret (minimum 32 bytes)")
		userID = flag.Uint("id", 1, "User ID")
		email  = flag.String("email", "user@example.com", "Email address")
		hours  = flag.Int("hours", 1, "Token validity in hours")
	)

	flag.Parse()

	cfg, err := jwtauth.NewConfig(
		jwtauth.WithSecret([]byte(*secret)),
		jwtauth.WithTokenTTL(time.Duration(*hours)*time.Hour),
	)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	tokenString, err := jwtauth.Sign(&jwtauth.Claims{UserID: *userID, Email: *email}, cfg)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	fmt.Println("\n=== Bearer Token Generated ===")
	fmt.Printf("\nToken: %s\n\n", tokenString)
	fmt.Println("Claims:")
	fmt.Printf("  User ID: %d\n", *userID)
	fmt.Printf("  Email:   %s\n", *email)
	fmt.Printf("  Expires: %s\n\n", time.Now().Add(time.Duration(*hours)*time.Hour).Format(time.RFC3339))
	fmt.Println("Usage:")
	fmt.Printf("  curl -H 'Authorization: Bearer %s' http://localhost:8080/api/v1/posts\n\n", tokenString)
}
