// scripts/check-credentials/main.go
//
// Run this locally to verify a Google service-account credentials file
// before pointing the gateway at it. It parses the file, reports the
// identity it authenticates as, and mints a readonly-scope token.
//
// Usage:
//   go run scripts/check-credentials/main.go [credentials.json]

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2/google"

	"calendar-gateway/pkg/gcal"
)

func main() {
	credsPath := "google-credentials.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", credsPath, err)
	}

	conf, err := google.JWTConfigFromJSON(data, gcal.ReadonlyScope)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is a service-account key file.", err, credsPath)
	}

	fmt.Printf("Service account: %s\n", conf.Email)

	tok, err := conf.TokenSource(context.Background()).Token()
	if err != nil {
		log.Fatalf("Failed to mint token: %v\nCheck the key is active and the Calendar API is enabled.", err)
	}

	fmt.Printf("Token OK, expires %s\n", tok.Expiry.Format("2006-01-02 15:04:05 MST"))
	fmt.Println()
	fmt.Println("Share the target calendar with the service account email above,")
	fmt.Println("then set google_calendar.credentials_path in the gateway config.")
}
