package config

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

var (
	// BackendURL is the base URL of the remote product/order/auth service.
	BackendURL string

	// BackendHTTP is the shared client for all upstream calls.
	BackendHTTP *http.Client
)

func InitBackend() {
	BackendURL = os.Getenv("BACKEND_URL")
	if BackendURL == "" {
		// Default to the local dev backend
		BackendURL = "http://localhost:3001"
		log.Println("⚠️  BACKEND_URL not set, using local backend:", BackendURL)
	}
	BackendURL = strings.TrimRight(BackendURL, "/")

	BackendHTTP = &http.Client{Timeout: 10 * time.Second}
	log.Println("✅ Backend client ready:", BackendURL)
}

// WithTimeout returns a context with a 10s timeout for upstream calls
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}
