package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort   string
	UseFirestore bool

	Firestore struct {
		ProjectID  string
		DatabaseID string
	}
}

func Load() (*Config, error) {
	// Load .env file if it exists (useful for local dev)
	_ = godotenv.Load()

	// Cloud Run supplies PORT.
	serverPort := os.Getenv("PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	// Firestore is on by default; any value other than "true" disables it.
	flag := os.Getenv("USE_FIRESTORE")
	useFirestore := flag == "" || strings.EqualFold(flag, "true")

	databaseID := os.Getenv("FIRESTORE_DATABASE")
	if databaseID == "" {
		databaseID = "coffeeshop-demo"
	}

	cfg := &Config{
		ServerPort:   serverPort,
		UseFirestore: useFirestore,
	}
	cfg.Firestore.ProjectID = os.Getenv("GOOGLE_CLOUD_PROJECT")
	cfg.Firestore.DatabaseID = databaseID

	return cfg, nil
}
