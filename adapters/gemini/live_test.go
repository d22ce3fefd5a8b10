package gemini

import (
	"context"
	"os"
	"testing"

	"github.com/joho/godotenv"

	"matrixdiff/internal/config"
)

// TestLiveEmbed performs a live call against the Gemini API. It is skipped
// unless a credential is available in the environment or a .env file.
func TestLiveEmbed(t *testing.T) {
	_ = godotenv.Load("../../.env")

	if os.Getenv("GEMINI_API_KEY") == "" && os.Getenv("GOOGLE_API_KEY") == "" {
		t.Skip("Skipping live test: GEMINI_API_KEY not set")
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	client := NewClient(cfg.Embed)
	vec, err := client.Embed(context.Background(), "No prior authorization required for 24 visits")
	if err != nil {
		t.Fatalf("live embed failed: %v", err)
	}
	if len(vec) == 0 {
		t.Fatal("live embed returned an empty vector")
	}
	t.Logf("embedding dimension: %d", len(vec))
}
