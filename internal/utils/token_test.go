package utils_test

import (
	"encoding/hex"
	"testing"

	"github.com/iliyamo/movie-rental-api/internal/utils"
)

func TestNewAdminToken(t *testing.T) {
	tok, err := utils.NewAdminToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tok) != 64 {
		t.Fatalf("token length = %d, want 64", len(tok))
	}
	if _, err := hex.DecodeString(tok); err != nil {
		t.Fatalf("token is not valid hex: %v", err)
	}

	other, err := utils.NewAdminToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok == other {
		t.Fatal("two generated tokens are identical")
	}
}
