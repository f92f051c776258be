package transfer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConnect_MissingKeyFile(t *testing.T) {
	_, err := Connect("files.example.edu", "exporter", filepath.Join(t.TempDir(), "no-such-key"))
	if err == nil {
		t.Fatal("expected error for missing key file")
	}
	if !strings.Contains(err.Error(), "read private key") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConnect_MalformedKey(t *testing.T) {
	keyFile := filepath.Join(t.TempDir(), "id_rsa")
	if err := os.WriteFile(keyFile, []byte("not a pem block"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Connect("files.example.edu", "exporter", keyFile)
	if err == nil {
		t.Fatal("expected error for malformed key")
	}
	if !strings.Contains(err.Error(), "parse private key") {
		t.Errorf("unexpected error: %v", err)
	}
}
