package api

import (
	"errors"
	"testing"
	"time"

	"github.com/diogo/promptrelay/internal/config"
	apierrors "github.com/diogo/promptrelay/internal/errors"
	"github.com/diogo/promptrelay/internal/models"
)

// TestNewClient tests the NewClient function
func TestNewClient(t *testing.T) {
	validCreds := &config.Credentials{APIKey: "test_key"}

	tests := []struct {
		name      string
		creds     *config.Credentials
		opts      []ClientOption
		wantErr   bool
		wantModel models.Model
	}{
		{
			name:      "valid credentials with defaults",
			creds:     validCreds,
			wantErr:   false,
			wantModel: models.DefaultModel,
		},
		{
			name:      "with custom model",
			creds:     validCreds,
			opts:      []ClientOption{WithModel(models.Model25Pro)},
			wantErr:   false,
			wantModel: models.Model25Pro,
		},
		{
			name:    "nil credentials",
			creds:   nil,
			wantErr: true,
		},
		{
			name:    "empty API key",
			creds:   &config.Credentials{APIKey: ""},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.creds, tt.opts...)

			if tt.wantErr {
				if err == nil {
					t.Fatal("NewClient() expected error but got none")
				}
				if !errors.Is(err, apierrors.ErrNoAPIKey) {
					t.Errorf("NewClient() error = %v, want ErrNoAPIKey", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("NewClient() unexpected error: %v", err)
			}
			defer client.Close()

			if client.GetModel().Name != tt.wantModel.Name {
				t.Errorf("GetModel() = %q, want %q", client.GetModel().Name, tt.wantModel.Name)
			}
			if client.GetAPIKey() != "test_key" {
				t.Errorf("GetAPIKey() = %q, want test_key", client.GetAPIKey())
			}
		})
	}
}

func TestClientInitAndClose(t *testing.T) {
	client, err := NewClient(&config.Credentials{APIKey: "test_key"}, WithTimeout(5*time.Second))
	if err != nil {
		t.Fatalf("NewClient() unexpected error: %v", err)
	}

	if err := client.Init(); err != nil {
		t.Fatalf("Init() unexpected error: %v", err)
	}
	if client.IsClosed() {
		t.Error("IsClosed() = true before Close()")
	}

	client.Close()
	if !client.IsClosed() {
		t.Error("IsClosed() = false after Close()")
	}

	// Close is idempotent
	client.Close()

	if err := client.Init(); err == nil {
		t.Error("Init() after Close() should fail")
	}

	if _, err := client.GenerateContent("hi", nil); err == nil {
		t.Error("GenerateContent() after Close() should fail")
	}
}

func TestClientSetModel(t *testing.T) {
	client, err := NewClient(&config.Credentials{APIKey: "test_key"})
	if err != nil {
		t.Fatalf("NewClient() unexpected error: %v", err)
	}
	defer client.Close()

	client.SetModel(models.Model25FlashLite)
	if client.GetModel().Name != models.Model25FlashLite.Name {
		t.Errorf("GetModel() = %q after SetModel", client.GetModel().Name)
	}
}
