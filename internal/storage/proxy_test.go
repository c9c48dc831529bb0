package storage_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appErrors "Rateio/internal/errors"
	"Rateio/internal/storage"
)

func TestProxyUploaderUpload(t *testing.T) {
	t.Parallel()

	var received struct {
		Filename string `json:"filename"`
		MimeType string `json:"mimeType"`
		FileData string `json:"fileData"`
		FolderId string `json:"folderId"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected json content type, got %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]string{
			"status": "success",
			"url":    "https://drive.example/view/abc",
		})
	}))
	defer server.Close()

	uploader := storage.NewProxyUploader(server.URL, "pasta-123")
	url, err := uploader.Upload(context.Background(), "comprovante.pdf", "application/pdf", []byte("conteudo"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://drive.example/view/abc" {
		t.Fatalf("unexpected url: %q", url)
	}
	if !strings.HasSuffix(received.Filename, "_comprovante.pdf") {
		t.Fatalf("expected prefixed filename, got %q", received.Filename)
	}
	if received.MimeType != "application/pdf" || received.FolderId != "pasta-123" {
		t.Fatalf("unexpected payload: %+v", received)
	}
	decoded, err := base64.StdEncoding.DecodeString(received.FileData)
	if err != nil || string(decoded) != "conteudo" {
		t.Fatalf("expected base64 file data, got %q (%v)", received.FileData, err)
	}
}

func TestProxyUploaderUploadScriptError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "error",
			"message": "pasta inexistente",
		})
	}))
	defer server.Close()

	uploader := storage.NewProxyUploader(server.URL, "pasta-123")
	_, err := uploader.Upload(context.Background(), "a.png", "image/png", []byte{1})
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != appErrors.ErrUploadFailed.Code {
		t.Fatalf("expected UPLOAD_FAILED, got %v", err)
	}
}

func TestProxyUploaderUploadValidations(t *testing.T) {
	t.Parallel()

	t.Run("missing script url", func(t *testing.T) {
		uploader := storage.NewProxyUploader("", "pasta")
		if _, err := uploader.Upload(context.Background(), "a.png", "image/png", []byte{1}); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("empty file", func(t *testing.T) {
		uploader := storage.NewProxyUploader("http://localhost", "pasta")
		if _, err := uploader.Upload(context.Background(), "a.png", "image/png", nil); err == nil {
			t.Fatalf("expected error")
		}
	})
}
