package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	appErrors "Rateio/internal/errors"
)

// ProxyUploader envia o arquivo em base64 para um script hospedado, que
// grava no Drive do administrador e devolve a URL pública.
type ProxyUploader struct {
	scriptURL string
	folderID  string
	client    *http.Client
}

func NewProxyUploader(scriptURL, folderID string) *ProxyUploader {
	return &ProxyUploader{
		scriptURL: scriptURL,
		folderID:  folderID,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type proxyPayload struct {
	Filename string `json:"filename"`
	MimeType string `json:"mimeType"`
	FileData string `json:"fileData"`
	FolderId string `json:"folderId"`
}

type proxyResponse struct {
	Status  string `json:"status"`
	Url     string `json:"url"`
	Message string `json:"message"`
}

func (u *ProxyUploader) Upload(ctx context.Context, filename, mimeType string, data []byte) (string, error) {
	if u.scriptURL == "" {
		return "", appErrors.ErrUploadFailed.WithError(fmt.Errorf("script de upload não configurado"))
	}
	if len(data) == 0 {
		return "", appErrors.NewValidationError("receipt", "arquivo vazio")
	}

	payload := proxyPayload{
		Filename: fmt.Sprintf("PublicUpload_%d_%s", time.Now().UnixMilli(), filename),
		MimeType: mimeType,
		FileData: base64.StdEncoding.EncodeToString(data),
		FolderId: u.folderID,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", appErrors.ErrUploadFailed.WithError(err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, u.scriptURL, bytes.NewReader(body))
	if err != nil {
		return "", appErrors.ErrUploadFailed.WithError(err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := u.client.Do(request)
	if err != nil {
		return "", appErrors.ErrUploadFailed.WithError(err)
	}
	defer response.Body.Close()

	var result proxyResponse
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return "", appErrors.ErrUploadFailed.WithError(err)
	}

	if result.Status != "success" {
		message := result.Message
		if message == "" {
			message = "erro desconhecido no script de upload"
		}
		return "", appErrors.ErrUploadFailed.WithError(fmt.Errorf("%s", message))
	}

	return result.Url, nil
}
