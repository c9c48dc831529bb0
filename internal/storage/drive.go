package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"Rateio/config"
	appErrors "Rateio/internal/errors"
	"Rateio/internal/logger"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// DriveUploader sobe o arquivo direto para o Drive e libera leitura pública.
type DriveUploader struct {
	service  *drive.Service
	folderID string
}

func NewDriveUploader(ctx context.Context, cfg config.DriveConfig) (*DriveUploader, error) {
	opts := []option.ClientOption{
		option.WithScopes(drive.DriveFileScope),
	}
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	service, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("falha ao criar cliente do Drive: %w", err)
	}

	return &DriveUploader{
		service:  service,
		folderID: cfg.FolderID,
	}, nil
}

func (u *DriveUploader) Upload(ctx context.Context, filename, mimeType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", appErrors.NewValidationError("receipt", "arquivo vazio")
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	metadata := &drive.File{
		Name:     fmt.Sprintf("Rateio_Comprovante_%d_%s", time.Now().UnixMilli(), filename),
		MimeType: mimeType,
	}
	if u.folderID != "" {
		metadata.Parents = []string{u.folderID}
	}

	created, err := u.service.Files.Create(metadata).
		Context(ctx).
		Media(bytes.NewReader(data), googleapi.ContentType(mimeType)).
		Fields("id", "webViewLink").
		Do()
	if err != nil {
		return "", appErrors.ErrUploadFailed.WithError(err)
	}

	// Se falhar, o arquivo fica privado mas o upload em si já aconteceu.
	_, err = u.service.Permissions.Create(created.Id, &drive.Permission{
		Role: "reader",
		Type: "anyone",
	}).Context(ctx).Do()
	if err != nil {
		logger.Warn().Err(err).Str("file_id", created.Id).Msg("não foi possível tornar o comprovante público")
	}

	return created.WebViewLink, nil
}
