package storage

import (
	"context"
)

// ReceiptUploader envia um comprovante e devolve a URL pública de
// visualização.
type ReceiptUploader interface {
	Upload(ctx context.Context, filename, mimeType string, data []byte) (string, error)
}

// Uploaders separa o caminho público (submissão sem login) do autenticado.
type Uploaders struct {
	Public ReceiptUploader
	Admin  ReceiptUploader
}
