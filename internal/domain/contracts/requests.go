package contracts

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// ReceiptFile carrega o conteúdo de um comprovante enviado junto com um
// pagamento. O upload acontece antes da gravação do registro; se falhar, o
// registro não é criado.
type ReceiptFile struct {
	Name        string
	ContentType string
	Data        []byte
}

type UnitUpdateRequest struct {
	Id            string
	OwnerName     *string
	IsHighlighted *bool
	PublicNote    *string
}

type BillUpsertRequest struct {
	Month     int
	Year      int
	Amount    float64
	IssueDate time.Time
}

type OverrideRequest struct {
	Enabled bool
	Target  float64
}

type UnclaimedRequest struct {
	Amount float64
}

type PaymentSubmitRequest struct {
	UnitId    string
	Amount    float64
	Date      time.Time
	Reference string
	Receipt   *ReceiptFile
}

type PaymentCreateRequest struct {
	UnitId    string
	Amount    float64
	Date      time.Time
	Reference string
	Receipt   *ReceiptFile
}

type PendingUpdateRequest struct {
	Id        ulid.ULID
	Amount    *float64
	Reference *string
}

// ApproveRequest aprova um pagamento pendente. Amount e Reference, quando
// presentes, substituem os valores submetidos.
type ApproveRequest struct {
	PendingId ulid.ULID
	Amount    *float64
	Reference *string
}

type RejectRequest struct {
	PendingId ulid.ULID
	Reason    string
}

type RoundCreateRequest struct {
	Title     string
	Target    float64
	StartDate time.Time
	UnitIds   []string
	Remarks   string
}

type RoundUpdateRequest struct {
	Id        ulid.ULID
	Title     string
	Target    float64
	StartDate time.Time
	UnitIds   []string
	Remarks   string
}
