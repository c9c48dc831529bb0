package payment

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type ArchiveSource string

const (
	ArchiveDeleted  ArchiveSource = "deleted"
	ArchiveRejected ArchiveSource = "rejected"
)

// ArchivedPayment é o registro imutável de tudo que saiu dos conjuntos
// ativos. Depois de criado, a única operação possível é o expurgo permanente.
type ArchivedPayment struct {
	Id              ulid.ULID     `gorm:"type:varchar(26);primaryKey" json:"id"`
	OriginalId      ulid.ULID     `gorm:"type:varchar(26);index:idx_archived_original_id;not null" json:"originalId"`
	UnitId          string        `gorm:"type:varchar(8);index:idx_archived_unit_id;not null" json:"unitId"`
	Amount          float64       `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date            time.Time     `gorm:"type:date;not null" json:"date"`
	Reference       string        `gorm:"type:varchar(255)" json:"reference"`
	ReceiptUrl      string        `gorm:"type:varchar(512)" json:"receiptUrl"`
	Source          ArchiveSource `gorm:"type:varchar(20);not null" json:"source"`
	RejectionReason string        `gorm:"type:varchar(255)" json:"rejectionReason"`
	CreatedAt       time.Time     `gorm:"not null" json:"createdAt"`
	ArchivedAt      time.Time     `gorm:"not null" json:"archivedAt"`
}

func (ArchivedPayment) TableName() string {
	return "archived_payments"
}
