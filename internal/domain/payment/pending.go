package payment

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// PendingPayment é a submissão de um morador aguardando revisão. Não afeta o
// total da unidade enquanto não for aprovado.
type PendingPayment struct {
	Id         ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	UnitId     string    `gorm:"type:varchar(8);index:idx_pending_unit_id;not null" json:"unitId"`
	Amount     float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date       time.Time `gorm:"type:date;not null" json:"date"`
	Reference  string    `gorm:"type:varchar(255)" json:"reference"`
	ReceiptUrl string    `gorm:"type:varchar(512)" json:"receiptUrl"`
	CreatedAt  time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
}

func (PendingPayment) TableName() string {
	return "pending_payments"
}
