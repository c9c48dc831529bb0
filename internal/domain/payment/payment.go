package payment

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Payment é uma contribuição aprovada de uma unidade. Criado sempre na mesma
// transação que incrementa o total da unidade.
type Payment struct {
	Id         ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	UnitId     string    `gorm:"type:varchar(8);index:idx_payments_unit_id;not null" json:"unitId"`
	Amount     float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	Date       time.Time `gorm:"type:date;index:idx_payments_date;not null" json:"date"`
	Reference  string    `gorm:"type:varchar(255)" json:"reference"`
	ReceiptUrl string    `gorm:"type:varchar(512)" json:"receiptUrl"`
	CreatedAt  time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
}

func (Payment) TableName() string {
	return "payments"
}
