package bill

import (
	"fmt"
	"time"
)

// Bill é a conta mensal de utilidade. O id determinístico por período
// ("2024-01") garante no máximo uma conta por mês.
type Bill struct {
	Id        string    `gorm:"type:varchar(7);primaryKey" json:"id"`
	Month     int       `gorm:"not null" json:"month"`
	Year      int       `gorm:"not null" json:"year"`
	Amount    float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	IssueDate time.Time `gorm:"type:date;not null" json:"issueDate"`
	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
}

func (Bill) TableName() string {
	return "bills"
}

// PeriodId monta a chave determinística de um período.
func PeriodId(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
