package unit

import (
	"fmt"
	"strings"
	"time"
)

// Unit representa um apartamento do condomínio. TotalContributed só muda
// dentro da mesma transação que cria ou remove o pagamento correspondente.
type Unit struct {
	Id               string    `gorm:"type:varchar(8);primaryKey" json:"id"`
	OwnerName        string    `gorm:"type:varchar(100)" json:"ownerName"`
	TotalContributed float64   `gorm:"type:decimal(15,2);not null;default:0" json:"totalContributed"`
	IsHighlighted    bool      `gorm:"not null;default:false" json:"isHighlighted"`
	PublicNote       string    `gorm:"type:varchar(255)" json:"publicNote"`
	CreatedAt        time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Unit) TableName() string {
	return "units"
}

const DefaultBlock = "E"

// FormatUnitId monta a chave natural de uma unidade (ex.: 1 -> "E-01").
func FormatUnitId(block string, slot int) string {
	return fmt.Sprintf("%s-%02d", block, slot)
}

func Block(unitID string) string {
	if idx := strings.Index(unitID, "-"); idx > 0 {
		return unitID[:idx]
	}
	return unitID
}
