package round

import (
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/datatypes"
)

// CollectionRound é uma sub-campanha de arrecadação com alvo próprio e um
// subconjunto de unidades participantes. O progresso nunca é armazenado.
type CollectionRound struct {
	Id                   ulid.ULID                  `gorm:"type:varchar(26);primaryKey" json:"id"`
	Title                string                     `gorm:"type:varchar(100);not null" json:"title"`
	TargetAmount         float64                    `gorm:"type:decimal(15,2);not null" json:"targetAmount"`
	StartDate            time.Time                  `gorm:"type:date;index:idx_rounds_start_date;not null" json:"startDate"`
	ParticipatingUnitIds datatypes.JSONSlice[string] `gorm:"not null" json:"participatingUnitIds"`
	Remarks              string                     `gorm:"type:varchar(255)" json:"remarks"`
	CreatedAt            time.Time                  `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt            time.Time                  `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (CollectionRound) TableName() string {
	return "collection_rounds"
}

// FirstRoundWindowMonths é a janela de fallback da primeira rodada.
const FirstRoundWindowMonths = 6

type Progress struct {
	RoundId            ulid.ULID `json:"roundId"`
	Title              string    `json:"title"`
	TargetAmount       float64   `json:"targetAmount"`
	Collected          float64   `json:"collected"`
	Remaining          float64   `json:"remaining"`
	Percentage         float64   `json:"percentage"`
	EffectiveStartDate time.Time `json:"effectiveStartDate"`
}
