package stats

import (
	"time"
)

// GlobalStats é a linha singleton com os agregados derivados das contas. O
// recálculo nunca toca os campos de override nem o valor não reivindicado.
type GlobalStats struct {
	Id                int       `gorm:"primaryKey" json:"-"`
	TotalBillsAmount  float64   `gorm:"type:decimal(15,2);not null;default:0" json:"totalBillsAmount"`
	UnitTarget        float64   `gorm:"type:decimal(15,2);not null;default:0" json:"unitTarget"`
	IsOverrideEnabled bool      `gorm:"not null;default:false" json:"isOverrideEnabled"`
	OverrideTarget    float64   `gorm:"type:decimal(15,2);not null;default:0" json:"overrideTarget"`
	UnclaimedAmount   float64   `gorm:"type:decimal(15,2);not null;default:0" json:"unclaimedAmount"`
	LastUpdated       time.Time `gorm:"not null" json:"lastUpdated"`
}

func (GlobalStats) TableName() string {
	return "global_stats"
}

const SingletonId = 1

// EffectiveTarget devolve o alvo por unidade que a apresentação deve usar.
func (g *GlobalStats) EffectiveTarget() float64 {
	if g.IsOverrideEnabled {
		return g.OverrideTarget
	}
	return g.UnitTarget
}

// Summary é a leitura consolidada usada pelo painel.
type Summary struct {
	TotalBillsAmount  float64   `json:"totalBillsAmount"`
	UnitTarget        float64   `json:"unitTarget"`
	IsOverrideEnabled bool      `json:"isOverrideEnabled"`
	OverrideTarget    float64   `json:"overrideTarget"`
	EffectiveTarget   float64   `json:"effectiveTarget"`
	UnclaimedAmount   float64   `json:"unclaimedAmount"`
	TotalContributed  float64   `json:"totalContributed"`
	TotalCollected    float64   `json:"totalCollected"`
	Diff              float64   `json:"diff"`
	BreakEven         bool      `json:"breakEven"`
	LastUpdated       time.Time `json:"lastUpdated"`
}
