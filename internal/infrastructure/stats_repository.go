package infrastructure

import (
	"context"
	"errors"
	"time"

	"Rateio/internal/domain/stats"
	appErrors "Rateio/internal/errors"

	"gorm.io/gorm"
)

type StatsRepository struct {
	DB *gorm.DB
}

type globalStatsDB struct {
	Id                int       `gorm:"primaryKey"`
	TotalBillsAmount  float64   `gorm:"type:decimal(15,2);not null;default:0"`
	UnitTarget        float64   `gorm:"type:decimal(15,2);not null;default:0"`
	IsOverrideEnabled bool      `gorm:"not null;default:false"`
	OverrideTarget    float64   `gorm:"type:decimal(15,2);not null;default:0"`
	UnclaimedAmount   float64   `gorm:"type:decimal(15,2);not null;default:0"`
	LastUpdated       time.Time `gorm:"not null"`
}

func (globalStatsDB) TableName() string {
	return "global_stats"
}

func toDomainStats(sdb *globalStatsDB) *stats.GlobalStats {
	return &stats.GlobalStats{
		Id:                sdb.Id,
		TotalBillsAmount:  sdb.TotalBillsAmount,
		UnitTarget:        sdb.UnitTarget,
		IsOverrideEnabled: sdb.IsOverrideEnabled,
		OverrideTarget:    sdb.OverrideTarget,
		UnclaimedAmount:   sdb.UnclaimedAmount,
		LastUpdated:       sdb.LastUpdated,
	}
}

func (r *StatsRepository) Get(ctx context.Context) (*stats.GlobalStats, error) {
	return getOrCreateStats(r.DB.WithContext(ctx))
}

func getOrCreateStats(db *gorm.DB) (*stats.GlobalStats, error) {
	var sdb globalStatsDB
	err := db.Table("global_stats").Where("id = ?", stats.SingletonId).First(&sdb).Error
	if err == nil {
		return toDomainStats(&sdb), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.NewDatabaseError(err)
	}

	sdb = globalStatsDB{Id: stats.SingletonId, LastUpdated: time.Now()}
	if err := db.Table("global_stats").Create(&sdb).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainStats(&sdb), nil
}

// recomputeGlobalStats reescreve só os campos derivados das contas, por
// merge, dentro da transação que as alterou.
func recomputeGlobalStats(tx *gorm.DB, unitCount int) error {
	if _, err := getOrCreateStats(tx); err != nil {
		return err
	}

	var totalBills float64
	if err := tx.Table("bills").
		Select("COALESCE(SUM(amount), 0)").Scan(&totalBills).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}

	unitTarget := 0.0
	if unitCount > 0 {
		unitTarget = totalBills / float64(unitCount)
	}

	if err := tx.Table("global_stats").Where("id = ?", stats.SingletonId).
		Updates(map[string]interface{}{
			"total_bills_amount": totalBills,
			"unit_target":        unitTarget,
			"last_updated":       time.Now(),
		}).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *StatsRepository) Recompute(ctx context.Context, unitCount int) (*stats.GlobalStats, error) {
	var result *stats.GlobalStats
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := recomputeGlobalStats(tx, unitCount); err != nil {
			return err
		}
		fresh, err := getOrCreateStats(tx)
		if err != nil {
			return err
		}
		result = fresh
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *StatsRepository) SetOverride(ctx context.Context, enabled bool, target float64) error {
	if _, err := getOrCreateStats(r.DB.WithContext(ctx)); err != nil {
		return err
	}
	if err := r.DB.WithContext(ctx).Table("global_stats").Where("id = ?", stats.SingletonId).
		Updates(map[string]interface{}{
			"is_override_enabled": enabled,
			"override_target":     target,
			"last_updated":        time.Now(),
		}).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *StatsRepository) SetUnclaimed(ctx context.Context, amount float64) error {
	if _, err := getOrCreateStats(r.DB.WithContext(ctx)); err != nil {
		return err
	}
	if err := r.DB.WithContext(ctx).Table("global_stats").Where("id = ?", stats.SingletonId).
		Updates(map[string]interface{}{
			"unclaimed_amount": amount,
			"last_updated":     time.Now(),
		}).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}
