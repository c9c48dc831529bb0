package infrastructure

import (
	"context"
	"errors"
	"time"

	"Rateio/internal/domain/bill"
	appErrors "Rateio/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BillRepository grava contas e recalcula o agregado global na mesma
// transação.
type BillRepository struct {
	DB        *gorm.DB
	UnitCount int
}

type billDB struct {
	Id        string    `gorm:"type:varchar(7);primaryKey"`
	Month     int       `gorm:"not null"`
	Year      int       `gorm:"not null"`
	Amount    float64   `gorm:"type:decimal(15,2);not null"`
	IssueDate time.Time `gorm:"type:date;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (billDB) TableName() string {
	return "bills"
}

func toDomainBill(bdb *billDB) (*bill.Bill, error) {
	return &bill.Bill{
		Id:        bdb.Id,
		Month:     bdb.Month,
		Year:      bdb.Year,
		Amount:    bdb.Amount,
		IssueDate: bdb.IssueDate,
		CreatedAt: bdb.CreatedAt,
	}, nil
}

func toDBBill(b *bill.Bill) *billDB {
	return &billDB{
		Id:        b.Id,
		Month:     b.Month,
		Year:      b.Year,
		Amount:    b.Amount,
		IssueDate: b.IssueDate,
		CreatedAt: b.CreatedAt,
	}
}

// Upsert grava a conta do período (uma por mês/ano; regravar substitui).
func (r *BillRepository) Upsert(ctx context.Context, b *bill.Bill) error {
	bdb := toDBBill(b)
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("bills").
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"month", "year", "amount", "issue_date"}),
			}).
			Create(bdb).Error; err != nil {
			return appErrors.NewDatabaseError(err)
		}
		return recomputeGlobalStats(tx, r.UnitCount)
	})
}

func (r *BillRepository) Delete(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Table("bills").Where("id = ?", id).Delete(&billDB{})
		if result.Error != nil {
			return appErrors.NewDatabaseError(result.Error)
		}
		if result.RowsAffected == 0 {
			return appErrors.ErrBillNotFound
		}
		return recomputeGlobalStats(tx, r.UnitCount)
	})
}

func (r *BillRepository) GetById(ctx context.Context, id string) (*bill.Bill, error) {
	var bdb billDB
	if err := r.DB.WithContext(ctx).Table("bills").Where("id = ?", id).First(&bdb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrBillNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainBill(&bdb)
}

func (r *BillRepository) List(ctx context.Context) ([]*bill.Bill, error) {
	var rows []billDB
	if err := r.DB.WithContext(ctx).Table("bills").
		Order("year DESC, month DESC").
		Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	out := make([]*bill.Bill, 0, len(rows))
	for i := range rows {
		b, err := toDomainBill(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
