package infrastructure

import (
	"context"
	"errors"
	"time"

	"Rateio/internal/domain/unit"
	appErrors "Rateio/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UnitRepository struct {
	DB *gorm.DB
}

type unitDB struct {
	Id               string    `gorm:"type:varchar(8);primaryKey"`
	OwnerName        string    `gorm:"type:varchar(100);not null"`
	TotalContributed float64   `gorm:"type:decimal(15,2);not null;default:0"`
	IsHighlighted    bool      `gorm:"not null;default:false"`
	PublicNote       string    `gorm:"type:varchar(255)"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

func (unitDB) TableName() string {
	return "units"
}

func toDomainUnit(udb *unitDB) (*unit.Unit, error) {
	return &unit.Unit{
		Id:               udb.Id,
		OwnerName:        udb.OwnerName,
		TotalContributed: udb.TotalContributed,
		IsHighlighted:    udb.IsHighlighted,
		PublicNote:       udb.PublicNote,
		CreatedAt:        udb.CreatedAt,
		UpdatedAt:        udb.UpdatedAt,
	}, nil
}

func toDBUnit(u *unit.Unit) *unitDB {
	return &unitDB{
		Id:               u.Id,
		OwnerName:        u.OwnerName,
		TotalContributed: u.TotalContributed,
		IsHighlighted:    u.IsHighlighted,
		PublicNote:       u.PublicNote,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

// SeedBatch insere as unidades que ainda não existem; conflito de chave é
// ignorado.
func (r *UnitRepository) SeedBatch(ctx context.Context, units []*unit.Unit) error {
	rows := make([]*unitDB, 0, len(units))
	for _, u := range units {
		rows = append(rows, toDBUnit(u))
	}
	if err := r.DB.WithContext(ctx).Table("units").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *UnitRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Table("units").Count(&count).Error; err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return count, nil
}

func (r *UnitRepository) GetById(ctx context.Context, id string) (*unit.Unit, error) {
	var udb unitDB
	if err := r.DB.WithContext(ctx).Table("units").Where("id = ?", id).First(&udb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrUnitNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainUnit(&udb)
}

func (r *UnitRepository) List(ctx context.Context) ([]*unit.Unit, error) {
	var rows []unitDB
	if err := r.DB.WithContext(ctx).Table("units").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	out := make([]*unit.Unit, 0, len(rows))
	for i := range rows {
		u, err := toDomainUnit(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *UnitRepository) ListByBlock(ctx context.Context, block string) ([]*unit.Unit, error) {
	var rows []unitDB
	if err := r.DB.WithContext(ctx).Table("units").
		Where("id LIKE ?", block+"-%").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	out := make([]*unit.Unit, 0, len(rows))
	for i := range rows {
		u, err := toDomainUnit(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *UnitRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	result := r.DB.WithContext(ctx).Table("units").Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrUnitNotFound
	}
	return nil
}

func (r *UnitRepository) SumTotals(ctx context.Context) (float64, error) {
	var total float64
	if err := r.DB.WithContext(ctx).Table("units").
		Select("COALESCE(SUM(total_contributed), 0)").Scan(&total).Error; err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return total, nil
}

func (r *UnitRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Table("units").Where("id = ?", id).Count(&count).Error; err != nil {
		return false, appErrors.NewDatabaseError(err)
	}
	return count > 0, nil
}
