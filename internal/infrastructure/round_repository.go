package infrastructure

import (
	"context"
	"errors"
	"time"

	"Rateio/internal/domain/round"
	appErrors "Rateio/internal/errors"
	"Rateio/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RoundRepository struct {
	DB *gorm.DB
}

type collectionRoundDB struct {
	Id                   string                      `gorm:"type:varchar(26);primaryKey"`
	Title                string                      `gorm:"type:varchar(100);not null"`
	TargetAmount         float64                     `gorm:"type:decimal(15,2);not null"`
	StartDate            time.Time                   `gorm:"type:date;index;not null"`
	ParticipatingUnitIds datatypes.JSONSlice[string] `gorm:"not null"`
	Remarks              string                      `gorm:"type:varchar(255)"`
	CreatedAt            time.Time                   `gorm:"not null"`
	UpdatedAt            time.Time                   `gorm:"not null"`
}

func (collectionRoundDB) TableName() string {
	return "collection_rounds"
}

func toDomainRound(rdb *collectionRoundDB) (*round.CollectionRound, error) {
	id, err := pkg.ParseULID(rdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &round.CollectionRound{
		Id:                   id,
		Title:                rdb.Title,
		TargetAmount:         rdb.TargetAmount,
		StartDate:            rdb.StartDate,
		ParticipatingUnitIds: rdb.ParticipatingUnitIds,
		Remarks:              rdb.Remarks,
		CreatedAt:            rdb.CreatedAt,
		UpdatedAt:            rdb.UpdatedAt,
	}, nil
}

func toDBRound(r *round.CollectionRound) *collectionRoundDB {
	return &collectionRoundDB{
		Id:                   r.Id.String(),
		Title:                r.Title,
		TargetAmount:         r.TargetAmount,
		StartDate:            r.StartDate,
		ParticipatingUnitIds: r.ParticipatingUnitIds,
		Remarks:              r.Remarks,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}

func (r *RoundRepository) Create(ctx context.Context, entity *round.CollectionRound) error {
	rdb := toDBRound(entity)
	if err := r.DB.WithContext(ctx).Table("collection_rounds").Create(rdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

// Update regrava todos os campos editáveis. Mapa em vez de struct para que
// campos zerados (remarks apagado) também sejam escritos.
func (r *RoundRepository) Update(ctx context.Context, entity *round.CollectionRound) error {
	rdb := toDBRound(entity)
	result := r.DB.WithContext(ctx).Table("collection_rounds").Where("id = ?", rdb.Id).
		Updates(map[string]interface{}{
			"title":                  rdb.Title,
			"target_amount":          rdb.TargetAmount,
			"start_date":             rdb.StartDate,
			"participating_unit_ids": rdb.ParticipatingUnitIds,
			"remarks":                rdb.Remarks,
			"updated_at":             rdb.UpdatedAt,
		})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrRoundNotFound
	}
	return nil
}

func (r *RoundRepository) Delete(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("collection_rounds").Where("id = ?", id.String()).Delete(&collectionRoundDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrRoundNotFound
	}
	return nil
}

func (r *RoundRepository) GetById(ctx context.Context, id ulid.ULID) (*round.CollectionRound, error) {
	var rdb collectionRoundDB
	if err := r.DB.WithContext(ctx).Table("collection_rounds").Where("id = ?", id.String()).First(&rdb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrRoundNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainRound(&rdb)
}

func (r *RoundRepository) List(ctx context.Context) ([]*round.CollectionRound, error) {
	var rows []collectionRoundDB
	if err := r.DB.WithContext(ctx).Table("collection_rounds").
		Order("start_date DESC, created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	out := make([]*round.CollectionRound, 0, len(rows))
	for i := range rows {
		entity, err := toDomainRound(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, entity)
	}
	return out, nil
}

func (r *RoundRepository) PreviousStart(ctx context.Context, before time.Time) (*time.Time, error) {
	var rdb collectionRoundDB
	err := r.DB.WithContext(ctx).Table("collection_rounds").
		Where("start_date < ?", before).
		Order("start_date DESC").
		First(&rdb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	start := rdb.StartDate
	return &start, nil
}
