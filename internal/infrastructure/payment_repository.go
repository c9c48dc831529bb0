package infrastructure

import (
	"context"
	"errors"
	"time"

	"Rateio/internal/domain/payment"
	appErrors "Rateio/internal/errors"
	"Rateio/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// PaymentRepository cobre pendentes, ativos e arquivados. Transições que
// tocam o total da unidade rodam em transação com incremento atômico.
type PaymentRepository struct {
	DB *gorm.DB
}

type paymentDB struct {
	Id         string    `gorm:"type:varchar(26);primaryKey"`
	UnitId     string    `gorm:"type:varchar(8);index;not null"`
	Amount     float64   `gorm:"type:decimal(15,2);not null"`
	Date       time.Time `gorm:"type:date;index;not null"`
	Reference  string    `gorm:"type:varchar(255)"`
	ReceiptUrl string    `gorm:"type:varchar(500)"`
	CreatedAt  time.Time `gorm:"not null"`
}

func (paymentDB) TableName() string {
	return "payments"
}

type pendingPaymentDB struct {
	Id         string    `gorm:"type:varchar(26);primaryKey"`
	UnitId     string    `gorm:"type:varchar(8);index;not null"`
	Amount     float64   `gorm:"type:decimal(15,2);not null"`
	Date       time.Time `gorm:"type:date;not null"`
	Reference  string    `gorm:"type:varchar(255)"`
	ReceiptUrl string    `gorm:"type:varchar(500)"`
	CreatedAt  time.Time `gorm:"not null"`
}

func (pendingPaymentDB) TableName() string {
	return "pending_payments"
}

type archivedPaymentDB struct {
	Id              string    `gorm:"type:varchar(26);primaryKey"`
	OriginalId      string    `gorm:"type:varchar(26);index;not null"`
	UnitId          string    `gorm:"type:varchar(8);index;not null"`
	Amount          float64   `gorm:"type:decimal(15,2);not null"`
	Date            time.Time `gorm:"type:date;not null"`
	Reference       string    `gorm:"type:varchar(255)"`
	ReceiptUrl      string    `gorm:"type:varchar(500)"`
	Source          string    `gorm:"type:varchar(20);not null"`
	RejectionReason string    `gorm:"type:varchar(255)"`
	CreatedAt       time.Time `gorm:"not null"`
	ArchivedAt      time.Time `gorm:"not null"`
}

func (archivedPaymentDB) TableName() string {
	return "archived_payments"
}

func toDomainPayment(pdb *paymentDB) (*payment.Payment, error) {
	id, err := pkg.ParseULID(pdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &payment.Payment{
		Id:         id,
		UnitId:     pdb.UnitId,
		Amount:     pdb.Amount,
		Date:       pdb.Date,
		Reference:  pdb.Reference,
		ReceiptUrl: pdb.ReceiptUrl,
		CreatedAt:  pdb.CreatedAt,
	}, nil
}

func toDBPayment(p *payment.Payment) *paymentDB {
	return &paymentDB{
		Id:         p.Id.String(),
		UnitId:     p.UnitId,
		Amount:     p.Amount,
		Date:       p.Date,
		Reference:  p.Reference,
		ReceiptUrl: p.ReceiptUrl,
		CreatedAt:  p.CreatedAt,
	}
}

func toDomainPending(pdb *pendingPaymentDB) (*payment.PendingPayment, error) {
	id, err := pkg.ParseULID(pdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &payment.PendingPayment{
		Id:         id,
		UnitId:     pdb.UnitId,
		Amount:     pdb.Amount,
		Date:       pdb.Date,
		Reference:  pdb.Reference,
		ReceiptUrl: pdb.ReceiptUrl,
		CreatedAt:  pdb.CreatedAt,
	}, nil
}

func toDBPending(p *payment.PendingPayment) *pendingPaymentDB {
	return &pendingPaymentDB{
		Id:         p.Id.String(),
		UnitId:     p.UnitId,
		Amount:     p.Amount,
		Date:       p.Date,
		Reference:  p.Reference,
		ReceiptUrl: p.ReceiptUrl,
		CreatedAt:  p.CreatedAt,
	}
}

func toDomainArchived(adb *archivedPaymentDB) (*payment.ArchivedPayment, error) {
	id, err := pkg.ParseULID(adb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	originalID, err := pkg.ParseULID(adb.OriginalId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &payment.ArchivedPayment{
		Id:              id,
		OriginalId:      originalID,
		UnitId:          adb.UnitId,
		Amount:          adb.Amount,
		Date:            adb.Date,
		Reference:       adb.Reference,
		ReceiptUrl:      adb.ReceiptUrl,
		Source:          payment.ArchiveSource(adb.Source),
		RejectionReason: adb.RejectionReason,
		CreatedAt:       adb.CreatedAt,
		ArchivedAt:      adb.ArchivedAt,
	}, nil
}

func toDBArchived(a *payment.ArchivedPayment) *archivedPaymentDB {
	return &archivedPaymentDB{
		Id:              a.Id.String(),
		OriginalId:      a.OriginalId.String(),
		UnitId:          a.UnitId,
		Amount:          a.Amount,
		Date:            a.Date,
		Reference:       a.Reference,
		ReceiptUrl:      a.ReceiptUrl,
		Source:          string(a.Source),
		RejectionReason: a.RejectionReason,
		CreatedAt:       a.CreatedAt,
		ArchivedAt:      a.ArchivedAt,
	}
}

// incrementUnitTotal soma delta ao total da unidade em um único UPDATE.
// Delta negativo exige saldo suficiente (guarda no WHERE).
func incrementUnitTotal(tx *gorm.DB, unitID string, delta float64) error {
	query := tx.Table("units").Where("id = ?", unitID)
	if delta < 0 {
		query = query.Where("total_contributed >= ?", -delta)
	}
	result := query.Updates(map[string]interface{}{
		"total_contributed": gorm.Expr("total_contributed + ?", delta),
		"updated_at":        time.Now(),
	})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		if delta < 0 {
			return appErrors.ErrInsufficientTotal
		}
		return appErrors.ErrUnitNotFound
	}
	return nil
}

func (r *PaymentRepository) CreateWithLedger(ctx context.Context, p *payment.Payment) error {
	pdb := toDBPayment(p)
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("payments").Create(pdb).Error; err != nil {
			return appErrors.NewDatabaseError(err)
		}
		return incrementUnitTotal(tx, pdb.UnitId, pdb.Amount)
	})
}

func (r *PaymentRepository) Approve(ctx context.Context, pendingID ulid.ULID, approved *payment.Payment) error {
	pdb := toDBPayment(approved)
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Apagar o pendente primeiro: aprovação concorrente afeta zero
		// linhas e aborta sem creditar em dobro.
		result := tx.Table("pending_payments").Where("id = ?", pendingID.String()).Delete(&pendingPaymentDB{})
		if result.Error != nil {
			return appErrors.NewDatabaseError(result.Error)
		}
		if result.RowsAffected == 0 {
			return appErrors.ErrPendingNotFound
		}
		if err := tx.Table("payments").Create(pdb).Error; err != nil {
			return appErrors.NewDatabaseError(err)
		}
		return incrementUnitTotal(tx, pdb.UnitId, pdb.Amount)
	})
}

func (r *PaymentRepository) Reject(ctx context.Context, pendingID ulid.ULID, reason string, archiveID ulid.ULID, archivedAt time.Time) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pdb pendingPaymentDB
		if err := tx.Table("pending_payments").Where("id = ?", pendingID.String()).First(&pdb).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return appErrors.ErrPendingNotFound.WithError(err)
			}
			return appErrors.NewDatabaseError(err)
		}

		result := tx.Table("pending_payments").Where("id = ?", pendingID.String()).Delete(&pendingPaymentDB{})
		if result.Error != nil {
			return appErrors.NewDatabaseError(result.Error)
		}
		if result.RowsAffected == 0 {
			return appErrors.ErrPendingNotFound
		}

		adb := &archivedPaymentDB{
			Id:              archiveID.String(),
			OriginalId:      pdb.Id,
			UnitId:          pdb.UnitId,
			Amount:          pdb.Amount,
			Date:            pdb.Date,
			Reference:       pdb.Reference,
			ReceiptUrl:      pdb.ReceiptUrl,
			Source:          string(payment.ArchiveRejected),
			RejectionReason: reason,
			CreatedAt:       pdb.CreatedAt,
			ArchivedAt:      archivedAt,
		}
		if err := tx.Table("archived_payments").Create(adb).Error; err != nil {
			return appErrors.NewDatabaseError(err)
		}
		return nil
	})
}

func (r *PaymentRepository) ArchiveApproved(ctx context.Context, paymentID ulid.ULID, archiveID ulid.ULID, archivedAt time.Time) (*payment.ArchivedPayment, error) {
	var archived *payment.ArchivedPayment
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pdb paymentDB
		if err := tx.Table("payments").Where("id = ?", paymentID.String()).First(&pdb).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return appErrors.ErrPaymentNotFound.WithError(err)
			}
			return appErrors.NewDatabaseError(err)
		}

		result := tx.Table("payments").Where("id = ?", paymentID.String()).Delete(&paymentDB{})
		if result.Error != nil {
			return appErrors.NewDatabaseError(result.Error)
		}
		if result.RowsAffected == 0 {
			return appErrors.ErrPaymentNotFound
		}

		adb := &archivedPaymentDB{
			Id:         archiveID.String(),
			OriginalId: pdb.Id,
			UnitId:     pdb.UnitId,
			Amount:     pdb.Amount,
			Date:       pdb.Date,
			Reference:  pdb.Reference,
			ReceiptUrl: pdb.ReceiptUrl,
			Source:     string(payment.ArchiveDeleted),
			CreatedAt:  pdb.CreatedAt,
			ArchivedAt: archivedAt,
		}
		if err := tx.Table("archived_payments").Create(adb).Error; err != nil {
			return appErrors.NewDatabaseError(err)
		}

		if err := incrementUnitTotal(tx, pdb.UnitId, -pdb.Amount); err != nil {
			return err
		}

		out, err := toDomainArchived(adb)
		if err != nil {
			return err
		}
		archived = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return archived, nil
}

func (r *PaymentRepository) GetPaymentById(ctx context.Context, id ulid.ULID) (*payment.Payment, error) {
	var pdb paymentDB
	if err := r.DB.WithContext(ctx).Table("payments").Where("id = ?", id.String()).First(&pdb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrPaymentNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainPayment(&pdb)
}

func (r *PaymentRepository) ListPayments(ctx context.Context, filters *payment.PaymentFilters, pagination *pkg.PaginationParams) ([]*payment.Payment, int64, error) {
	baseQuery := r.DB.WithContext(ctx).Table("payments")
	if filters != nil {
		if filters.UnitId != nil && *filters.UnitId != "" {
			baseQuery = baseQuery.Where("unit_id = ?", *filters.UnitId)
		}
		if filters.From != nil {
			baseQuery = baseQuery.Where("date >= ?", *filters.From)
		}
		if filters.To != nil {
			baseQuery = baseQuery.Where("date <= ?", *filters.To)
		}
	}
	return pkg.Paginate(baseQuery, pagination, "date DESC, created_at DESC", toDomainPayment)
}

func (r *PaymentRepository) SumInWindow(ctx context.Context, from time.Time, unitIDs []string) (float64, error) {
	if len(unitIDs) == 0 {
		return 0, nil
	}
	var total float64
	if err := r.DB.WithContext(ctx).Table("payments").
		Where("date >= ? AND unit_id IN ?", from, unitIDs).
		Select("COALESCE(SUM(amount), 0)").Scan(&total).Error; err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return total, nil
}

func (r *PaymentRepository) CreatePending(ctx context.Context, p *payment.PendingPayment) error {
	pdb := toDBPending(p)
	if err := r.DB.WithContext(ctx).Table("pending_payments").Create(pdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *PaymentRepository) GetPendingById(ctx context.Context, id ulid.ULID) (*payment.PendingPayment, error) {
	var pdb pendingPaymentDB
	if err := r.DB.WithContext(ctx).Table("pending_payments").Where("id = ?", id.String()).First(&pdb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrPendingNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainPending(&pdb)
}

func (r *PaymentRepository) UpdatePendingFields(ctx context.Context, id ulid.ULID, fields map[string]interface{}) error {
	result := r.DB.WithContext(ctx).Table("pending_payments").Where("id = ?", id.String()).Updates(fields)
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrPendingNotFound
	}
	return nil
}

func (r *PaymentRepository) ListPending(ctx context.Context) ([]*payment.PendingPayment, error) {
	var rows []pendingPaymentDB
	if err := r.DB.WithContext(ctx).Table("pending_payments").
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	out := make([]*payment.PendingPayment, 0, len(rows))
	for i := range rows {
		p, err := toDomainPending(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *PaymentRepository) PendingSumByUnit(ctx context.Context) (map[string]float64, error) {
	type row struct {
		UnitId string
		Total  float64
	}
	var rows []row
	if err := r.DB.WithContext(ctx).Table("pending_payments").
		Select("unit_id, COALESCE(SUM(amount), 0) AS total").
		Group("unit_id").
		Scan(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	out := make(map[string]float64, len(rows))
	for _, r := range rows {
		out[r.UnitId] = r.Total
	}
	return out, nil
}

func (r *PaymentRepository) GetArchivedById(ctx context.Context, id ulid.ULID) (*payment.ArchivedPayment, error) {
	var adb archivedPaymentDB
	if err := r.DB.WithContext(ctx).Table("archived_payments").Where("id = ?", id.String()).First(&adb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrArchiveNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainArchived(&adb)
}

func (r *PaymentRepository) ListArchived(ctx context.Context, pagination *pkg.PaginationParams) ([]*payment.ArchivedPayment, int64, error) {
	baseQuery := r.DB.WithContext(ctx).Table("archived_payments")
	return pkg.Paginate(baseQuery, pagination, "archived_at DESC", toDomainArchived)
}

func (r *PaymentRepository) Purge(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("archived_payments").Where("id = ?", id.String()).Delete(&archivedPaymentDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrArchiveNotFound
	}
	return nil
}
