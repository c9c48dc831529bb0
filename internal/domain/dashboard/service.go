package dashboard

import (
	"context"
	"time"

	"Rateio/internal/domain/payment"
	"Rateio/internal/domain/stats"
	"Rateio/internal/domain/unit"
	"Rateio/internal/logger"
)

// UnitRow é uma barra do gráfico do painel.
type UnitRow struct {
	UnitId           string  `json:"unitId"`
	OwnerName        string  `json:"ownerName"`
	TotalContributed float64 `json:"totalContributed"`
	PendingAmount    float64 `json:"pendingAmount"`
	IsHighlighted    bool    `json:"isHighlighted"`
	PublicNote       string  `json:"publicNote"`
}

// Overview é a resposta completa do painel público.
type Overview struct {
	Units       []UnitRow      `json:"units"`
	Summary     *stats.Summary `json:"summary"`
	Block       string         `json:"block,omitempty"`
	GeneratedAt time.Time      `json:"generatedAt"`
}

type Service struct {
	UnitRepository    unit.Repository
	PaymentRepository payment.Repository
	StatsService      *stats.Service
	Cache             *OverviewCache
}

func NewService(unitRepo unit.Repository, paymentRepo payment.Repository, statsSvc *stats.Service, cache *OverviewCache) *Service {
	return &Service{
		UnitRepository:    unitRepo,
		PaymentRepository: paymentRepo,
		StatsService:      statsSvc,
		Cache:             cache,
	}
}

func (s *Service) GetOverview(ctx context.Context, block string) (*Overview, error) {
	if cached := s.Cache.Get(ctx, block); cached != nil {
		return cached, nil
	}

	units, err := s.UnitRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	if block != "" {
		filtered := make([]*unit.Unit, 0, len(units))
		for _, u := range units {
			if unit.Block(u.Id) == block {
				filtered = append(filtered, u)
			}
		}
		units = filtered
	}

	pendingByUnit, err := s.PaymentRepository.PendingSumByUnit(ctx)
	if err != nil {
		return nil, err
	}

	summary, err := s.StatsService.Summary(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]UnitRow, 0, len(units))
	for _, u := range units {
		rows = append(rows, UnitRow{
			UnitId:           u.Id,
			OwnerName:        u.OwnerName,
			TotalContributed: u.TotalContributed,
			PendingAmount:    pendingByUnit[u.Id],
			IsHighlighted:    u.IsHighlighted,
			PublicNote:       u.PublicNote,
		})
	}

	overview := &Overview{
		Units:       rows,
		Summary:     summary,
		Block:       block,
		GeneratedAt: time.Now(),
	}

	if err := s.Cache.Set(ctx, block, overview); err != nil {
		logger.Warn().Err(err).Msg("falha ao guardar painel em cache")
	}

	return overview, nil
}

// Invalidate descarta o cache do painel após qualquer mutação que altere as
// entradas dele.
func (s *Service) Invalidate(ctx context.Context) {
	s.Cache.InvalidateAll(ctx)
}
