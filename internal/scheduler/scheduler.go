// Package scheduler ejecuta las tareas periódicas de la API.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/jhoicas/furnistore-api/internal/application/dto"
	"github.com/jhoicas/furnistore-api/pkg/config"
)

const jobTimeout = 2 * time.Minute

// LowStockLister fuente del reporte de bajo stock.
type LowStockLister interface {
	LowStock(ctx context.Context) ([]dto.LowStockItemDTO, error)
}

// CashbookDayExporter exporta los asientos de caja de un día.
type CashbookDayExporter interface {
	ExportDay(ctx context.Context, day time.Time) (int, error)
}

// Scheduler administra las tareas cron.
type Scheduler struct {
	cron     *cron.Cron
	cfg      config.SchedulerConfig
	lowStock LowStockLister
	exporter CashbookDayExporter // nil si Sheets no está configurado
	log      zerolog.Logger
	now      func() time.Time
}

// New crea el scheduler en la zona horaria configurada. exporter puede ser nil.
func New(cfg config.SchedulerConfig, lowStock LowStockLister, exporter CashbookDayExporter, log zerolog.Logger) (*Scheduler, error) {
	loc := time.Local
	if cfg.Timezone != "" {
		l, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("scheduler: zona horaria %q: %w", cfg.Timezone, err)
		}
		loc = l
	}
	return &Scheduler{
		// parser estándar de 5 campos: min hora dom mes dow
		cron:     cron.New(cron.WithLocation(loc)),
		cfg:      cfg,
		lowStock: lowStock,
		exporter: exporter,
		log:      log.With().Str("component", "scheduler").Logger(),
		now:      func() time.Time { return time.Now().In(loc) },
	}, nil
}

// Start registra las tareas y arranca el cron. Devuelve error si una expresión es inválida.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.LowStockCron, s.reportLowStock); err != nil {
		return fmt.Errorf("scheduler: bajo stock %q: %w", s.cfg.LowStockCron, err)
	}
	if s.exporter != nil {
		if _, err := s.cron.AddFunc(s.cfg.CashbookExportCron, s.exportCashbook); err != nil {
			return fmt.Errorf("scheduler: exportar caja %q: %w", s.cfg.CashbookExportCron, err)
		}
	}
	s.log.Info().Int("jobs", len(s.cron.Entries())).Msg("scheduler iniciado")
	s.cron.Start()
	return nil
}

// Stop detiene el cron y espera a que terminen las tareas en curso.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info().Msg("scheduler detenido")
}

func (s *Scheduler) reportLowStock() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	items, err := s.lowStock.LowStock(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("reporte de bajo stock")
		return
	}
	for _, it := range items {
		s.log.Warn().
			Str("product_id", it.ProductID).
			Str("sku", it.SKU).
			Int("stock", it.CurrentStock).
			Int("reorder", it.ReorderLevel).
			Int("suggested", it.SuggestedOrderQty).
			Msg("producto bajo nivel de reorden")
	}
	s.log.Info().Int("count", len(items)).Msg("reporte de bajo stock")
}

func (s *Scheduler) exportCashbook() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	day := s.now().AddDate(0, 0, -1)
	n, err := s.exporter.ExportDay(ctx, day)
	if err != nil {
		s.log.Error().Err(err).Str("day", day.Format("2006-01-02")).Msg("exportar libro de caja")
		return
	}
	s.log.Info().Int("entries", n).Str("day", day.Format("2006-01-02")).Msg("libro de caja exportado")
}
