// Package sheets exporta el libro de caja a Google Sheets.
package sheets

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/jhoicas/furnistore-api/internal/application/ports"
	"github.com/jhoicas/furnistore-api/internal/domain/entity"
	"github.com/jhoicas/furnistore-api/pkg/config"
)

var _ ports.CashbookExporter = (*CashbookExporter)(nil)

// Etiquetas de dirección usadas en la hoja (Thu = cobro, Chi = pago).
var directionLabels = map[string]string{
	entity.DirectionIn:  "Thu",
	entity.DirectionOut: "Chi",
}

// CashbookExporter agrega asientos al rango configurado de la hoja.
type CashbookExporter struct {
	service       *sheetsapi.Service
	spreadsheetID string
	sheetRange    string
	log           zerolog.Logger
}

// NewCashbookExporter inicializa el cliente de la API de Sheets con el archivo de credenciales.
func NewCashbookExporter(ctx context.Context, cfg config.SheetsConfig, log zerolog.Logger) (*CashbookExporter, error) {
	service, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsPath),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("inicializar cliente de sheets: %w", err)
	}
	return &CashbookExporter{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		sheetRange:    cfg.CashbookRange,
		log:           log.With().Str("component", "sheets").Logger(),
	}, nil
}

// ExportCashbook agrega una fila por asiento en una sola llamada.
func (e *CashbookExporter) ExportCashbook(ctx context.Context, entries []*entity.CashbookEntry) error {
	if len(entries) == 0 {
		return nil
	}
	values := make([][]interface{}, 0, len(entries))
	for _, entry := range entries {
		values = append(values, cashbookRow(entry))
	}

	call := e.service.Spreadsheets.Values.Append(e.spreadsheetID, e.sheetRange, &sheetsapi.ValueRange{Values: values}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)
	if _, err := call.Do(); err != nil {
		return fmt.Errorf("agregar filas en %s: %w", e.sheetRange, err)
	}

	e.log.Info().Int("rows", len(values)).Str("range", e.sheetRange).Msg("libro de caja exportado")
	return nil
}

// cashbookRow columnas: fecha | dirección | origen | documento | método | importe | nota | pago.
func cashbookRow(e *entity.CashbookEntry) []interface{} {
	ref := e.OrderID
	if ref == "" {
		ref = e.PurchaseOrderID
	}
	dir, ok := directionLabels[e.Direction]
	if !ok {
		dir = e.Direction
	}
	return []interface{}{
		e.PaymentDate.Format("2006-01-02 15:04"),
		dir,
		e.Source,
		ref,
		e.PaymentMethod,
		e.Amount.StringFixed(0),
		e.Note,
		e.PaymentID,
	}
}
