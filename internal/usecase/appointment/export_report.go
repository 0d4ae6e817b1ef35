package appointment

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/infra/storage"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ReportOutput struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
	Rows   int    `json:"rows"`
}

type ExportMonthlyReport struct {
	repo  domain.Repository
	store storage.ObjectStore
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewExportMonthlyReport(
	repo domain.Repository,
	store storage.ObjectStore,
	audit *audit.Dispatcher,
	loc *time.Location,
) *ExportMonthlyReport {
	return &ExportMonthlyReport{
		repo:  repo,
		store: store,
		audit: audit,
		loc:   loc,
	}
}

func (uc *ExportMonthlyReport) Execute(
	ctx context.Context,
	actor Actor,
	year int,
	month int,
) (*ReportOutput, error) {

	start, end, err := monthBounds(year, month, uc.loc)
	if err != nil {
		return nil, err
	}
	last := end.Add(-time.Microsecond)

	apps, err := uc.repo.ListAppointments(ctx, domain.ListFilter{From: &start, To: &last})
	if err != nil {
		return nil, domain.Unreadable(err)
	}

	body, err := buildReportCSV(apps, uc.loc)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("reports/%04d-%02d/agendamentos-%s.csv", year, month, uuid.NewString())

	if err := uc.store.Put(ctx, key, "text/csv; charset=utf-8", body); err != nil {
		if errors.Is(err, storage.ErrNotConfigured) {
			return nil, domain.ErrIntegrationUnavailable
		}
		return nil, domain.IntegrationFailed(err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actor.idPtr(),
		Action:   "report_exported",
		Entity:   "report",
		Metadata: map[string]string{"key": key},
	})

	return &ReportOutput{
		Bucket: uc.store.Bucket(),
		Key:    key,
		Rows:   len(apps),
	}, nil
}

var reportHeader = []string{
	"id", "data", "hora", "cliente", "email", "telefone", "servico", "valor", "pagamento",
}

func buildReportCSV(apps []models.Appointment, loc *time.Location) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(reportHeader); err != nil {
		return nil, err
	}

	var paid, pending int64
	for _, ap := range apps {
		at := ap.ScheduledAt.In(loc)
		if domain.PaymentStatus(ap.PaymentStatus) == domain.PaymentPaid {
			paid += ap.PriceCents
		} else {
			pending += ap.PriceCents
		}

		if err := w.Write([]string{
			strconv.FormatUint(uint64(ap.ID), 10),
			at.Format("2006-01-02"),
			at.Format("15:04"),
			ap.ClientName,
			ap.ClientEmail,
			ap.ClientPhone,
			domain.ServiceName(ap.ServiceType),
			domain.FormatBRL(ap.PriceCents),
			ap.PaymentStatus,
		}); err != nil {
			return nil, err
		}
	}

	w.Write([]string{"", "", "", "", "", "", "total pago", domain.FormatBRL(paid), ""})
	w.Write([]string{"", "", "", "", "", "", "total pendente", domain.FormatBRL(pending), ""})

	w.Flush()
	return buf.Bytes(), w.Error()
}
