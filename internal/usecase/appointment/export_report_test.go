package appointment

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/infra/storage"
)

func TestExportMonthlyReport(t *testing.T) {
	paid := booked(0, at("2024-05-31", "17:30"), "Bruno")
	paid.PaymentStatus = "Paid"
	repo := newMemRepo(
		booked(0, at("2024-05-01", "09:00"), "Ana"),
		paid,
		booked(0, at("2024-06-01", "09:00"), "Junho"),
	)
	store := &fakeStore{}

	out, err := NewExportMonthlyReport(repo, store, nil, brt).Execute(context.Background(), admin, 2024, 5)
	require.NoError(t, err)

	assert.Equal(t, "reports", out.Bucket)
	assert.Equal(t, 2, out.Rows)
	assert.True(t, strings.HasPrefix(out.Key, "reports/2024-05/agendamentos-"))
	assert.Equal(t, out.Key, store.key)

	records, err := csv.NewReader(strings.NewReader(string(store.body))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)

	assert.Equal(t, reportHeader, records[0])
	assert.Equal(t, []string{"1", "2024-05-01", "09:00", "Ana", "ana@example.com", "11987654321", "Corte de Cabelo", "R$ 35,00", "Pending"}, records[1])
	assert.Equal(t, "R$ 35,00", records[3][7])
	assert.Equal(t, "total pendente", records[4][6])
	assert.Equal(t, "R$ 35,00", records[4][7])
}

func TestExportMonthlyReport_Errors(t *testing.T) {
	repo := newMemRepo()

	_, err := NewExportMonthlyReport(repo, storage.Disabled{}, nil, brt).Execute(context.Background(), admin, 2024, 5)
	assert.ErrorIs(t, err, domain.ErrIntegrationUnavailable)

	_, err = NewExportMonthlyReport(repo, &fakeStore{err: errDisk}, nil, brt).Execute(context.Background(), admin, 2024, 5)
	assert.ErrorIs(t, err, domain.ErrIntegrationFailed)

	_, err = NewExportMonthlyReport(repo, &fakeStore{}, nil, brt).Execute(context.Background(), admin, 2024, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}
