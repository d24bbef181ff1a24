package store

import (
	"campaign-server/internal/observability"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

var campaignRowColumns = []string{"id", "campaign_type_code", "customer_id", "device_id", "status", "started_at", "created_at", "updated_at"}

func newMockStore(t *testing.T) (Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := observability.NewLoggerWithCore(zapcore.NewNopCore())
	return NewWithDB(sqlx.NewDb(db, "pgx"), logger), mock
}

func campaignRow(id, customerID int64, deviceID interface{}, status string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(campaignRowColumns).
		AddRow(id, CampaignTypeFacebookGroupShare, customerID, deviceID, status, now, now, now)
}
