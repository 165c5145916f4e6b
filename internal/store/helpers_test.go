package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/MKhiriev/go-video-vault/internal/logger"
)

// sequenceIDs hands out "id-1", "id-2", … in order.
type sequenceIDs struct {
	next int
}

func (s *sequenceIDs) Generate() string {
	s.next++
	return fmt.Sprintf("id-%d", s.next)
}

var fixedNow = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newMockDB(t *testing.T, dialect Dialect) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	var classifier ErrorClassificator = NewPostgresErrorClassifier()
	if dialect == DialectSQLite {
		classifier = NewSQLiteErrorClassifier()
	}

	return newDB(conn, dialect, classifier, logger.Nop()), mock
}
