package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-tab-keeper/internal/utils"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "context canceled", err: fmt.Errorf("exec: %w", context.Canceled), want: NonRetryable},
		{name: "network error", err: errors.New("dial tcp: connection refused"), want: Retryable},
		{name: "connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, want: Retryable},
		{name: "serialization failure", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, want: Retryable},
		{name: "deadlock", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: Retryable},
		{name: "too many connections", err: &pgconn.PgError{Code: pgerrcode.TooManyConnections}, want: Retryable},
		{name: "admin shutdown", err: &pgconn.PgError{Code: pgerrcode.AdminShutdown}, want: Retryable},
		{name: "cannot connect now", err: &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, want: Retryable},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: NonRetryable},
		{name: "check violation", err: &pgconn.PgError{Code: pgerrcode.CheckViolation}, want: NonRetryable},
		{name: "undefined table", err: &pgconn.PgError{Code: pgerrcode.UndefinedTable}, want: NonRetryable},
		{name: "cardinality violation", err: &pgconn.PgError{Code: pgerrcode.CardinalityViolation}, want: NonRetryable},
		{name: "wrapped pg error", err: fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgerrcode.SerializationFailure}), want: Retryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestMarkPermanent(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.NoError(t, markPermanent(c, nil))

	permanent := markPermanent(c, &pgconn.PgError{Code: pgerrcode.NotNullViolation})
	assert.True(t, utils.IsPermanent(permanent))
	var pgErr *pgconn.PgError
	assert.ErrorAs(t, permanent, &pgErr)

	transient := markPermanent(c, &pgconn.PgError{Code: pgerrcode.DeadlockDetected})
	assert.False(t, utils.IsPermanent(transient))
}
