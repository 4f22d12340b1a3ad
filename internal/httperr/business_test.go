package httperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/develtlab/barber-booking/internal/httperr"
)

func TestIsBusiness(t *testing.T) {
	err := httperr.ErrBusiness("slot_taken")

	assert.True(t, httperr.IsBusiness(err, "slot_taken"))
	assert.False(t, httperr.IsBusiness(err, "invalid_time"))
	assert.False(t, httperr.IsBusiness(errors.New("boom"), "slot_taken"))
	assert.False(t, httperr.IsBusiness(nil, "slot_taken"))
}

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	assert.True(t, httperr.IsUniqueViolation(unique))
	assert.True(t, httperr.IsUniqueViolation(fmt.Errorf("create user: %w", unique)))

	assert.False(t, httperr.IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, httperr.IsUniqueViolation(errors.New("record not found")))
	assert.False(t, httperr.IsUniqueViolation(nil))
}
