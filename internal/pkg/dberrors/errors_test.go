package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "students_roll_number_key"})
	fk := &pgconn.PgError{Code: "23503"}
	badDate := &pgconn.PgError{Code: "22007"}

	assert.True(t, IsUniqueViolation(unique, ""))
	assert.True(t, IsUniqueViolation(unique, "students_roll_number_key"))
	assert.False(t, IsUniqueViolation(unique, "other"))
	assert.False(t, IsUniqueViolation(fk, ""))

	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(errors.New("plain")))

	assert.True(t, IsBadInput(badDate))
	assert.True(t, IsBadInput(&pgconn.PgError{Code: "23502"}))
	assert.False(t, IsBadInput(fk))
	assert.False(t, IsBadInput(errors.New("plain")))
}
