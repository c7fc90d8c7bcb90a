package database

import (
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "translated by gorm", err: gorm.ErrDuplicatedKey, want: true},
		{name: "wrapped gorm error", err: pkgerrors.Wrap(gorm.ErrDuplicatedKey, "insert like"), want: true},
		{name: "mysql duplicate entry", err: &mysql.MySQLError{Number: 1062, Message: "Duplicate entry '1-2' for key 'PRIMARY'"}, want: true},
		{name: "wrapped mysql duplicate entry", err: pkgerrors.Wrap(&mysql.MySQLError{Number: 1062}, "insert report"), want: true},
		{name: "other mysql error", err: &mysql.MySQLError{Number: 1452}, want: false},
		{name: "record not found", err: gorm.ErrRecordNotFound, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDuplicateError(tt.err))
		})
	}
}
