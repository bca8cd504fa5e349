package kv

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestTransactionsUnsupported(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"standalone server", mongo.CommandError{Code: 20, Name: "IllegalOperation"}, true},
		{"wrapped", fmt.Errorf("commit: %w", mongo.CommandError{Code: 20}), true},
		{"write conflict", mongo.CommandError{Code: 112, Name: "WriteConflict"}, false},
		{"deadline", context.DeadlineExceeded, false},
		{"plain error", errors.New("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, transactionsUnsupported(tt.err))
		})
	}
}
