package vectorindex

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abirabbas/portfolio-api/internal/domain"
	"github.com/abirabbas/portfolio-api/internal/embedding"
)

func TestNewPostgres_InvalidCollectionName(t *testing.T) {
	tests := []struct {
		name       string
		collection string
	}{
		{"sql injection", "drop table;--"},
		{"uppercase", "Assistant_Passages"},
		{"leading digit", "7passages"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Rejected before any connection attempt, so no database is needed.
			_, err := NewPostgres(context.Background(), "postgres://ignored", tt.collection, embedding.NewDeterministic(0), nil)

			require.Error(t, err)
			var domainErr *domain.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, domain.ErrCodeValidation, domainErr.Code)
		})
	}
}
