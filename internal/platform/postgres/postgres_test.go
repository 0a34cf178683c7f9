package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"tripapp/internal/platform/config"
)

func TestOpenRequiresURL(t *testing.T) {
	db, err := Open(context.Background(), config.Database{})
	assert.Error(t, err)
	assert.Nil(t, db)
}
