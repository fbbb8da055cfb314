package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnect_InvalidURL(t *testing.T) {
	_, err := Connect(context.Background(), "not-a-database-url://%%")

	assert.Error(t, err)
}

func TestClose_NilPoolIsSafe(t *testing.T) {
	db := &DB{}

	assert.NotPanics(t, func() { db.Close() })
}
