package logging

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorHelperLogsAtErrorLevel(t *testing.T) {
	log := NewFakeLogger()
	err := errors.New("boom")

	Error(context.Background(), log, err, Entry("email", "test@test.com"))

	assert := require.New(t)
	assert.Equal(1, log.Count(ERROR))
	assert.Contains(log.Values(), err)
	assert.Contains(log.Values(), "test@test.com")
}

func TestErrorHelperDowngradesCanceled(t *testing.T) {
	log := NewFakeLogger()

	Error(context.Background(), log, fmt.Errorf("query: %w", context.Canceled))

	assert := require.New(t)
	assert.Equal(0, log.Count(ERROR))
	assert.Equal(1, log.Count(WARNING))
}
