package errx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	base := errors.New("boom")
	err := New(base, http.StatusBadGateway, "upstream failed")

	assert.Equal(t, "upstream failed: boom", err.Error())
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "only message", New(nil, http.StatusTeapot, "only message").Error())
}

func TestWrapRedis(t *testing.T) {
	assert.NoError(t, WrapRedis(nil))

	notFound := WrapRedis(redis.Nil)
	require.Error(t, notFound)
	assert.Equal(t, http.StatusNotFound, StatusOf(notFound))
	assert.ErrorIs(t, notFound, redis.Nil)

	failed := WrapRedis(errors.New("connection refused"))
	assert.Equal(t, http.StatusBadGateway, StatusOf(failed))
	assert.Equal(t, RedisErrorMessage, MessageOf(failed))
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("plain")))
	assert.Equal(t, http.StatusNotFound, StatusOf(NotFound("product %s", "p-1")))
	assert.Equal(t, http.StatusBadRequest, StatusOf(fmt.Errorf("handler: %w", InvalidInput("width"))))
	assert.Equal(t, http.StatusBadGateway, StatusOf(WrapCatalog(errors.New("timeout"))))
	assert.Equal(t, SystemErrorMessage, MessageOf(errors.New("plain")))
}

func TestAppError_As(t *testing.T) {
	err := fmt.Errorf("load cart: %w", NotFound("cart %s", "c-1"))

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, NotFoundMessage, appErr.Message)
	assert.Contains(t, appErr.Error(), "cart c-1")
}
