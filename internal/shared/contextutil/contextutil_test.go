package contextutil_test

import (
	"context"
	"testing"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestExtractMetadata(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "req-1")
	ctx = contextutil.WithUserID(ctx, "user-1")
	ctx = contextutil.WithRole(ctx, "accountant")

	md := contextutil.ExtractMetadata(ctx)

	assert.Equal(t, "req-1", md.RequestID)
	assert.Equal(t, "user-1", md.UserID)
	assert.Equal(t, "accountant", md.Role)
}

func TestGetLogger(t *testing.T) {
	t.Run("from context", func(t *testing.T) {
		l := zap.NewExample()
		ctx := contextutil.WithLogger(context.Background(), l)

		assert.Same(t, l, contextutil.GetLogger(ctx, nil))
	})

	t.Run("fallback", func(t *testing.T) {
		def := zap.NewExample()

		assert.Same(t, def, contextutil.GetLogger(context.Background(), def))
		assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))
	})
}
