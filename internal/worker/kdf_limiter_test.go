package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filekeeper/server/internal/worker"
)

func TestKDFLimiter_Do(t *testing.T) {
	limiter := worker.NewKDFLimiter(2)

	t.Run("Функция выполняется и её результат возвращается", func(t *testing.T) {
		called := false
		err := limiter.Do(context.Background(), func() error {
			called = true
			return nil
		})
		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("Ошибка функции пробрасывается наружу", func(t *testing.T) {
		wantErr := errors.New("ошибка вычисления")
		err := limiter.Do(context.Background(), func() error { return wantErr })
		assert.ErrorIs(t, err, wantErr)
	})
}

func TestKDFLimiter_ContextCancelled(t *testing.T) {
	limiter := worker.NewKDFLimiter(1)

	// Занимаем единственный слот до конца теста.
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		_ = limiter.Do(context.Background(), func() error {
			close(done)
			<-release
			return nil
		})
	}()
	<-done
	defer close(release)

	// Второй вызов не дождётся слота и прервётся отменой контекста.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	called := false
	err := limiter.Do(ctx, func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, called, "функция не должна вызываться без слота")
}
