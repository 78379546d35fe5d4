// Package worker ограничивает число одновременных дорогих вычислений.
package worker

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"
)

// KDFLimiter ограничивает число параллельных KDF-вычислений (PBKDF2, scrypt).
// Выведение ключа намеренно дорогое, и без ограничения поток таких запросов
// выел бы CPU у всей остальной обработки.
type KDFLimiter struct {
	sem *semaphore.Weighted
}

// NewKDFLimiter создаёт ограничитель на slots одновременных вычислений.
func NewKDFLimiter(slots int64) *KDFLimiter {
	return &KDFLimiter{sem: semaphore.NewWeighted(slots)}
}

// Do выполняет fn, заняв один слот. Ожидание слота прерывается отменой
// контекста запроса.
func (l *KDFLimiter) Do(ctx context.Context, fn func() error) error {
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("ожидание KDF-слота прервано: %w", err)
	}
	defer l.sem.Release(1)
	return fn()
}
