package memory

import (
	"time"

	"github.com/google/uuid"
)

// IDGenerator генерирует идентификаторы новых записей
type IDGenerator func() string

// Clock возвращает текущее время (для created_at / updated_at)
type Clock func() time.Time

// Option настраивает репозиторий
type Option func(*options)

type options struct {
	newID IDGenerator
	now   Clock
}

// WithIDGenerator подменяет генератор идентификаторов (используется в тестах)
func WithIDGenerator(gen IDGenerator) Option {
	return func(o *options) {
		o.newID = gen
	}
}

// WithClock подменяет источник времени
func WithClock(clock Clock) Option {
	return func(o *options) {
		o.now = clock
	}
}

func buildOptions(opts []Option) options {
	o := options{
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
