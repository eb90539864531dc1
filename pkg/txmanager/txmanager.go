package txmanager

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrReadOnly возвращается при попытке открыть пишущую секцию внутри read-only секции
	ErrReadOnly = errors.New("txmanager: serializable section requested inside read-only section")
)

type txMode int

const (
	modeNone txMode = iota
	modeReadOnly
	modeSerializable
)

type txKey struct{}

// Manager сериализует последовательности "проверить, затем записать" над in-memory хранилищем.
// Пишущие секции взаимно исключают друг друга и читающие секции.
// Вложенный вызов с контекстом, уже находящимся в секции, выполняется в ней же.
type Manager struct {
	mu sync.RWMutex
}

// NewTransactionManager создает новый менеджер транзакций
func NewTransactionManager() *Manager {
	return &Manager{}
}

// DoSerializable выполняет fn эксклюзивно относительно всех остальных секций
func (m *Manager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch modeFromContext(ctx) {
	case modeSerializable:
		return fn(ctx)
	case modeReadOnly:
		return ErrReadOnly
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(context.WithValue(ctx, txKey{}, modeSerializable))
}

// DoReadOnly выполняет fn в читающей секции: параллельно с другими читателями,
// но не одновременно с пишущими секциями
func (m *Manager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if modeFromContext(ctx) != modeNone {
		return fn(ctx)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return fn(context.WithValue(ctx, txKey{}, modeReadOnly))
}

func modeFromContext(ctx context.Context) txMode {
	mode, _ := ctx.Value(txKey{}).(txMode)
	return mode
}
