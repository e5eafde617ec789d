// Package errors содержит общие ошибки приложения.
//
// Ошибки владения (moved-from, stale, out-of-range) считаются ошибками программиста:
// они возвращаются из пакета ownership и проверяются через errors.Is.
// ErrAllocation — единственная ошибка, которая может возникнуть при корректном коде,
// и демо считает её фатальной.
package errors

import "errors"

var (
	// Арена не смогла выделить слот под новый объект
	ErrAllocation = errors.New("allocation failed")
	// Хэндл пуст: владение уже передано или объект уничтожен
	ErrMovedFrom = errors.New("use of moved-from handle")
	// Поколение слота не совпадает с хэндлом (слот освобождён и переиспользован)
	ErrStaleHandle = errors.New("stale handle")
	// Индекс за пределами последовательности
	ErrIndexOutOfRange = errors.New("index out of range")
	// При закрытии арены остались живые объекты
	ErrLeaked = errors.New("leaked objects")
)

// конфиг
var (
	ErrInvalidConfig = errors.New("invalid config")
)
