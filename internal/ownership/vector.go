package ownership

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	serr "github.com/IvanChernomyrdin/go-songfactory/internal/shared/errors"
)

// Order — порядок уничтожения элементов при Clear.
type Order int

const (
	// Forward — в порядке вставки.
	Forward Order = iota
	// Reverse — от последнего к первому.
	Reverse
)

func (o Order) String() string {
	if o == Reverse {
		return "reverse"
	}
	return "forward"
}

// ParseOrder разбирает "forward" или "reverse".
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forward", "":
		return Forward, nil
	case "reverse":
		return Reverse, nil
	}
	return Forward, fmt.Errorf("unknown destroy order %q", s)
}

// Vector — упорядоченная последовательность эксклюзивных владельцев.
//
// Каждый элемент владеет ровно одним объектом. Нулевое значение готово к работе
// и уничтожает элементы в порядке Forward.
type Vector[T any] struct {
	items []*Unique[T]
	order Order
}

// NewVector создаёт пустую последовательность с заданным порядком уничтожения.
func NewVector[T any](order Order) *Vector[T] {
	return &Vector[T]{order: order}
}

// Order возвращает порядок уничтожения.
func (v *Vector[T]) Order() Order {
	return v.order
}

// Len — количество элементов.
func (v *Vector[T]) Len() int {
	return len(v.items)
}

// PushBack забирает владение у h и кладёт его в конец.
// После вызова h пуст. Пустой или устаревший h не принимается.
func (v *Vector[T]) PushBack(h *Unique[T]) error {
	if _, err := h.Get(); err != nil {
		return fmt.Errorf("push back: %w", err)
	}
	v.items = append(v.items, h.Move())
	return nil
}

// At заимствует объект по индексу.
func (v *Vector[T]) At(i int) (*T, error) {
	h, err := v.Slot(i)
	if err != nil {
		return nil, err
	}
	return h.Get()
}

// Slot возвращает сам владеющий слот (как ссылку на элемент).
// Через него можно заменить объект (Replace) или забрать владение (Move);
// в последнем случае слот остаётся в последовательности пустым.
func (v *Vector[T]) Slot(i int) (*Unique[T], error) {
	if i < 0 || i >= len(v.items) {
		return nil, fmt.Errorf("%w: %d (len %d)", serr.ErrIndexOutOfRange, i, len(v.items))
	}
	return v.items[i], nil
}

// Take забирает владение элементом i и удаляет слот. Объект не уничтожается.
func (v *Vector[T]) Take(i int) (*Unique[T], error) {
	h, err := v.Slot(i)
	if err != nil {
		return nil, err
	}
	v.items = slices.Delete(v.items, i, i+1)
	return h.Move(), nil
}

// Remove уничтожает элемент i и удаляет слот.
func (v *Vector[T]) Remove(i int) error {
	h, err := v.Take(i)
	if err != nil {
		return err
	}
	return h.Reset()
}

// Borrowed итерирует по элементам в порядке вставки, отдавая заимствованные
// указатели на объекты. Владение не меняется, события trace не возникают.
// Для слота, из которого владение забрали через Slot/Slots, отдаётся nil.
func (v *Vector[T]) Borrowed() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < len(v.items); i++ {
			p, _ := v.items[i].Get()
			if !yield(i, p) {
				return
			}
		}
	}
}

// Slots итерирует по самим владеющим слотам в порядке вставки (изменяемое заимствование).
// Слот остаётся собственностью последовательности.
func (v *Vector[T]) Slots() iter.Seq2[int, *Unique[T]] {
	return func(yield func(int, *Unique[T]) bool) {
		for i := 0; i < len(v.items); i++ {
			if !yield(i, v.items[i]) {
				return
			}
		}
	}
}

// Clear уничтожает все элементы в порядке Order и очищает последовательность.
// Пустые слоты пропускаются.
func (v *Vector[T]) Clear() error {
	items := v.items
	v.items = nil

	var errs []error
	destroy := func(h *Unique[T]) {
		if err := h.Reset(); err != nil {
			errs = append(errs, err)
		}
	}

	if v.order == Reverse {
		for i := len(items) - 1; i >= 0; i-- {
			destroy(items[i])
		}
	} else {
		for _, h := range items {
			destroy(h)
		}
	}
	return errors.Join(errs...)
}

// Release — Clear для defer.
func (v *Vector[T]) Release() {
	_ = v.Clear()
}
