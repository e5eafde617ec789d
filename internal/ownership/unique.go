package ownership

import (
	serr "github.com/IvanChernomyrdin/go-songfactory/internal/shared/errors"
)

// noCopy ловится go vet (copylocks), если структуру копируют по значению.
type noCopy struct{}

func (*noCopy) Lock() {}
func (*noCopy) Unlock() {}

// Unique — эксклюзивный владелец одного объекта в арене.
//
// Всегда передаётся по указателю. Нулевое значение — пустой хэндл.
type Unique[T any] struct {
	_     noCopy
	arena *Arena[T]
	ref   Ref
}

// Get заимствует объект. Указатель действителен, пока жив владелец.
//
// Пустой хэндл (после Move/Reset) возвращает serr.ErrMovedFrom,
// устаревший (объект уничтожен через арену) — serr.ErrStaleHandle.
func (h *Unique[T]) Get() (*T, error) {
	if h == nil || h.arena == nil {
		return nil, serr.ErrMovedFrom
	}
	s, err := h.arena.lookup(h.ref)
	if err != nil {
		return nil, err
	}
	return s.value, nil
}

// MustGet как Get, но паникует на ошибке. Для мест, где пустой хэндл — баг.
func (h *Unique[T]) MustGet() *T {
	v, err := h.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// Valid сообщает, владеет ли хэндл живым объектом.
func (h *Unique[T]) Valid() bool {
	_, err := h.Get()
	return err == nil
}

// Ref возвращает адрес объекта. У пустого хэндла — нулевой Ref.
func (h *Unique[T]) Ref() Ref {
	if h == nil {
		return Ref{}
	}
	return h.ref
}

// Move передаёт владение новому хэндлу. Исходный хэндл становится пустым.
// Move пустого хэндла возвращает пустой хэндл.
func (h *Unique[T]) Move() *Unique[T] {
	out := &Unique[T]{}
	if h == nil {
		return out
	}
	out.arena, out.ref = h.arena, h.ref
	h.arena, h.ref = nil, Ref{}
	return out
}

// Reset уничтожает объект и делает хэндл пустым. На пустом хэндле ничего не делает.
func (h *Unique[T]) Reset() error {
	if h == nil || h.arena == nil {
		return nil
	}
	a, ref := h.arena, h.ref
	h.arena, h.ref = nil, Ref{}
	return a.destroy(ref)
}

// Release — Reset для defer. Ошибка устаревшего хэндла здесь означает,
// что объект уже уничтожен аренной (Close), поэтому она отбрасывается.
func (h *Unique[T]) Release() {
	_ = h.Reset()
}

// Replace уничтожает текущий объект и забирает владение у other.
// other становится пустым. Replace самим собой ничего не делает.
func (h *Unique[T]) Replace(other *Unique[T]) error {
	if h == other {
		return nil
	}
	err := h.Reset()
	if other != nil {
		h.arena, h.ref = other.arena, other.ref
		other.arena, other.ref = nil, Ref{}
	}
	return err
}
