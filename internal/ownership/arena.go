package ownership

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	serr "github.com/IvanChernomyrdin/go-songfactory/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-songfactory/internal/trace"
)

// Ref — адрес объекта в арене: индекс слота и поколение.
type Ref = trace.ID

// Stats — счётчики жизненного цикла арены.
type Stats struct {
	Constructed int
	Destroyed   int
}

type slot[T any] struct {
	value *T
	gen   uint32
	live  bool
	seq   uint64 // порядковый номер создания
}

// Arena владеет памятью под объекты типа T и выдаёт на них Unique-хэндлы.
type Arena[T any] struct {
	id       uuid.UUID
	slots    []slot[T]
	free     []uint32
	seq      uint64
	maxLive  int
	tracer   trace.Tracer
	describe func(*T) string
	stats    Stats
}

// Option настраивает арену.
type Option[T any] func(*Arena[T])

// WithTracer задаёт получателя событий создания/уничтожения.
func WithTracer[T any](t trace.Tracer) Option[T] {
	return func(a *Arena[T]) {
		if t != nil {
			a.tracer = t
		}
	}
}

// WithMaxSlots ограничивает число одновременно живых объектов. 0 — без ограничения.
func WithMaxSlots[T any](n int) Option[T] {
	return func(a *Arena[T]) {
		a.maxLive = n
	}
}

// WithDescriber задаёт текстовое представление объекта для trace.
func WithDescriber[T any](fn func(*T) string) Option[T] {
	return func(a *Arena[T]) {
		if fn != nil {
			a.describe = fn
		}
	}
}

// NewArena создаёт пустую арену.
//
// По умолчанию события никуда не пишутся, а объект описывается через
// fmt.Stringer (если реализован) или %v.
func NewArena[T any](opts ...Option[T]) *Arena[T] {
	a := &Arena[T]{
		id:       uuid.New(),
		tracer:   trace.Nop{},
		describe: describeDefault[T],
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func describeDefault[T any](v *T) string {
	if s, ok := any(v).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", *v)
}

// ID — уникальный идентификатор арены (для логов).
func (a *Arena[T]) ID() uuid.UUID {
	return a.id
}

// New помещает v в арену и возвращает единственного владельца.
//
// Значение копируется в отдельный объект в куче, поэтому указатели,
// полученные через Get, не меняются при росте таблицы слотов.
// Если достигнут лимит WithMaxSlots — возвращает serr.ErrAllocation.
func (a *Arena[T]) New(v T) (*Unique[T], error) {
	if a.maxLive > 0 && a.Live() >= a.maxLive {
		return nil, fmt.Errorf("%w: arena limit of %d live objects reached", serr.ErrAllocation, a.maxLive)
	}

	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot[T]{})
		idx = uint32(len(a.slots) - 1)
	}

	s := &a.slots[idx]
	s.gen++
	s.value = &v
	s.live = true
	a.seq++
	s.seq = a.seq

	ref := Ref{Index: idx, Generation: s.gen}
	a.stats.Constructed++
	a.tracer.Constructed(ref, a.describe(s.value))

	return &Unique[T]{arena: a, ref: ref}, nil
}

// Live — число объектов, которые сейчас кем-то владеются.
func (a *Arena[T]) Live() int {
	return a.stats.Constructed - a.stats.Destroyed
}

// Stats возвращает счётчики создания и уничтожения.
func (a *Arena[T]) Stats() Stats {
	return a.stats
}

// Close уничтожает все объекты, оставшиеся без освобождения, в порядке,
// обратном созданию. Если такие были — возвращает serr.ErrLeaked.
// Хэндлы на них после этого считаются устаревшими.
func (a *Arena[T]) Close() error {
	var leaked []uint32
	for i := range a.slots {
		if a.slots[i].live {
			leaked = append(leaked, uint32(i))
		}
	}
	if len(leaked) == 0 {
		return nil
	}

	slices.SortFunc(leaked, func(x, y uint32) int {
		// сначала самые поздние
		switch {
		case a.slots[x].seq > a.slots[y].seq:
			return -1
		case a.slots[x].seq < a.slots[y].seq:
			return 1
		}
		return 0
	})
	for _, idx := range leaked {
		_ = a.destroy(Ref{Index: idx, Generation: a.slots[idx].gen})
	}
	return fmt.Errorf("%w: %d object(s) still owned when arena closed", serr.ErrLeaked, len(leaked))
}

func (a *Arena[T]) lookup(ref Ref) (*slot[T], error) {
	if int(ref.Index) >= len(a.slots) {
		return nil, fmt.Errorf("%w: %s", serr.ErrStaleHandle, ref)
	}
	s := &a.slots[ref.Index]
	if !s.live || s.gen != ref.Generation {
		return nil, fmt.Errorf("%w: %s (slot generation %d)", serr.ErrStaleHandle, ref, s.gen)
	}
	return s, nil
}

func (a *Arena[T]) destroy(ref Ref) error {
	s, err := a.lookup(ref)
	if err != nil {
		return err
	}

	subject := a.describe(s.value)
	s.value = nil
	s.live = false
	a.free = append(a.free, ref.Index)
	a.stats.Destroyed++
	a.tracer.Destroyed(ref, subject)
	return nil
}
