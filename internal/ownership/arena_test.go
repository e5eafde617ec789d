package ownership_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-songfactory/internal/ownership"
	serr "github.com/IvanChernomyrdin/go-songfactory/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-songfactory/internal/trace"
)

type item struct {
	name string
}

func (i item) String() string { return "item " + i.name }

func newArena(t *testing.T, opts ...ownership.Option[item]) (*ownership.Arena[item], *trace.Recorder) {
	t.Helper()

	rec := trace.NewRecorder()
	opts = append([]ownership.Option[item]{ownership.WithTracer[item](rec)}, opts...)
	return ownership.NewArena[item](opts...), rec
}

func TestArena_New_TracesConstructionOnce(t *testing.T) {
	a, rec := newArena(t)

	h, err := a.New(item{name: "a"})
	require.NoError(t, err)

	require.Equal(t, 1, rec.Count(trace.KindConstructed))
	require.Equal(t, 0, rec.Count(trace.KindDestroyed))
	require.Equal(t, []string{"item a"}, rec.Subjects(trace.KindConstructed))
	require.Equal(t, 1, a.Live())
	require.Equal(t, ownership.Ref{Index: 0, Generation: 1}, h.Ref())
}

func TestArena_Release_TracesDestructionOnce(t *testing.T) {
	a, rec := newArena(t)

	h, err := a.New(item{name: "a"})
	require.NoError(t, err)

	require.NoError(t, h.Reset())
	require.NoError(t, h.Reset()) // повторно — пустой хэндл, ничего не происходит
	h.Release()

	require.Equal(t, 1, rec.Count(trace.KindDestroyed))
	require.Equal(t, ownership.Stats{Constructed: 1, Destroyed: 1}, a.Stats())
	require.Zero(t, a.Live())
}

func TestArena_ReusedSlot_StaleHandleDetected(t *testing.T) {
	a, rec := newArena(t)

	first, err := a.New(item{name: "first"})
	require.NoError(t, err)
	oldRef := first.Ref()

	// арена уничтожает объект, а хэндл остаётся на руках
	require.ErrorIs(t, a.Close(), serr.ErrLeaked)

	second, err := a.New(item{name: "second"})
	require.NoError(t, err)

	// слот переиспользован, поколение выросло
	require.Equal(t, oldRef.Index, second.Ref().Index)
	require.Equal(t, oldRef.Generation+1, second.Ref().Generation)

	_, err = first.Get()
	require.ErrorIs(t, err, serr.ErrStaleHandle)

	// старый хэндл не может уничтожить новый объект
	require.ErrorIs(t, first.Reset(), serr.ErrStaleHandle)
	got, err := second.Get()
	require.NoError(t, err)
	require.Equal(t, "second", got.name)
	require.Equal(t, 1, rec.Count(trace.KindDestroyed))
}

func TestArena_New_LimitReturnsAllocationError(t *testing.T) {
	a, rec := newArena(t, ownership.WithMaxSlots[item](2))

	h1, err := a.New(item{name: "1"})
	require.NoError(t, err)
	_, err = a.New(item{name: "2"})
	require.NoError(t, err)

	h3, err := a.New(item{name: "3"})
	require.ErrorIs(t, err, serr.ErrAllocation)
	require.Nil(t, h3)
	require.Equal(t, 2, rec.Count(trace.KindConstructed))

	// после освобождения место снова есть
	h1.Release()
	_, err = a.New(item{name: "3"})
	require.NoError(t, err)
}

func TestArena_Close_DestroysLeaksInReverseConstructionOrder(t *testing.T) {
	a, rec := newArena(t)

	h1, _ := a.New(item{name: "1"})
	_, _ = a.New(item{name: "2"})
	_, _ = a.New(item{name: "3"})
	h1.Release()
	_, _ = a.New(item{name: "4"}) // займёт слот 0

	err := a.Close()
	require.ErrorIs(t, err, serr.ErrLeaked)
	require.Contains(t, err.Error(), "3 object(s)")

	require.Equal(t, []string{"item 1", "item 4", "item 3", "item 2"}, rec.Subjects(trace.KindDestroyed))
	require.Zero(t, a.Live())

	// повторный Close — утечек больше нет
	require.NoError(t, a.Close())
}

func TestArena_Close_HandlesBecomeStale(t *testing.T) {
	a, rec := newArena(t)

	h, _ := a.New(item{name: "x"})
	require.Error(t, a.Close())

	_, err := h.Get()
	require.ErrorIs(t, err, serr.ErrStaleHandle)
	require.False(t, h.Valid())

	// Release после Close не даёт второго уничтожения
	h.Release()
	require.Equal(t, 1, rec.Count(trace.KindDestroyed))
}

func TestArena_DefaultDescriberAndCustomDescriber(t *testing.T) {
	type plain struct{ N int }

	rec := trace.NewRecorder()
	a := ownership.NewArena(ownership.WithTracer[plain](rec))
	_, _ = a.New(plain{N: 7})
	require.Equal(t, []string{"{7}"}, rec.Subjects(trace.KindConstructed))

	rec2 := trace.NewRecorder()
	b := ownership.NewArena(
		ownership.WithTracer[plain](rec2),
		ownership.WithDescriber(func(p *plain) string { return "plain" }),
	)
	_, _ = b.New(plain{N: 7})
	require.Equal(t, []string{"plain"}, rec2.Subjects(trace.KindConstructed))
}

func TestArena_IDIsUnique(t *testing.T) {
	a := ownership.NewArena[item]()
	b := ownership.NewArena[item]()
	require.NotEqual(t, a.ID(), b.ID())
}
