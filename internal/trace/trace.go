// Package trace описывает поток событий жизненного цикла объектов:
// создание (constructed) и уничтожение (destroyed).
//
// Поток используется только для наблюдения за владением и никак не влияет
// на само владение. Реализации:
//   - Writer — текстовые строки в io.Writer (по умолчанию stdout);
//   - Zap — структурированные записи в zap-логгер;
//   - Recorder — события в памяти (тесты и отчёт демо);
//   - Multi — рассылка в несколько трейсеров.
package trace

//go:generate mockgen -source=trace.go -destination=mocks/tracer_mock.go -package=mocks

import "fmt"

// Kind — тип события.
type Kind string

const (
	KindConstructed Kind = "constructed"
	KindDestroyed   Kind = "destroyed"
)

// ID идентифицирует объект в арене: номер слота и его поколение.
type ID struct {
	Index      uint32
	Generation uint32
}

func (id ID) String() string {
	return fmt.Sprintf("#%d.%d", id.Index, id.Generation)
}

// Event — одно событие жизненного цикла.
type Event struct {
	Kind    Kind
	ID      ID
	Subject string
}

// Tracer получает события жизненного цикла.
//
// Каждое событие вызывается ровно один раз на объект.
type Tracer interface {
	Constructed(id ID, subject string)
	Destroyed(id ID, subject string)
}

// Nop — трейсер, который ничего не делает.
type Nop struct{}

func (Nop) Constructed(ID, string) {}
func (Nop) Destroyed(ID, string) {}

type multi []Tracer

// Multi рассылает каждое событие всем переданным трейсерам по порядку.
// nil-трейсеры пропускаются.
func Multi(tracers ...Tracer) Tracer {
	out := make(multi, 0, len(tracers))
	for _, t := range tracers {
		if t != nil {
			out = append(out, t)
		}
	}
	return out
}

func (m multi) Constructed(id ID, subject string) {
	for _, t := range m {
		t.Constructed(id, subject)
	}
}

func (m multi) Destroyed(id ID, subject string) {
	for _, t := range m {
		t.Destroyed(id, subject)
	}
}
