// Package demo содержит сценарий демонстрации эксклюзивного владения:
//   - фабрика отдаёт единственного владельца одной песни;
//   - несколько песен перемещаются в Vector, исходные хэндлы пустеют;
//   - Vector обходится по ссылкам (Borrowed и Slots), без копирования владельцев;
//   - при выходе из области всё уничтожается: сначала вектор, затем одиночная песня.
package demo

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/go-songfactory/internal/config"
	"github.com/IvanChernomyrdin/go-songfactory/internal/ownership"
	serr "github.com/IvanChernomyrdin/go-songfactory/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-songfactory/internal/shared/logger"
	"github.com/IvanChernomyrdin/go-songfactory/internal/song"
	"github.com/IvanChernomyrdin/go-songfactory/internal/trace"
)

// Report — итог прогона.
type Report struct {
	RunID       string
	Constructed int
	Destroyed   int
	// Visited — сколько элементов посетил обход Borrowed.
	Visited int
	// IterationEvents — события trace во время обходов. Всегда 0.
	IterationEvents int
	Duration        time.Duration
}

// Driver выполняет демонстрацию.
type Driver struct {
	cfg    *config.Config
	out    io.Writer
	tracer trace.Tracer
	log    *logger.Logger
}

// New создаёт Driver. out — куда печатать содержимое песен,
// tracer — получатель событий создания/уничтожения (может быть nil).
func New(cfg *config.Config, out io.Writer, tracer trace.Tracer, log *logger.Logger) *Driver {
	if log == nil {
		log = logger.Nop()
	}
	return &Driver{cfg: cfg, out: out, tracer: tracer, log: log}
}

// Run выполняет сценарий. serr.ErrAllocation фатальна: сценарий прерывается,
// но всё уже созданное корректно уничтожается.
func (d *Driver) Run() (Report, error) {
	started := time.Now()
	rep := Report{RunID: uuid.NewString()}

	order, err := ownership.ParseOrder(d.cfg.Trace.DestroyOrder)
	if err != nil {
		return rep, err
	}

	rec := trace.NewRecorder()
	arena := song.NewArena(
		ownership.WithTracer[song.Song](trace.Multi(d.tracer, rec)),
		ownership.WithMaxSlots[song.Song](d.cfg.Arena.MaxSlots),
	)

	d.log.Debug("demo started",
		zap.String("run_id", rep.RunID),
		zap.String("arena", arena.ID().String()),
		zap.Stringer("destroy_order", order),
	)

	runErr := d.run(arena, order, rec, &rep)
	// после run всё должно быть освобождено; Close ловит утечки
	if err := arena.Close(); err != nil {
		runErr = errors.Join(runErr, err)
	}

	rep.Constructed = rec.Count(trace.KindConstructed)
	rep.Destroyed = rec.Count(trace.KindDestroyed)
	rep.Duration = time.Since(started)
	d.log.LogRun(rep.RunID, rep.Constructed, rep.Destroyed, rep.Visited, rep.Duration)

	if runErr != nil {
		if errors.Is(runErr, serr.ErrAllocation) {
			d.log.Error("allocation failed, demo aborted", zap.Error(runErr))
		}
		return rep, runErr
	}
	return rep, nil
}

func (d *Driver) run(arena *song.Arena, order ownership.Order, rec *trace.Recorder, rep *Report) error {
	fs := d.cfg.Demo.Factory
	single, err := song.Factory(arena, fs.Artist, fs.Title)
	if err != nil {
		return err
	}
	defer single.Release()

	s := single.MustGet()
	fmt.Fprintf(d.out, "factory: artist=%q title=%q\n", s.Artist(), s.Title())

	songs := ownership.NewVector[song.Song](order)
	// объявлен позже одиночной песни, поэтому уничтожается раньше
	defer songs.Release()

	for _, sc := range d.cfg.Demo.Songs {
		h, err := song.Factory(arena, sc.Artist, sc.Title)
		if err != nil {
			return err
		}
		if err := songs.PushBack(h); err != nil {
			h.Release()
			return err
		}
		last, _ := songs.Slot(songs.Len() - 1)
		d.log.Debug("moved into vector",
			zap.Stringer("ref", last.Ref()),
			zap.Bool("source_valid", h.Valid()),
		)
	}

	before := rec.Len()

	fmt.Fprintln(d.out, "songs (borrowed):")
	for i, it := range songs.Borrowed() {
		fmt.Fprintf(d.out, "  [%d] %s\n", i, it)
		rep.Visited++
	}

	fmt.Fprintln(d.out, "slots (by reference):")
	for i, slot := range songs.Slots() {
		fmt.Fprintf(d.out, "  [%d] %s owns %s\n", i, slot.Ref(), slot.MustGet().Title())
	}

	rep.IterationEvents = rec.Len() - before
	return nil
}
