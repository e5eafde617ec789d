package trace_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/IvanChernomyrdin/go-songfactory/internal/trace"
	"github.com/IvanChernomyrdin/go-songfactory/internal/trace/mocks"
)

func TestWriter_PlainLines(t *testing.T) {
	var buf bytes.Buffer
	w := trace.NewWriter(&buf, false)

	id := trace.ID{Index: 0, Generation: 1}
	w.Constructed(id, "Michael Jackson - Beat It")
	w.Destroyed(id, "Michael Jackson - Beat It")

	want := "+ #0.1 constructed Michael Jackson - Beat It\n" +
		"- #0.1 destroyed   Michael Jackson - Beat It\n"
	require.Equal(t, want, buf.String())
}

func TestWriter_Color(t *testing.T) {
	var buf bytes.Buffer
	w := trace.NewWriter(&buf, true)

	w.Constructed(trace.ID{Index: 2, Generation: 3}, "x")

	require.Equal(t, "\x1b[32m+ #2.3 constructed x\x1b[0m\n", buf.String())
}

func TestUseColor(t *testing.T) {
	require.True(t, trace.UseColor("always", nil))
	require.False(t, trace.UseColor("never", nil))
	require.False(t, trace.UseColor("auto", nil))
}

func TestRecorder_CountsAndOrder(t *testing.T) {
	r := trace.NewRecorder()

	r.Constructed(trace.ID{Index: 0, Generation: 1}, "a")
	r.Constructed(trace.ID{Index: 1, Generation: 1}, "b")
	r.Destroyed(trace.ID{Index: 1, Generation: 1}, "b")

	require.Equal(t, 3, r.Len())
	require.Equal(t, 2, r.Count(trace.KindConstructed))
	require.Equal(t, 1, r.Count(trace.KindDestroyed))
	require.Equal(t, []string{"a", "b"}, r.Subjects(trace.KindConstructed))
	require.Equal(t, []string{"b"}, r.Subjects(trace.KindDestroyed))

	// Events отдаёт копию
	events := r.Events()
	events[0].Subject = "changed"
	require.Equal(t, "a", r.Events()[0].Subject)
}

func TestMulti_FansOutInOrderAndSkipsNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mocks.NewMockTracer(ctrl)
	second := mocks.NewMockTracer(ctrl)

	id := trace.ID{Index: 4, Generation: 2}
	gomock.InOrder(
		first.EXPECT().Constructed(id, "song"),
		second.EXPECT().Constructed(id, "song"),
		first.EXPECT().Destroyed(id, "song"),
		second.EXPECT().Destroyed(id, "song"),
	)

	m := trace.Multi(first, nil, second)
	m.Constructed(id, "song")
	m.Destroyed(id, "song")
}

func TestZap_WritesStructuredEntries(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	z := trace.NewZap(zap.New(core))

	z.Constructed(trace.ID{Index: 1, Generation: 5}, "Cyndi Lauper - Time After Time")
	z.Destroyed(trace.ID{Index: 1, Generation: 5}, "Cyndi Lauper - Time After Time")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "object constructed", entries[0].Message)
	require.Equal(t, "object destroyed", entries[1].Message)

	ctx := entries[0].ContextMap()
	require.EqualValues(t, 1, ctx["index"])
	require.EqualValues(t, 5, ctx["generation"])
	require.Equal(t, "Cyndi Lauper - Time After Time", ctx["subject"])
}
