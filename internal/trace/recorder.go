package trace

// Recorder запоминает все события в порядке поступления.
//
// Не потокобезопасен, как и всё в пакете ownership.
type Recorder struct {
	events []Event
}

// NewRecorder создаёт пустой рекордер.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Constructed(id ID, subject string) {
	r.events = append(r.events, Event{Kind: KindConstructed, ID: id, Subject: subject})
}

func (r *Recorder) Destroyed(id ID, subject string) {
	r.events = append(r.events, Event{Kind: KindDestroyed, ID: id, Subject: subject})
}

// Events возвращает копию записанных событий.
func (r *Recorder) Events() []Event {
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Count возвращает количество событий заданного типа.
func (r *Recorder) Count(kind Kind) int {
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Subjects возвращает subject всех событий заданного типа по порядку.
func (r *Recorder) Subjects(kind Kind) []string {
	var out []string
	for _, e := range r.events {
		if e.Kind == kind {
			out = append(out, e.Subject)
		}
	}
	return out
}

// Len — общее число событий.
func (r *Recorder) Len() int {
	return len(r.events)
}
