package trace

import "go.uber.org/zap"

// Zap пишет события в zap-логгер как структурированные записи.
type Zap struct {
	log *zap.Logger
}

// NewZap создаёт трейсер поверх логгера.
func NewZap(log *zap.Logger) *Zap {
	return &Zap{log: log}
}

func (t *Zap) Constructed(id ID, subject string) {
	t.log.Info("object constructed", fields(id, subject)...)
}

func (t *Zap) Destroyed(id ID, subject string) {
	t.log.Info("object destroyed", fields(id, subject)...)
}

func fields(id ID, subject string) []zap.Field {
	return []zap.Field{
		zap.Uint32("index", id.Index),
		zap.Uint32("generation", id.Generation),
		zap.String("subject", subject),
	}
}
