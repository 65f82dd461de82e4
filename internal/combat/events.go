package combat

import "go.uber.org/zap"

// SetEmitter installs the event sink. Clones share it.
func (b *Battlefield) SetEmitter(emit func(Event)) { b.emit = emit }

func (b *Battlefield) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	b.log = l
}

func (b *Battlefield) emitEvent(typ string, payload map[string]any) {
	if b.emit == nil {
		return
	}
	b.emit(Event{Round: b.rounds + 1, Type: typ, Payload: payload})
}

func unitFields(u *Unit) []zap.Field {
	return []zap.Field{
		zap.Stringer("faction", u.Faction),
		zap.Int("id", u.ID),
		zap.Int("x", u.Pos.X),
		zap.Int("y", u.Pos.Y),
		zap.Int("hp", u.HP),
	}
}

// Recorder collects events in memory, for reports and tests.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Emit(ev Event) { r.Events = append(r.Events, ev) }

func (r *Recorder) Count(typ string) int {
	n := 0
	for _, ev := range r.Events {
		if ev.Type == typ {
			n++
		}
	}
	return n
}
