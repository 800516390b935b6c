package handler

// ChangeNotifier is how mutating handlers tell connected consoles that an
// entity changed. The websocket hub implements it; tests plug in a no-op.
type ChangeNotifier interface {
	EntityChanged(entity, action string, id uint)
}

// NopNotifier discards change events.
type NopNotifier struct{}

func (NopNotifier) EntityChanged(entity, action string, id uint) {}
