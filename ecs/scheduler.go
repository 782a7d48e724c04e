package ecs

// Scheduler runs systems in the order they were added. The order is part of
// the game's correctness: input before rope logic, physics step before the
// hit drain, destruction last.
type Scheduler struct {
	systems []System
}

// NewScheduler returns a scheduler running systems in argument order. Nil
// systems are skipped.
func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
}

// Systems returns a copy of the run order.
func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
