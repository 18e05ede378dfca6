package overview

type Container struct {
	Handler *Handler
	Manager *Manager
}

func NewContainer(habits HabitLister, progress ProgressReader) *Container {
	manager := NewManager(habits, progress)
	handler := NewHandler(manager)

	return &Container{
		Handler: handler,
		Manager: manager,
	}
}
