package analytics

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(habits HabitLister, rows ProgressRanger) *Container {
	service := NewService(habits, rows)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
