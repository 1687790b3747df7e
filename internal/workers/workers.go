package workers

type Workers struct {
	workers []Worker
}

// NewWorkers groups the given workers into a single aggregate.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
