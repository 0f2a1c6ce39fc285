package workers

// Workers starts its workers in registration order.
type Workers struct {
	workers []Worker
}

// NewWorkers aggregates the given workers. Nil entries are skipped.
func NewWorkers(ws ...Worker) *Workers {
	out := &Workers{}
	for _, w := range ws {
		if w != nil {
			out.workers = append(out.workers, w)
		}
	}
	return out
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
