package project

// Reporter observes file writes during a generation run.
type Reporter interface {
	Begin(total int)
	Step(file string)
	Finish()
}

type nopReporter struct{}

func (nopReporter) Begin(int) {}

func (nopReporter) Step(string) {}

func (nopReporter) Finish() {}
