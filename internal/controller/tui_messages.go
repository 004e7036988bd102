package controller

// Message types.
type summariesMsg struct {
	items    []callableItem
	variants int
	err      error
}

type concurrencyMsg struct {
	workers int
	files   int
}

type startFileMsg struct {
	worker int
	path   string
}

type completedFileMsg struct {
	result fileResult
}

type finishedMsg struct {
	files int
}

// List item types.
type callableItem struct {
	label    string
	variants int
}

func (c callableItem) FilterValue() string {
	return c.label
}

// fileResult is one generated (or failed) source file.
type fileResult struct {
	path     string
	output   string
	status   string
	wrappers []string
	variants int
	detail   string
}

func (r fileResult) FilterValue() string {
	return r.path + " " + r.status
}
