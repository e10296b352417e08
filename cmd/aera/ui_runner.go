package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"aera/internal/driver"
	"aera/internal/source"
	"aera/internal/ui"
)

type diagnoseOutcome struct {
	fileSet *source.FileSet
	results []driver.FileResult
	err     error
}

// runDiagnoseWithUI runs driver.DiagnoseFiles in the background and renders
// its progress events until the run finishes or the user presses ctrl+c.
func runDiagnoseWithUI(ctx context.Context, title string, files []string, opts driver.Options) (*source.FileSet, []driver.FileResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan diagnoseOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		fs, res, err := driver.DiagnoseFiles(ctx, files, optsCopy)
		outcomeCh <- diagnoseOutcome{fileSet: fs, results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()

	// UI мог завершиться раньше (ctrl+c): отменяем оставшуюся работу и
	// вычитываем события, чтобы воркеры не блокировались на канале.
	cancel()
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
