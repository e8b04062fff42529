package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"cisniff/internal/driver"
	"cisniff/internal/ui"
)

type checkOutcome struct {
	result *driver.Result
	err    error
}

// runWithProgress runs check while a progress view draws on stderr.
func runWithProgress(title string, check func(driver.ProgressSink) (*driver.Result, error)) (*driver.Result, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		res, err := check(driver.ChannelSink{Ch: events})
		outcomeCh <- checkOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	// программа могла выйти раньше (Ctrl+C), не даём воркерам зависнуть на канале
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
