package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"ctruct/internal/driver"
	"ctruct/internal/source"
	"ctruct/internal/ui"
)

type dirOutcome struct {
	fileSet *source.FileSet
	results []driver.FileResult
	err     error
}

func tokenizeDirWithUI(ctx context.Context, title, dir string, files []string, opts driver.Options) (*source.FileSet, []driver.FileResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan dirOutcome, 1)

	go func() {
		o := opts
		o.Progress = driver.ChannelSink(events)
		fs, res, err := driver.TokenizeDir(ctx, dir, o)
		outcomeCh <- dirOutcome{fileSet: fs, results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	final, uiErr := program.Run()
	if uiErr != nil || !ui.Completed(final) {
		// пользователь прервал UI: останавливаем воркеры
		cancel()
	}
	// дочитываем события, чтобы воркеры не блокировались на канале
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
