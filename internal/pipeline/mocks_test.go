package pipeline

import (
	"context"
	"errors"

	"github.com/mblarsen/trans-selection/internal/clipboard"
	"github.com/mblarsen/trans-selection/internal/runner"
)

type mockFinder struct {
	installed map[string]bool
}

func (m *mockFinder) Available(name string) bool {
	return m.installed[name]
}

type mockBoard struct {
	Primary   string
	Clipboard string
	PasteErr  error
	CopyErr   error
	Pasted    []clipboard.Selection
	Copied    []string
}

func (m *mockBoard) Paste(_ context.Context, sel clipboard.Selection) (string, error) {
	m.Pasted = append(m.Pasted, sel)
	if m.PasteErr != nil {
		return "", m.PasteErr
	}
	if sel == clipboard.Primary {
		return m.Primary, nil
	}
	return m.Clipboard, nil
}

func (m *mockBoard) Copy(_ context.Context, text string) error {
	if m.CopyErr != nil {
		return m.CopyErr
	}
	m.Copied = append(m.Copied, text)
	return nil
}

// mockRunner plays the translation engine.
type mockRunner struct {
	Calls  [][]string
	Stdout string
	Exit   int
}

func (m *mockRunner) Run(_ context.Context, args []string, _ runner.Options) (runner.Result, error) {
	m.Calls = append(m.Calls, args)
	if m.Exit != 0 {
		return runner.Result{ExitCode: m.Exit}, &runner.CommandError{
			Args:     args,
			ExitCode: m.Exit,
			Err:      errors.New("exit status 1"),
		}
	}
	return runner.Result{Stdout: m.Stdout}, nil
}

type notification struct {
	Critical bool
	Title    string
	Message  string
}

type mockNotifier struct {
	Sent []notification
	Err  error
}

func (m *mockNotifier) Notify(_ context.Context, title, message string) error {
	m.Sent = append(m.Sent, notification{Title: title, Message: message})
	return m.Err
}

func (m *mockNotifier) Alert(_ context.Context, title, message string) error {
	m.Sent = append(m.Sent, notification{Critical: true, Title: title, Message: message})
	return m.Err
}
