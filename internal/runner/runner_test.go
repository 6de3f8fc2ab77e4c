package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	defer os.Exit(0)

	args := os.Args
	for len(args) > 0 {
		if args[0] == "--" {
			args = args[1:]
			break
		}
		args = args[1:]
	}
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "No command\n")
		os.Exit(1)
	}

	cmd, args := args[0], args[1:]
	switch cmd {
	case "echo":
		fmt.Fprint(os.Stdout, strings.Join(args, " "))
	case "cat":
		_, _ = io.Copy(os.Stdout, os.Stdin)
	case "fail":
		fmt.Fprint(os.Stderr, "boom")
		os.Exit(3)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", cmd)
		os.Exit(1)
	}
}

type helperExecer struct{}

func (helperExecer) CommandContext(ctx context.Context, name string, arg ...string) *exec.Cmd {
	cs := []string{"-test.run=TestHelperProcess", "--", name}
	cs = append(cs, arg...)
	cmd := exec.CommandContext(ctx, os.Args[0], cs...)
	cmd.Env = []string{"GO_WANT_HELPER_PROCESS=1"}
	return cmd
}

func useHelper(t *testing.T) {
	t.Helper()
	original := cmdExecer
	cmdExecer = helperExecer{}
	t.Cleanup(func() { cmdExecer = original })
}

func TestRun(t *testing.T) {
	useHelper(t)
	r := New()
	ctx := context.Background()

	t.Run("captures stdout", func(t *testing.T) {
		res, err := r.Run(ctx, []string{"echo", "hello", "world"}, Options{Capture: true, Check: true})
		require.NoError(t, err)
		assert.Equal(t, "hello world", res.Stdout)
		assert.Equal(t, 0, res.ExitCode)
	})

	t.Run("feeds stdin", func(t *testing.T) {
		res, err := r.Run(ctx, []string{"cat"}, Options{Stdin: "piped", Capture: true, Check: true})
		require.NoError(t, err)
		assert.Equal(t, "piped", res.Stdout)
	})

	t.Run("checked non-zero exit", func(t *testing.T) {
		_, err := r.Run(ctx, []string{"fail", "x"}, Options{Capture: true, Check: true})
		require.Error(t, err)
		var cmdErr *CommandError
		require.True(t, errors.As(err, &cmdErr))
		assert.Equal(t, 3, cmdErr.ExitCode)
		assert.Equal(t, "boom", cmdErr.Stderr)
		assert.Equal(t, []string{"fail", "x"}, cmdErr.Args)
		assert.Contains(t, err.Error(), "Command `fail x` failed")
	})

	t.Run("unchecked non-zero exit", func(t *testing.T) {
		res, err := r.Run(ctx, []string{"fail"}, Options{Capture: true})
		require.NoError(t, err)
		assert.Equal(t, 3, res.ExitCode)
	})

	t.Run("empty command", func(t *testing.T) {
		_, err := r.Run(ctx, nil, Options{})
		assert.Error(t, err)
	})
}

func TestRunLaunchFailure(t *testing.T) {
	r := New()
	_, err := r.Run(context.Background(), []string{"command-that-does-not-exist"}, Options{Capture: true})
	require.Error(t, err)
	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, -1, cmdErr.ExitCode)
}

func TestAvailable(t *testing.T) {
	original := lookPath
	defer func() { lookPath = original }()

	lookPath = func(file string) (string, error) {
		if file == "trans" {
			return "/usr/bin/trans", nil
		}
		return "", exec.ErrNotFound
	}

	assert.True(t, Available("trans"))
	assert.False(t, New().Available("wl-paste"))
}
