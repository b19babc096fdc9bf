package speech

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/creack/pty"
)

const DefaultCommand = "espeak"

// CommandSpeaker speaks by running a host text-to-speech program with the
// phrase as its final argument. The program runs on a pseudo-terminal so
// tools that only talk to a TTY still work; whatever it prints is logged at
// debug level.
type CommandSpeaker struct {
	Command string
	Args    []string
	Logger  *slog.Logger

	// start launches cmd; tests swap it out.
	start func(cmd *exec.Cmd) (io.ReadCloser, error)
}

// NewCommandSpeaker returns a speaker for command (DefaultCommand if empty).
func NewCommandSpeaker(command string, args []string, logger *slog.Logger) *CommandSpeaker {
	if command == "" {
		command = DefaultCommand
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CommandSpeaker{Command: command, Args: args, Logger: logger, start: startPTY}
}

// Available reports whether the command can be found on PATH.
func (s *CommandSpeaker) Available() bool {
	_, err := exec.LookPath(s.Command)
	return err == nil
}

// Speak runs the command and waits for it to exit.
func (s *CommandSpeaker) Speak(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	path, err := exec.LookPath(s.Command)
	if err != nil {
		return fmt.Errorf("%w: %s not found", ErrCapabilityUnavailable, s.Command)
	}

	args := append(append([]string{}, s.Args...), text)
	cmd := exec.CommandContext(ctx, path, args...)
	out, err := s.start(cmd)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCapabilityUnavailable, err)
	}
	s.drain(out)
	out.Close()

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%s exited with status %d", s.Command, exitErr.ExitCode())
		}
		return err
	}
	s.Logger.Debug("spoke phrase", "command", s.Command, "chars", len(text))
	return nil
}

// drain logs the program's output until the terminal closes. Reading a PTY
// master after the child exits ends in an I/O error rather than io.EOF, so
// any read error just stops the loop.
func (s *CommandSpeaker) drain(r io.Reader) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			s.Logger.Debug("speech output", "command", s.Command, "line", line)
		}
	}
}

func startPTY(cmd *exec.Cmd) (io.ReadCloser, error) {
	return pty.Start(cmd)
}
