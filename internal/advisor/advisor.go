// Package advisor talks to an out-of-process move advisory engine over
// the standard textual protocol: the engine is handed the current
// position and answers with one candidate move in coordinate form, which
// the caller decodes exactly like a human-originated move.
package advisor

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// DefaultMoveTimeMillis is how long the engine is given per suggestion.
const DefaultMoveTimeMillis = 1000

// Advisor is a running advisory engine process. Calls are blocking and
// must be serialized by the caller; there is no cancellation.
type Advisor struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	lines  *bufio.Scanner
	millis int
}

// Start launches the engine binary at path and performs the protocol
// handshake.
func Start(path string) (*Advisor, error) {
	cmd := exec.Command(path)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start advisor %q: %w", path, err)
	}

	a := &Advisor{
		cmd:    cmd,
		stdin:  stdin,
		lines:  bufio.NewScanner(stdout),
		millis: DefaultMoveTimeMillis,
	}

	if err := a.send("uci"); err != nil {
		return nil, err
	}
	if _, err := a.waitFor("uciok"); err != nil {
		return nil, err
	}
	if err := a.send("isready"); err != nil {
		return nil, err
	}
	if _, err := a.waitFor("readyok"); err != nil {
		return nil, err
	}

	return a, nil
}

// SetMoveTime changes the per-suggestion thinking budget in milliseconds.
func (a *Advisor) SetMoveTime(millis int) {
	if millis > 0 {
		a.millis = millis
	}
}

// Suggest sends the position and blocks until the engine answers with a
// candidate move in coordinate text (e.g. "e2e4", "e7e8q").
func (a *Advisor) Suggest(fen string) (string, error) {
	if err := a.send("position fen " + fen); err != nil {
		return "", err
	}
	if err := a.send(fmt.Sprintf("go movetime %d", a.millis)); err != nil {
		return "", err
	}

	line, err := a.waitFor("bestmove")
	if err != nil {
		return "", err
	}
	move, ok := ParseBestMove(line)
	if !ok {
		return "", fmt.Errorf("malformed advisory reply %q", line)
	}
	return move, nil
}

// Close asks the engine to quit and reaps the process.
func (a *Advisor) Close() error {
	// Quit politely; if the pipe is already gone the Wait below still
	// reaps the process.
	_ = a.send("quit")
	_ = a.stdin.Close()
	return a.cmd.Wait()
}

func (a *Advisor) send(line string) error {
	_, err := io.WriteString(a.stdin, line+"\n")
	return err
}

// waitFor reads engine output until a line starting with prefix arrives.
// Engines emit informational lines in between; those are skipped.
func (a *Advisor) waitFor(prefix string) (string, error) {
	for a.lines.Scan() {
		line := strings.TrimSpace(a.lines.Text())
		if strings.HasPrefix(line, prefix) {
			return line, nil
		}
	}
	if err := a.lines.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("advisor exited waiting for %q", prefix)
}

// ParseBestMove extracts the move text from a "bestmove ..." reply.
func ParseBestMove(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[0] != "bestmove" {
		return "", false
	}
	if fields[1] == "(none)" || fields[1] == "0000" {
		return "", false
	}
	return fields[1], true
}
