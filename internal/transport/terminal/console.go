// Package terminal draws the board on a text terminal and reads moves line by line.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/tictactoe"
)

const (
	columnSeparator = "|"
	rowSeparator    = " --------- "

	// maxLineLength caps what is kept of one input line; the rest is discarded.
	maxLineLength = 256
)

type line struct {
	text string
	err  error
}

// Console is a tictactoe.Presenter over a line-oriented reader and writer.
type Console struct {
	in     io.Reader
	out    *termenv.Output
	marks  entity.Marks
	colors bool

	once      sync.Once
	closeOnce sync.Once
	lines     chan line
	done      chan struct{}
}

func New(in io.Reader, out io.Writer, marks entity.Marks, colors bool) *Console {
	output := termenv.NewOutput(out)
	if !colors {
		output = termenv.NewOutput(out, termenv.WithProfile(termenv.Ascii))
	}

	return &Console{
		in:     in,
		out:    output,
		marks:  marks,
		colors: colors,
		lines:  make(chan line),
		done:   make(chan struct{}),
	}
}

func (that *Console) Render(board entity.Board) {
	var sb strings.Builder

	sb.WriteString("\n")
	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			sb.WriteString(" " + that.cell(board, row, col) + " ")
			if col < entity.BoardSize-1 {
				sb.WriteString(columnSeparator)
			}
		}
		sb.WriteString("\n")

		if row < entity.BoardSize-1 {
			sb.WriteString(rowSeparator + "\n")
		}
	}
	sb.WriteString("\n")

	that.write(sb.String())
}

func (that *Console) cell(board entity.Board, row, col int) string {
	owner := board.Get(row, col).Owner()
	switch owner {
	case entity.PlayerFirst:
		return that.style(that.marks.Symbol(owner), termenv.ANSIBrightCyan, true)
	case entity.PlayerSecond:
		return that.style(that.marks.Symbol(owner), termenv.ANSIBrightMagenta, true)
	default:
		return that.style(tictactoe.Token(row, col), termenv.ANSIBrightBlack, false)
	}
}

func (that *Console) style(s string, color termenv.ANSIColor, bold bool) string {
	if !that.colors {
		return s
	}

	styled := that.out.String(s).Foreground(color)
	if bold {
		styled = styled.Bold()
	}

	return styled.String()
}

func (that *Console) Prompt(player entity.Player) {
	that.write(fmt.Sprintf("Player %s, choose a cell (a-i): ", that.marks.Symbol(player)))
}

// ReadLine blocks until a line is typed or ctx is done. The line is returned
// trimmed; end of input or a closed console yields apperror.ErrInputClosed.
func (that *Console) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	select {
	case <-that.done:
		return "", apperror.ErrInputClosed
	default:
	}

	that.once.Do(func() { go that.scan() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-that.lines:
		if !ok {
			return "", apperror.ErrInputClosed
		}

		return l.text, l.err
	}
}

// Close stops the input reader once it has nothing left to hand over.
func (that *Console) Close() {
	that.closeOnce.Do(func() { close(that.done) })
}

func (that *Console) scan() {
	defer close(that.lines)

	reader := bufio.NewReader(that.in)
	for {
		text, err := readLine(reader)
		if err == nil || (errors.Is(err, io.EOF) && text != "") {
			if !that.send(line{text: strings.TrimSpace(text)}) {
				return
			}
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				that.send(line{err: fmt.Errorf("failed read input: %w", err)})
			}

			return
		}
	}
}

func (that *Console) send(l line) bool {
	select {
	case that.lines <- l:
		return true
	case <-that.done:
		return false
	}
}

// readLine returns the next line without its newline, keeping at most
// maxLineLength bytes of it.
func readLine(reader *bufio.Reader) (string, error) {
	var sb strings.Builder

	for {
		chunk, err := reader.ReadSlice('\n')
		if room := maxLineLength - sb.Len(); room > 0 {
			if len(chunk) > room {
				chunk = chunk[:room]
			}
			sb.Write(chunk)
		}

		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}

		return strings.TrimSuffix(sb.String(), "\n"), err
	}
}

func (that *Console) Reject(err error) {
	var invalid *tictactoe.InvalidMoveError

	switch {
	case errors.Is(err, apperror.ErrCellOccupied) && errors.As(err, &invalid):
		that.write(fmt.Sprintf("Cell %q is already taken, choose another one.\n", invalid.Token))
	case errors.Is(err, apperror.ErrUnknownToken) && errors.As(err, &invalid):
		that.write(fmt.Sprintf("%q is not a cell, type one letter from a to i.\n", invalid.Token))
	default:
		that.write(fmt.Sprintf("Invalid move: %v\n", err))
	}
}

func (that *Console) Announce(outcome entity.Outcome) {
	switch outcome.Status {
	case entity.StatusWin:
		that.write(fmt.Sprintf("Player %s wins!\n", that.marks.Symbol(outcome.Winner)))
	case entity.StatusTie:
		that.write("It's a tie!\n")
	case entity.StatusInProgress:
	}
}

func (that *Console) write(s string) {
	_, _ = io.WriteString(that.out, s)
}
