package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/DoyleJ11/lol-draft-sim/internal/engine"
)

// Reader answers engine prompts with lines read from r, writing the prompt
// text to w first.
type Reader struct {
	sc  *bufio.Scanner
	out io.Writer
}

func NewReader(r io.Reader, w io.Writer) *Reader {
	if w == nil {
		w = io.Discard
	}
	return &Reader{sc: bufio.NewScanner(r), out: w}
}

// Choose blocks on the underlying reader; ctx is not consulted mid-read.
func (r *Reader) Choose(_ context.Context, p engine.Prompt) (string, error) {
	fmt.Fprint(r.out, PromptText(p))
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.sc.Text(), nil
}

func PromptText(p engine.Prompt) string {
	if len(p.Options) > 0 {
		return fmt.Sprintf("Choose your champion (%s): ", strings.Join(p.Options, ", "))
	}
	if p.Action == engine.ActionBan {
		return fmt.Sprintf("%s bans: ", p.Side)
	}
	return fmt.Sprintf("%s picks: ", p.Side)
}
