package ingest

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/nxadm/tail"

	"airops/internal/model"
	"airops/internal/seed"
)

// Op is the kind of collection change carried by a feed line.
type Op string

const (
	OpPut    Op = "put"
	OpRemove Op = "remove"
)

// Change is one decoded feed line.
type Change struct {
	Screen string
	Op     Op
	Record model.Record
	When   time.Time
}

type Options struct {
	Path        string
	Follow      bool // keep reading appended lines
	FromStart   bool // replay existing lines before following
	ScanBufSize int  // per-line max (bytes)
}

// Read streams changes from a JSONL feed. Each line is a flat record with a
// "screen" key and an optional "op" ("put" when absent). Malformed lines are
// reported on the error channel and skipped.
func Read(ctx context.Context, opt Options) (<-chan Change, <-chan error) {
	out := make(chan Change, 256)
	errs := make(chan error, 16)

	go func() {
		defer close(out)
		defer close(errs)

		if opt.Follow {
			readFromTail(ctx, opt, out, errs)
			return
		}
		f, err := os.Open(opt.Path)
		if err != nil {
			errs <- err
			return
		}
		defer f.Close()
		readFromReader(ctx, f, opt.ScanBufSize, out, errs)
	}()

	return out, errs
}

// Decode parses one feed line.
func Decode(line string) (Change, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(line), &obj); err != nil {
		return Change{}, err
	}
	screen, _ := obj["screen"].(string)
	if screen == "" {
		return Change{}, fmt.Errorf("missing screen")
	}
	if _, err := seed.Screen(screen); err != nil {
		return Change{}, err
	}
	op := OpPut
	if v, ok := obj["op"].(string); ok && v != "" {
		op = Op(strings.ToLower(v))
	}
	if op != OpPut && op != OpRemove {
		return Change{}, fmt.Errorf("unknown op %q", op)
	}
	delete(obj, "screen")
	delete(obj, "op")
	r, err := seed.FromMap(obj)
	if err != nil {
		return Change{}, err
	}
	return Change{Screen: screen, Op: op, Record: r, When: time.Now()}, nil
}

func emit(ctx context.Context, text string, out chan<- Change, errs chan<- error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	ch, err := Decode(text)
	if err != nil {
		select {
		case errs <- fmt.Errorf("feed line %q: %w", truncate(text, 60), err):
		default:
		}
		return
	}
	select {
	case out <- ch:
	case <-ctx.Done():
	}
}

func readFromReader(ctx context.Context, r io.Reader, maxBuf int, out chan<- Change, errs chan<- error) {
	if maxBuf <= 0 {
		maxBuf = 1024 * 1024
	}
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 1024*64)
	scanner.Buffer(buf, maxBuf)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		default:
		}
		emit(ctx, scanner.Text(), out, errs)
	}
	if err := scanner.Err(); err != nil {
		errs <- err
	}
}

func readFromTail(ctx context.Context, opt Options, out chan<- Change, errs chan<- error) {
	whence := io.SeekEnd
	if opt.FromStart {
		whence = io.SeekStart
	}
	t, err := tail.TailFile(opt.Path, tail.Config{
		Follow:    true,
		ReOpen:    true,
		MustExist: true,
		Logger:    tail.DiscardingLogger,
		Poll:      true,
		Location:  &tail.SeekInfo{Offset: 0, Whence: whence},
	})
	if err != nil {
		errs <- err
		return
	}
	defer t.Cleanup()
	for {
		select {
		case <-ctx.Done():
			_ = t.Stop()
			return
		case l, ok := <-t.Lines:
			if !ok {
				return
			}
			if l.Err != nil {
				errs <- l.Err
				continue
			}
			emit(ctx, l.Text, out, errs)
		}
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
