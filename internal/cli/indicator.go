package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

const DefaultIndicatorInterval = 400 * time.Millisecond

// Indicator animates a trailing ellipsis on its own goroutine while a reply is
// pending. It only draws; it never touches conversation state.
type Indicator struct {
	out      io.Writer
	label    string
	interval time.Duration
}

func NewIndicator(out io.Writer, label string, interval time.Duration) *Indicator {
	if interval <= 0 {
		interval = DefaultIndicatorInterval
	}
	return &Indicator{out: out, label: label, interval: interval}
}

// Start begins drawing and returns a stop function that blocks until the
// goroutine has exited and the line is cleared. Stop is safe to call twice.
func (ind *Indicator) Start() (stop func()) {
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(ind.interval)
		defer ticker.Stop()
		dots := 1
		ind.draw(dots)
		for {
			select {
			case <-done:
				ind.clear()
				return
			case <-ticker.C:
				dots = dots%3 + 1
				ind.draw(dots)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			wg.Wait()
		})
	}
}

func (ind *Indicator) draw(dots int) {
	fmt.Fprintf(ind.out, "\r%s%-3s", ind.label, strings.Repeat(".", dots))
}

func (ind *Indicator) clear() {
	fmt.Fprintf(ind.out, "\r%s\r", strings.Repeat(" ", len(ind.label)+3))
}
