// Package ttylog records terminal output in the asciicast v2 format so task
// transcripts can be replayed with asciinema.
//
// See: https://github.com/asciinema/asciinema/blob/develop/doc/asciicast-v2.md
package ttylog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"sync"
	"time"
)

// AsciicastFileExt holds the suggested file extension for asciicast files.
const AsciicastFileExt = "cast"

const (
	EventOutput = "o"
	EventInput  = "i"
)

var (
	crlf = regexp.MustCompile(`\r?\n`)
)

func writeJSONLine(w io.Writer, structure interface{}) error {
	line, err := json.Marshal(structure)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%s\n", string(line))
	return err
}

// AsciicastWriter is an io.Writer that records everything written to it as
// output events. The header is written with the first event.
type AsciicastWriter struct {
	w     io.Writer
	title string
	// Now is the clock used to time events.
	Now func() time.Time

	mu    sync.Mutex
	start time.Time
	began bool
}

var _ io.Writer = (*AsciicastWriter)(nil)

// NewAsciicastWriter creates a recorder writing to w.
func NewAsciicastWriter(w io.Writer, title string) *AsciicastWriter {
	return &AsciicastWriter{w: w, title: title, Now: time.Now}
}

func (a *AsciicastWriter) Write(p []byte) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.Now()
	if !a.began {
		// Give generic settings that should work to display most outputs.
		if err := writeJSONLine(a.w, map[string]interface{}{
			"version":   2,
			"width":     80,
			"height":    24,
			"timestamp": now.Unix(),
			"title":     a.title,
			"env": map[string]interface{}{
				"TERM": "xterm-256color",
			},
		}); err != nil {
			return 0, err
		}
		a.start = now
		a.began = true
	}

	// Terminals need the carriage return or playback creeps across the screen.
	data := crlf.ReplaceAllString(string(p), "\r\n")
	deltaSeconds := microsecondsToSeconds(now.Sub(a.start).Microseconds())
	if err := writeJSONLine(a.w, &Event{deltaSeconds, EventOutput, data}); err != nil {
		return 0, err
	}
	return len(p), nil
}

// AsciicastReader reads events from an asciicast formatted file.
type AsciicastReader struct {
	r             *bufio.Reader
	consumeHeader sync.Once
}

// NewAsciicastReader reads events from r, skipping the header.
func NewAsciicastReader(r io.Reader) *AsciicastReader {
	return &AsciicastReader{r: bufio.NewReader(r)}
}

// Next gets the next event, it returns io.EOF if there are no more.
func (log *AsciicastReader) Next() (*Event, error) {
	log.consumeHeader.Do(func() {
		log.r.ReadBytes('\n')
	})

	for {
		line, err := log.r.ReadBytes('\n')
		if err != nil {
			return nil, err
		}

		if len(line) == 1 {
			// Skip blank lines
			continue
		}

		var event Event
		if err := json.Unmarshal(line, &event); err != nil {
			return nil, err
		}

		switch event.EventType {
		case EventOutput, EventInput:
			return &event, nil
		default:
			// skip unknown events
			continue
		}
	}
}

// Event is a single timed chunk of terminal data.
type Event struct {
	TimeSeconds float64
	EventType   string
	EventData   string
}

func (log *Event) UnmarshalJSON(data []byte) error {
	var v []interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if count := len(v); count != 3 {
		return fmt.Errorf("malformed line, expected 3 entries got %d", count)
	}

	var timeOk, typeOk, dataOk bool
	log.TimeSeconds, timeOk = v[0].(float64)
	log.EventType, typeOk = v[1].(string)
	log.EventData, dataOk = v[2].(string)

	if !timeOk || !typeOk || !dataOk {
		return fmt.Errorf("malformed data in line: %q", v)
	}

	return nil
}

func (log *Event) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{log.TimeSeconds, log.EventType, log.EventData})
}

// Replay writes the output events of a recording to w. If maxSleep > 0 the
// recorded pauses between events are reproduced, each capped at maxSleep.
func Replay(r io.Reader, w io.Writer, maxSleep time.Duration) error {
	return replay(r, w, maxSleep, time.Sleep)
}

func replay(r io.Reader, w io.Writer, maxSleep time.Duration, sleep func(time.Duration)) error {
	reader := NewAsciicastReader(r)
	var prevSeconds float64
	for first := true; ; first = false {
		event, err := reader.Next()
		switch {
		case err == io.EOF:
			return nil
		case err != nil:
			return err
		}

		delta := secondsToDuration(event.TimeSeconds - prevSeconds)
		prevSeconds = event.TimeSeconds
		if maxSleep > 0 && !first && delta > 0 {
			if delta > maxSleep {
				delta = maxSleep
			}
			sleep(delta)
		}

		if event.EventType != EventOutput {
			continue
		}
		if _, err := io.WriteString(w, event.EventData); err != nil {
			return err
		}
	}
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

func microsecondsToSeconds(microseconds int64) (seconds float64) {
	return (float64(microseconds) * float64(time.Microsecond)) / float64(time.Second)
}
