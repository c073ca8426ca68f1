package logs

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// Query selects lines from a run log.
type Query struct {
	// Limit keeps the last Limit matching lines; <= 0 keeps all of them.
	Limit int
	// RunID keeps only records stamped with this run id.
	RunID string
}

type record struct {
	RunID string `json:"run_id"`
}

// Tail returns the last lines of the log at path matching q, oldest first.
// A missing file yields no lines.
func Tail(path string, q Query) ([]string, error) {
	file, err := open(path)
	if err != nil || file == nil {
		return nil, err
	}
	defer file.Close()

	var ring []string
	idx := 0
	err = scan(file, func(line string) {
		if q.RunID != "" && parse(line).RunID != q.RunID {
			return
		}
		if q.Limit <= 0 || len(ring) < q.Limit {
			ring = append(ring, line)
			return
		}
		ring[idx] = line
		idx = (idx + 1) % q.Limit
	})
	if err != nil {
		return nil, err
	}
	if idx == 0 {
		return ring, nil
	}
	lines := make([]string, 0, len(ring))
	lines = append(lines, ring[idx:]...)
	return append(lines, ring[:idx]...), nil
}

// LastRunID returns the run id of the newest record that carries one, or ""
// when none is found.
func LastRunID(path string) (string, error) {
	file, err := open(path)
	if err != nil || file == nil {
		return "", err
	}
	defer file.Close()

	var last string
	err = scan(file, func(line string) {
		if id := parse(line).RunID; id != "" {
			last = id
		}
	})
	return last, err
}

func open(path string) (*os.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat log file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("log path %q is a directory", path)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}

func scan(r io.Reader, fn func(string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		fn(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read log file: %w", err)
	}
	return nil
}

// parse tolerates non-JSON lines; they never match a run id.
func parse(line string) record {
	var rec record
	_ = json.Unmarshal([]byte(line), &rec)
	return rec
}
