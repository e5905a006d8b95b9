// Package journal persists quote outcomes as JSON lines for later inspection.
package journal

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Statuses recorded per entry.
const (
	StatusQuoted = "quoted"
	StatusFailed = "failed"
)

// Entry is one processed address and what came of it.
type Entry struct {
	Ts        time.Time `json:"ts"`
	Address   string    `json:"address"`
	OutAmount string    `json:"out_amount,omitempty"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
}

// Recorder appends entries as JSON lines. It is an audit trail only: nothing
// reads it back at startup, so the dedup registry still resets on restart.
type Recorder struct {
	mu   sync.Mutex
	file *os.File
	enc  *json.Encoder
}

// NewRecorder creates/opens the target file and returns a recorder.
func NewRecorder(path string) (*Recorder, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &Recorder{
		file: file,
		enc:  json.NewEncoder(file),
	}, nil
}

// Record writes a single entry to the underlying JSONL file.
func (r *Recorder) Record(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.file == nil {
		return
	}
	_ = r.enc.Encode(entry)
}

// Close flushes and closes the file handle.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
