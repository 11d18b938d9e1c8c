package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const dateLayout = "2006-01-02"

// FileWriter appends JSON lines to dir/<date>.jsonl, rolling to a new
// file when the date changes and keeping dir/latest pointed at the
// current one.
type FileWriter struct {
	dir string

	mu   sync.Mutex
	out  *os.File
	date string
}

// NewFileWriter opens today's debug file under dir, creating dir first.
func NewFileWriter(dir string) (*FileWriter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating debug log dir: %w", err)
	}
	fw := &FileWriter{dir: dir}
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if err := fw.roll(time.Now()); err != nil {
		return nil, err
	}
	return fw, nil
}

func (fw *FileWriter) Write(p []byte) (int, error) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if now := time.Now(); now.Format(dateLayout) != fw.date {
		if err := fw.roll(now); err != nil {
			return 0, err
		}
	}
	return fw.out.Write(p)
}

func (fw *FileWriter) Close() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if fw.out == nil {
		return nil
	}
	err := fw.out.Close()
	fw.out = nil
	return err
}

// roll switches output to the file for now's date. Callers hold fw.mu.
func (fw *FileWriter) roll(now time.Time) error {
	date := now.Format(dateLayout)
	name := date + ".jsonl"
	f, err := os.OpenFile(filepath.Join(fw.dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening debug log: %w", err)
	}
	if fw.out != nil {
		fw.out.Close()
	}
	fw.out = f
	fw.date = date
	fw.repointLatest(name)
	return nil
}

// repointLatest updates the dir/latest symlink. Best effort: a log write
// never fails over a symlink.
func (fw *FileWriter) repointLatest(target string) {
	link := filepath.Join(fw.dir, "latest")
	tmp := link + ".tmp"
	os.Remove(tmp)
	if os.Symlink(target, tmp) != nil {
		return
	}
	_ = os.Rename(tmp, link)
}

// Cleanup deletes dated debug files older than retentionDays. Anything
// that does not parse as a date is left alone.
func Cleanup(dir string, retentionDays int) {
	matches, err := filepath.Glob(filepath.Join(dir, "????-??-??.jsonl"))
	if err != nil {
		return
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	for _, path := range matches {
		base := filepath.Base(path)
		day, err := time.Parse(dateLayout, base[:len(base)-len(".jsonl")])
		if err != nil {
			continue
		}
		if day.Before(cutoff) {
			os.Remove(path)
		}
	}
}
