package server

import (
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Arch8541/limit/pkg/rules"
)

// reloadDebounce coalesces the burst of write events editors produce
// when saving a file.
const reloadDebounce = 200 * time.Millisecond

// watchRules watches the rule-table file and swaps in a new table
// when it changes. A table that fails verification is rejected and
// the previous one stays in service; the calculator caches nothing,
// so requests after the swap see the new rules immediately.
func (s *Server) watchRules() (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory: editors often replace the file, which
	// drops a watch registered on the file itself.
	dir := filepath.Dir(s.rulesPath)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		var timer *time.Timer
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(s.rulesPath) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(reloadDebounce, s.reloadRules)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("rule table watcher error: %v", err)
			}
		}
	}()

	return func() { watcher.Close() }, nil
}

func (s *Server) reloadRules() {
	table, err := rules.Load(s.rulesPath)
	if err != nil {
		log.Printf("rule table reload failed, keeping previous table: %v", err)
		return
	}

	report := rules.Verify(table)
	if !report.Valid {
		log.Printf("reloaded rule table failed verification (%s), keeping previous table", report.Summary)
		return
	}

	s.mu.Lock()
	s.table = table
	s.report = report
	s.mu.Unlock()

	log.Printf("rule table reloaded from %s", s.rulesPath)
}
