package tuning

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// ChangeKind says which file a Change refers to.
type ChangeKind int

const (
	ChangeTuning ChangeKind = iota
	ChangeCurve
)

// Change is one settled edit of a watched file.
type Change struct {
	Kind ChangeKind
	Path string
}

// Watcher follows the tuning yaml and the difficulty script on disk. fsnotify
// watches their directories; events for other files are dropped.
type Watcher struct {
	fs      *fsnotify.Watcher
	targets map[string]ChangeKind

	mu      sync.Mutex
	pending []Change

	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches tuningPath and scriptPath. Either may be empty.
func NewWatcher(tuningPath, scriptPath string) (*Watcher, error) {
	targets := make(map[string]ChangeKind)
	if tuningPath != "" {
		targets[filepath.Clean(tuningPath)] = ChangeTuning
	}
	if scriptPath != "" {
		targets[filepath.Clean(scriptPath)] = ChangeCurve
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("tuning: watch: nothing to watch")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("tuning: watch: %w", err)
	}
	dirs := make(map[string]bool)
	for path := range targets {
		dir := filepath.Dir(path)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("tuning: watch %s: %w", dir, err)
		}
	}

	w := &Watcher{
		fs:      fw,
		targets: targets,
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	if w == nil {
		return nil
	}
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fs.Close()
		<-w.done
	})
	return err
}

// Poll hands over the changes seen since the last call, one per file, in the
// order they first arrived. It never blocks.
func (w *Watcher) Poll() []Change {
	if w == nil {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	out := w.pending
	w.pending = nil
	return out
}

func (w *Watcher) run() {
	defer close(w.done)
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			change, ok := w.match(event)
			if !ok {
				continue
			}
			now := time.Now()
			if t, seen := last[change.Path]; seen && now.Sub(t) < reloadDebounce {
				continue
			}
			last[change.Path] = now
			w.push(change)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Printf("tuning: watch: %v", err)
		case <-w.closeCh:
			return
		}
	}
}

// match keeps content edits of watched files. Editors that save by rename
// show up as Create on the target name.
func (w *Watcher) match(event fsnotify.Event) (Change, bool) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return Change{}, false
	}
	path := filepath.Clean(event.Name)
	kind, ok := w.targets[path]
	if !ok {
		return Change{}, false
	}
	return Change{Kind: kind, Path: path}, true
}

func (w *Watcher) push(c Change) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, p := range w.pending {
		if p.Path == c.Path {
			return
		}
	}
	w.pending = append(w.pending, c)
}
