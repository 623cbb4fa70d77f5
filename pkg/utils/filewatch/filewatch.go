package filewatch

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// UntilModifyContext returns a context which is cancelled when any of
// the named files is modified (written, created, removed or renamed).
//
// The returned func releases the watcher. It is safe to call it twice
// or more.
func UntilModifyContext(ctx context.Context, files ...string) (context.Context, func(), error) {
	cctx, cancel := context.WithCancelCause(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		cancel(err)
		return nil, nil, err
	}

	go func() {
		defer watcher.Close()
		select {
		case <-cctx.Done():
		case event, ok := <-watcher.Events:
			if ok {
				cancel(fmt.Errorf("%s is updated (%s)", event.Name, event.Op))
			}
		}
	}()

	for _, f := range files {
		if err := watcher.Add(f); err != nil {
			cancel(err)
			return nil, nil, err
		}
	}
	return cctx, func() { cancel(nil) }, nil
}
