package backlight

import (
	"context"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
)

// Watch emits the brightness of the device every time the file is written,
// starting with its current value. Values that fail to read are skipped.
// The channel is closed when ctx is done or the watcher fails.
func (d *Device) Watch(ctx context.Context) (<-chan uint8, error) {
	if _, err := os.Stat(d.Path); err != nil {
		return nil, fmt.Errorf("%w: %w", openErrKind(err), err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	if err := watcher.Add(d.Path); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", d.Path, err)
	}

	out := make(chan uint8)

	go func() {
		defer close(out)
		defer watcher.Close()

		if v, err := d.Read(); err == nil {
			select {
			case out <- v:
			case <-ctx.Done():
				return
			}
		}

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}

				v, err := d.Read()
				if err != nil {
					continue
				}

				select {
				case out <- v:
				case <-ctx.Done():
					return
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return out, nil
}
