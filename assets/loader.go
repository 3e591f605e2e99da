package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"
)

// ErrNotLoaded is returned for an image that was never loaded
var ErrNotLoaded = errors.New("image not loaded")

// decodeLimit caps the number of images decoded at once
const decodeLimit = 4

// Loader decodes images in the background and hands them out once every
// requested image is in. Callbacks registered with OnReady run on the
// goroutine that calls Poll, so game state is never touched off-thread.
type Loader struct {
	fsys         fs.FS
	placeholders bool

	mu        sync.Mutex
	wg        sync.WaitGroup
	started   bool
	pending   int
	err       error
	decoded   map[string]image.Image
	images    map[string]*ebiten.Image
	callbacks []func()
}

// NewLoader returns a loader reading from fsys. A nil fsys serves placeholders only.
func NewLoader(fsys fs.FS, placeholders bool) *Loader {
	return &Loader{
		fsys:         fsys,
		placeholders: placeholders,
		decoded:      make(map[string]image.Image),
		images:       make(map[string]*ebiten.Image),
	}
}

// Load starts decoding paths in the background. Paths already loaded are skipped.
func (l *Loader) Load(paths ...string) {
	l.mu.Lock()
	l.started = true
	todo := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, ok := l.decoded[p]; !ok {
			todo = append(todo, p)
		}
	}
	if len(todo) == 0 {
		l.mu.Unlock()
		return
	}
	l.pending++
	l.wg.Add(1)
	l.mu.Unlock()

	go func() {
		defer l.wg.Done()
		decoded, err := l.decodeAll(todo)

		l.mu.Lock()
		defer l.mu.Unlock()
		l.pending--
		if err != nil {
			l.err = errors.Join(l.err, err)
			return
		}
		for p, img := range decoded {
			l.decoded[p] = img
		}
		log.Debug("images loaded", "count", len(decoded))
	}()
}

func (l *Loader) decodeAll(paths []string) (map[string]image.Image, error) {
	results := make([]image.Image, len(paths))

	var g errgroup.Group
	g.SetLimit(decodeLimit)
	for i, p := range paths {
		g.Go(func() error {
			img, err := l.decode(p)
			if err != nil {
				return err
			}
			results[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	decoded := make(map[string]image.Image, len(paths))
	for i, p := range paths {
		decoded[p] = results[i]
	}
	return decoded, nil
}

func (l *Loader) decode(path string) (image.Image, error) {
	if l.fsys == nil {
		return l.placeholder(path, fs.ErrNotExist)
	}

	f, err := l.fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return l.placeholder(path, err)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func (l *Loader) placeholder(path string, cause error) (image.Image, error) {
	if !l.placeholders {
		return nil, fmt.Errorf("open %s: %w", path, cause)
	}
	log.Warn("image missing, using placeholder", "path", path)
	return Placeholder(path), nil
}

// OnReady registers fn to run once every requested image has loaded.
// fn runs from Poll.
func (l *Loader) OnReady(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.callbacks = append(l.callbacks, fn)
}

// Poll runs the waiting OnReady callbacks if loading has finished.
// It reports whether the loader is ready.
func (l *Loader) Poll() bool {
	l.mu.Lock()
	if !l.readyLocked() {
		l.mu.Unlock()
		return false
	}
	callbacks := l.callbacks
	l.callbacks = nil
	l.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
	return true
}

// Ready reports whether every requested image has loaded without error
func (l *Loader) Ready() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.readyLocked()
}

func (l *Loader) readyLocked() bool {
	return l.started && l.pending == 0 && l.err == nil
}

// Err returns the load failure, if any
func (l *Loader) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Wait blocks until all loads in flight have finished or ctx is done
func (l *Loader) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		l.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return l.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Image returns the decoded image for path
func (l *Loader) Image(path string) (image.Image, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	img, ok := l.decoded[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrNotLoaded)
	}
	return img, nil
}

// Get returns the loaded image for path as an ebiten image, or nil if it was
// never loaded. Must be called from the game goroutine.
func (l *Loader) Get(path string) *ebiten.Image {
	l.mu.Lock()
	defer l.mu.Unlock()

	if img, ok := l.images[path]; ok {
		return img
	}
	src, ok := l.decoded[path]
	if !ok {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	l.images[path] = img
	return img
}

var std = NewLoader(nil, true)

// Configure replaces the package loader
func Configure(fsys fs.FS, placeholders bool) {
	std = NewLoader(fsys, placeholders)
}

// Default returns the package loader
func Default() *Loader {
	return std
}

func Load(paths ...string) {
	std.Load(paths...)
}

func OnReady(fn func()) {
	std.OnReady(fn)
}

func Poll() bool {
	return std.Poll()
}

func Get(path string) *ebiten.Image {
	return std.Get(path)
}

func Err() error {
	return std.Err()
}
