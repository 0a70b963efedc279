package assets

import (
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// BuiltinGoRegular — локатор встроенного шрифта Go Regular.
const BuiltinGoRegular = "builtin:goregular"

// FontCallback вызывается в главном цикле, когда шрифт готов.
type FontCallback func(f *opentype.Font)

type fontResult struct {
	locator string
	font    *opentype.Font
	err     error
}

type faceKey struct {
	font *opentype.Font
	size int
}

// FontManager загружает шрифты в фоне, кэширует их и размеры начертаний.
// Request и Poll должны вызываться из одной горутины (главного цикла):
// фоновые загрузчики только пишут в канал results.
type FontManager struct {
	client   *http.Client
	fonts    map[string]*opentype.Font
	failed   map[string]error
	pending  map[string][]FontCallback
	ready    []func()
	results  chan fontResult
	faces    map[faceKey]font.Face
	inflight int
}

// NewFontManager создает новый экземпляр FontManager.
func NewFontManager(fetchTimeout time.Duration) *FontManager {
	return &FontManager{
		client:  &http.Client{Timeout: fetchTimeout},
		fonts:   make(map[string]*opentype.Font),
		failed:  make(map[string]error),
		pending: make(map[string][]FontCallback),
		results: make(chan fontResult, 8),
		faces:   make(map[faceKey]font.Face),
	}
}

// Request запрашивает шрифт. Колбэк будет вызван из Poll после завершения загрузки.
// При ошибке загрузки колбэк не вызывается никогда.
func (m *FontManager) Request(locator string, cb FontCallback) {
	if f, ok := m.fonts[locator]; ok {
		m.ready = append(m.ready, func() { cb(f) })
		return
	}
	if _, failed := m.failed[locator]; failed {
		return
	}
	if waiting, ok := m.pending[locator]; ok {
		m.pending[locator] = append(waiting, cb)
		return
	}

	m.pending[locator] = []FontCallback{cb}
	m.inflight++
	go func() {
		f, err := m.fetch(context.Background(), locator)
		m.results <- fontResult{locator: locator, font: f, err: err}
	}()
}

// Poll применяет завершённые загрузки, не блокируясь. Возвращает число вызванных колбэков.
func (m *FontManager) Poll() int {
drain:
	for {
		select {
		case res := <-m.results:
			m.inflight--
			m.complete(res)
		default:
			break drain
		}
	}

	ready := m.ready
	m.ready = nil
	for _, fn := range ready {
		fn()
	}
	return len(ready)
}

// Pending сообщает, сколько загрузок ещё не завершено.
func (m *FontManager) Pending() int {
	return m.inflight + len(m.ready)
}

// Loaded возвращает уже загруженный шрифт.
func (m *FontManager) Loaded(locator string) (*opentype.Font, bool) {
	f, ok := m.fonts[locator]
	return f, ok
}

func (m *FontManager) complete(res fontResult) {
	callbacks := m.pending[res.locator]
	delete(m.pending, res.locator)

	if res.err != nil {
		m.failed[res.locator] = res.err
		log.Printf("WARNING: Failed to load font %s: %v. Labels using it will not be shown.", res.locator, res.err)
		return
	}

	m.fonts[res.locator] = res.font
	log.Printf("Successfully loaded font %s", res.locator)
	for _, cb := range callbacks {
		m.ready = append(m.ready, func() { cb(res.font) })
	}
}

func (m *FontManager) fetch(ctx context.Context, locator string) (*opentype.Font, error) {
	var (
		data []byte
		err  error
	)
	switch {
	case locator == BuiltinGoRegular:
		data = goregular.TTF
	case strings.HasPrefix(locator, "http://"), strings.HasPrefix(locator, "https://"):
		data, err = m.download(ctx, locator)
	default:
		data, err = os.ReadFile(locator)
	}
	if err != nil {
		return nil, err
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return f, nil
}

func (m *FontManager) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download font: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download font: unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// FaceFor возвращает начертание нужного размера в пикселях, создавая его при первом обращении.
// Размер округляется до целого, чтобы кэш не рос бесконечно при плавном зуме.
func (m *FontManager) FaceFor(f *opentype.Font, size float64) font.Face {
	if f == nil {
		return nil
	}
	key := faceKey{font: f, size: int(math.Round(size))}
	if key.size < 1 {
		return nil
	}
	if face, ok := m.faces[key]; ok {
		return face
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(key.size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("WARNING: Failed to create font face of size %d: %v", key.size, err)
		return nil
	}
	m.faces[key] = face
	return face
}

// Cleanup закрывает все созданные начертания.
func (m *FontManager) Cleanup() {
	for key, face := range m.faces {
		if err := face.Close(); err != nil {
			log.Printf("WARNING: closing font face: %v", err)
		}
		delete(m.faces, key)
	}
	log.Println("All font faces released.")
}
