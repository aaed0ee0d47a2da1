package game

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"golang.org/x/sync/errgroup"

	"github.com/gosaintmrc/sulis/internal/errors"
)

// AudioConfig configures the audio player
type AudioConfig struct {
	// Enabled gates all playback; disabled players load nothing
	Enabled bool

	// Dir is the directory holding *.wav sound resources
	Dir string

	// SampleRate is the output sample rate in Hz
	SampleRate int
}

// AudioPlayer plays preloaded one-shot sounds. Sounds are decoded into
// memory up front; Play never touches the filesystem.
type AudioPlayer struct {
	rate   beep.SampleRate
	sounds map[string]*beep.Buffer
	mu     sync.RWMutex
}

// NewAudioPlayer initializes the speaker and preloads every wav file in
// the configured directory. Decoding runs concurrently; the speaker is
// initialized once the first player is created.
func NewAudioPlayer(cfg AudioConfig) (*AudioPlayer, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = beep.SampleRate(44100)
	}

	if err := speaker.Init(rate, rate.N(time.Millisecond*100)); err != nil {
		return nil, errors.Wrap(err, "failed to initialize speaker")
	}

	p := &AudioPlayer{
		rate:   rate,
		sounds: make(map[string]*beep.Buffer),
	}

	if cfg.Dir != "" {
		if err := p.preloadDir(cfg.Dir); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// preloadDir decodes every wav in dir into memory, keyed by file name
// without extension
func (p *AudioPlayer) preloadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, "failed to read sfx dir %s", dir)
	}

	var g errgroup.Group
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".wav") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".wav")
		path := filepath.Join(dir, entry.Name())
		g.Go(func() error {
			buf, err := p.decode(path)
			if err != nil {
				return err
			}
			p.mu.Lock()
			p.sounds[name] = buf
			p.mu.Unlock()
			return nil
		})
	}

	return g.Wait()
}

func (p *AudioPlayer) decode(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Printf("failed to close %s: %v", path, closeErr)
		}
	}()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", path)
	}

	var s beep.Streamer = streamer
	if format.SampleRate != p.rate {
		s = beep.Resample(4, format.SampleRate, p.rate, streamer)
	}

	buf := beep.NewBuffer(beep.Format{
		SampleRate:  p.rate,
		NumChannels: format.NumChannels,
		Precision:   format.Precision,
	})
	buf.Append(s)

	return buf, nil
}

// Play starts one-shot playback of a preloaded sound. Unknown names are
// logged and ignored.
func (p *AudioPlayer) Play(name string) {
	p.mu.RLock()
	buf, ok := p.sounds[name]
	p.mu.RUnlock()

	if !ok {
		log.Printf("sfx %q not loaded", name)
		return
	}

	speaker.Play(buf.Streamer(0, buf.Len()))
}

// Loaded returns the names of preloaded sounds
func (p *AudioPlayer) Loaded() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	names := make([]string, 0, len(p.sounds))
	for name := range p.sounds {
		names = append(names, name)
	}
	return names
}
