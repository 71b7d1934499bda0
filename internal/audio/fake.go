// internal/audio/fake.go
package audio

// FakePlayer запоминает вызовы вместо воспроизведения.
type FakePlayer struct {
	Ext     string
	Loop    bool
	Playing bool
	Plays   int
	Rewinds int
	Vol     float64
	Closed  bool
}

func (p *FakePlayer) Play()               { p.Playing = true; p.Plays++ }
func (p *FakePlayer) Pause()              { p.Playing = false }
func (p *FakePlayer) Rewind() error       { p.Rewinds++; return nil }
func (p *FakePlayer) IsPlaying() bool     { return p.Playing }
func (p *FakePlayer) SetVolume(v float64) { p.Vol = v }
func (p *FakePlayer) Close() error        { p.Closed = true; return nil }

// FakeBackend создаёт FakePlayer без аудио-устройства.
type FakeBackend struct {
	Players []*FakePlayer
}

func (b *FakeBackend) NewPlayer(ext string, data []byte, loop bool) (Player, error) {
	if ext != ".wav" && ext != ".mp3" {
		return nil, ErrUnsupportedFormat
	}
	p := &FakePlayer{Ext: ext, Loop: loop}
	b.Players = append(b.Players, p)
	return p, nil
}
