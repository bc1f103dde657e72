package bootsel

import "sync"

// FakePin is a host stand-in whose edges are raised by Press.
type FakePin struct {
	mu      sync.Mutex
	handler func()
	Cleared int
}

func (p *FakePin) SetIRQ(h func()) error {
	p.mu.Lock()
	p.handler = h
	p.mu.Unlock()
	return nil
}

func (p *FakePin) ClearIRQ() error {
	p.mu.Lock()
	p.handler = nil
	p.Cleared++
	p.mu.Unlock()
	return nil
}

// Press delivers one falling edge if a handler is installed.
func (p *FakePin) Press() {
	p.mu.Lock()
	h := p.handler
	p.mu.Unlock()
	if h != nil {
		h()
	}
}

// Armed reports whether a handler is installed.
func (p *FakePin) Armed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.handler != nil
}
