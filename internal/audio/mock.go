package audio

// Mock is a test double recording calls.
type Mock struct {
	playing    bool
	playCalls  int
	pauseCalls int
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Play() {
	m.playCalls++
	m.playing = true
}

func (m *Mock) Pause() {
	m.pauseCalls++
	m.playing = false
}

func (m *Mock) Playing() bool { return m.playing }

// PlayCalls returns how many times Play was called.
func (m *Mock) PlayCalls() int { return m.playCalls }

// PauseCalls returns how many times Pause was called.
func (m *Mock) PauseCalls() int { return m.pauseCalls }
