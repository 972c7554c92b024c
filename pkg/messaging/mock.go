package messaging

// Mock records sends instead of delivering them. Used when no gateway
// is configured and in tests.
type Mock struct {
	Sent []MockMessage
}

type MockMessage struct {
	To   string
	Text string
}

func NewMock() *Mock { return &Mock{} }

func (m *Mock) Send(toPhone, text string) error {
	m.Sent = append(m.Sent, MockMessage{To: toPhone, Text: text})
	return nil
}
