package app

import "artlink_backend/internal/email"

// MockEmailProvider используется для тестов и локальной разработки.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(msg *email.Email) error { return nil }
func (m *MockEmailProvider) SendWelcome(to, name string) error {
	return nil
}
func (m *MockEmailProvider) SendBookingNotice(to, clientName, eventType string) error {
	return nil
}
func (m *MockEmailProvider) Validate() error { return nil }
func (m *MockEmailProvider) Close() error    { return nil }
