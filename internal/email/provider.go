package email

// Email - простое сообщение
type Email struct {
	To      []string
	Subject string
	Body    string
}

// Provider определяет интерфейс для отправки email.
// Отправка всегда fire-and-forget: сбой логируется, но никогда
// не влияет на результат операции ядра.
type Provider interface {
	// Send отправляет простое email сообщение
	Send(email *Email) error

	// SendWelcome отправляет приветственное письмо после регистрации
	SendWelcome(to, name string) error

	// SendBookingNotice уведомляет артиста о новой заявке
	SendBookingNotice(to, clientName, eventType string) error

	// Validate проверяет конфигурацию провайдера
	Validate() error

	// Close закрывает соединение с провайдером
	Close() error
}
