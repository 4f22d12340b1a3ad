package mailer

import (
	"fmt"
	"html"
	"strings"
)

type SupportMessage struct {
	Name     string
	Email    string
	Phone    string
	Category string
	Message  string
}

func (m SupportMessage) Subject() string {
	return fmt.Sprintf("[Suporte] - %s", m.Category)
}

func (m SupportMessage) Body() string {
	var b strings.Builder

	b.WriteString("<h2>Nova mensagem de suporte</h2>")
	fmt.Fprintf(&b, "<p><strong>Nome:</strong> %s</p>", html.EscapeString(m.Name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", html.EscapeString(m.Email))
	if m.Phone != "" {
		fmt.Fprintf(&b, "<p><strong>Telefone:</strong> %s</p>", html.EscapeString(m.Phone))
	}
	fmt.Fprintf(&b, "<p><strong>Tipo:</strong> %s</p>", html.EscapeString(m.Category))
	b.WriteString("<p><strong>Mensagem:</strong></p>")
	fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(m.Message))

	return b.String()
}
