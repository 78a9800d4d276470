// File: internal/notify/mailer.go
package notify

import (
	"errors"
	"fmt"
	"net/smtp"

	"reservas/internal/domain"
)

// Mailer 定義單封信件的寄送介面
type Mailer interface {
	Send(n Notification) error
}

// SMTPConfig SMTP 連線設定，由環境變數注入
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// smtpSendMail 用來寄送信件，測試可覆寫此變數
var smtpSendMail = smtp.SendMail

type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send 組裝純文字信件並透過 SMTP relay 寄出
func (m *SMTPMailer) Send(n Notification) error {
	if m.cfg.Username == "" || m.cfg.Password == "" {
		return domain.DeliveryError{Recipient: n.Recipient, Err: errors.New("smtp credentials not configured")}
	}

	from := m.cfg.From
	if from == "" {
		from = m.cfg.Username
	}

	message := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: Reservation Update\r\n"+
			"\r\n"+
			"Your trip to %s has been %s.\r\n",
		from, n.Recipient, n.Destination, n.Event))

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	addr := m.cfg.Host + ":" + m.cfg.Port
	if err := smtpSendMail(addr, auth, from, []string{n.Recipient}, message); err != nil {
		return domain.DeliveryError{Recipient: n.Recipient, Err: err}
	}
	return nil
}
