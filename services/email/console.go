// Package emailsvc provides core.EmailService implementations.
package emailsvc

import (
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"github.com/aliHasanov22/holb-st-m/core"
)

type consoleService struct {
	defaultFromEmail mail.Address
	subjPrefix       string
}

var _ core.EmailService = (*consoleService)(nil)

// NewConsoleService returns an EmailService that writes messages to stdout;
// for local development.
func NewConsoleService() core.EmailService {
	return &consoleService{
		defaultFromEmail: core.Conf.DefaultFromEmail,
		subjPrefix:       "[" + core.Conf.AppName + "] ",
	}
}

func (svc consoleService) SendMessages(messages ...*core.EmailMessage) {
	for _, msg := range messages {
		go svc.sendMessage(msg)
	}
}

func (svc consoleService) sendMessage(msg *core.EmailMessage) {
	if msg.HasRecipients() && msg.HasContent() {
		svc.send(*msg)
	}
}

func (svc consoleService) send(msg core.EmailMessage) {
	var sb strings.Builder
	sb.WriteString("From: " + svc.defaultFromEmail.String() + "\n")
	sb.WriteString("To: " + joinAddresses(msg.To) + "\n")
	if len(msg.Cc) > 0 {
		sb.WriteString("Cc: " + joinAddresses(msg.Cc) + "\n")
	}
	sb.WriteString("Date: " + time.Now().Format(time.RFC1123Z) + "\n")
	sb.WriteString("Subject: " + svc.subjPrefix + msg.Subject + "\n\n")
	sb.WriteString(msg.BodyStr)

	log.Print(fmt.Sprintf("sending email:\n%s\n%s%s\n", strings.Repeat("-", 79), sb.String(), strings.Repeat("-", 79)))
}

func joinAddresses(addrs []mail.Address) string {
	strs := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		strs = append(strs, addr.String())
	}
	return strings.Join(strs, ", ")
}
