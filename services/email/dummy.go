package emailsvc

import (
	"sync"

	"github.com/aliHasanov22/holb-st-m/core"
)

// DummyService records messages instead of sending them; for tests.
type DummyService struct {
	mutex        sync.Mutex
	SentMessages []core.EmailMessage
}

var _ core.EmailService = (*DummyService)(nil)

func NewDummyService() *DummyService {
	return &DummyService{}
}

func (svc *DummyService) SendMessages(messages ...*core.EmailMessage) {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	for _, msg := range messages {
		if msg.HasRecipients() && msg.HasContent() {
			svc.SentMessages = append(svc.SentMessages, *msg)
		}
	}
}

// Sent returns a snapshot of recorded messages.
func (svc *DummyService) Sent() []core.EmailMessage {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	out := make([]core.EmailMessage, len(svc.SentMessages))
	copy(out, svc.SentMessages)
	return out
}
