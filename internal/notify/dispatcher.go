// File: internal/notify/dispatcher.go
package notify

import (
	"log"
	"sync"
	"time"
)

const (
	defaultAttempts = 3
	defaultBackoff  = time.Second
	queueSize       = 64
)

// timeSleep 重試間隔，測試可覆寫此變數
var timeSleep = time.Sleep

// Dispatcher 以固定數量的 worker 非同步投遞通知
// 每封信最多嘗試 defaultAttempts 次，全部失敗只記錄 log，
// 不回滾也不影響觸發通知的狀態變更
type Dispatcher struct {
	jobs     chan Notification
	wg       sync.WaitGroup
	mailer   Mailer
	attempts int
	backoff  time.Duration
}

// NewDispatcher 建立投遞池，workers <= 0 時預設為 1
func NewDispatcher(mailer Mailer, workers int) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	d := &Dispatcher{
		jobs:     make(chan Notification, queueSize),
		mailer:   mailer,
		attempts: defaultAttempts,
		backoff:  defaultBackoff,
	}
	d.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer d.wg.Done()
			for n := range d.jobs {
				d.deliver(n)
			}
		}()
	}
	return d
}

// Submit 排入一封待寄送的通知
func (d *Dispatcher) Submit(n Notification) {
	d.jobs <- n
}

// Stop 關閉佇列並等待所有 worker 寄完手上的信
func (d *Dispatcher) Stop() {
	close(d.jobs)
	d.wg.Wait()
}

func (d *Dispatcher) deliver(n Notification) {
	var err error
	for i := 0; i < d.attempts; i++ {
		if err = d.mailer.Send(n); err == nil {
			return
		}
		if i < d.attempts-1 {
			timeSleep(d.backoff * time.Duration(i+1))
		}
	}
	log.Printf("notification delivery failed: recipient=%s destination=%s event=%s err=%v",
		n.Recipient, n.Destination, n.Event, err)
}
