// File: internal/notify/notifier.go
package notify

// 通知事件，對應預約生命週期的兩個狀態變更
const (
	EventConfirmed = "confirmed"
	EventCancelled = "cancelled"
)

// Notification 一封待寄送的預約通知
type Notification struct {
	Recipient   string
	Destination string
	Event       string
}

// Notifier 定義通知投遞介面
// Submit 不得阻擋呼叫端的狀態變更，投遞失敗由實作自行記錄
type Notifier interface {
	Submit(Notification)
}

type FakeNotifier struct {
	SubmitFn func(Notification)
}

// Submit 執行 Fake 設定或 panic
func (f *FakeNotifier) Submit(n Notification) {
	if f.SubmitFn != nil {
		f.SubmitFn(n)
		return
	}
	panic("unexpected Submit")
}
