package notify

import (
	"sync"

	"go.uber.org/zap"
)

// Level - вид уведомления
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification - короткое сообщение для пользователя (toast)
type Notification struct {
	Level   Level
	Message string
}

// Notifier показывает пользователю исход операции
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier пишет уведомления в лог
type LogNotifier struct {
	Logger *zap.SugaredLogger
}

func NewLogNotifier(logger *zap.SugaredLogger) *LogNotifier {
	return &LogNotifier{Logger: logger}
}

func (n *LogNotifier) Success(msg string) {
	n.Logger.Infow(msg, "notification", LevelSuccess)
}

func (n *LogNotifier) Error(msg string) {
	n.Logger.Warnw(msg, "notification", LevelError)
}

// Recorder запоминает все уведомления
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Success(msg string) { r.add(LevelSuccess, msg) }

func (r *Recorder) Error(msg string) { r.add(LevelError, msg) }

func (r *Recorder) add(level Level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, Notification{Level: level, Message: msg})
}

// All возвращает копию накопленных уведомлений
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

// Last возвращает последнее уведомление
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

// Chan отдает уведомления в канал. Если читатель не успевает, уведомление теряется
type Chan struct {
	C chan Notification
}

func NewChan(size int) *Chan {
	return &Chan{C: make(chan Notification, size)}
}

func (c *Chan) Success(msg string) { c.send(LevelSuccess, msg) }

func (c *Chan) Error(msg string) { c.send(LevelError, msg) }

// Drain забирает накопленные уведомления, не блокируясь
func (c *Chan) Drain() []Notification {
	var out []Notification
	for {
		select {
		case n := <-c.C:
			out = append(out, n)
		default:
			return out
		}
	}
}

func (c *Chan) send(level Level, msg string) {
	select {
	case c.C <- Notification{Level: level, Message: msg}:
	default:
	}
}

// Nop ничего не показывает
type Nop struct{}

func (Nop) Success(string) {}

func (Nop) Error(string) {}
