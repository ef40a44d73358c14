package auth

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"

	"golang.org/x/net/publicsuffix"
)

// State - наблюдаемый флаг "пользователь вошел".
// Подписчики получают каждое изменение значения
type State struct {
	mu            sync.Mutex
	authenticated bool
	subscribers   map[int]chan bool
	nextID        int
}

func NewState() *State {
	return &State{subscribers: make(map[int]chan bool)}
}

func (s *State) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.authenticated
}

// Set меняет состояние; повторная установка того же значения не рассылается
func (s *State) Set(authenticated bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.authenticated == authenticated {
		return
	}
	s.authenticated = authenticated

	for _, ch := range s.subscribers {
		// подписчику важно только последнее значение
		select {
		case <-ch:
		default:
		}
		ch <- authenticated
	}
}

// Subscribe возвращает канал изменений и функцию отписки
func (s *State) Subscribe() (<-chan bool, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan bool, 1)
	s.subscribers[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if _, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(ch)
		}
	}

	return ch, cancel
}

// Jar - cookie jar, который можно обнулить при выходе
type Jar struct {
	mu    sync.RWMutex
	inner *cookiejar.Jar
}

func NewJar() (*Jar, error) {
	inner, err := newCookieJar()
	if err != nil {
		return nil, err
	}

	return &Jar{inner: inner}, nil
}

func newCookieJar() (*cookiejar.Jar, error) {
	return cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
}

func (j *Jar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	j.inner.SetCookies(u, cookies)
}

func (j *Jar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.RLock()
	defer j.mu.RUnlock()

	return j.inner.Cookies(u)
}

// Reset выбрасывает все cookie
func (j *Jar) Reset() error {
	inner, err := newCookieJar()
	if err != nil {
		return err
	}

	j.mu.Lock()
	j.inner = inner
	j.mu.Unlock()

	return nil
}
