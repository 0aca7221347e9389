// Package safe_close 协调多个子服务的优雅关闭
package safe_close

import (
	"sync"
)

// SafeClose coordinates the shutdown of attached goroutines
// SafeClose 协调已挂载协程的关闭
type SafeClose struct {
	closeSignal chan struct{}
	closeOnce   sync.Once
	wg          sync.WaitGroup

	mu  sync.Mutex
	err error
}

func NewSafeClose() *SafeClose {
	return &SafeClose{
		closeSignal: make(chan struct{}),
	}
}

// Attach starts fn in a new goroutine
// fn must call done() when it has finished, and should begin
// shutting down once closeSignal is closed
// Attach 在新协程中启动 fn
// fn 完成时必须调用 done()，并在 closeSignal 关闭后开始退出
func (s *SafeClose) Attach(fn func(done func(), closeSignal <-chan struct{})) {
	s.wg.Add(1)
	go fn(func() { s.wg.Done() }, s.closeSignal)
}

// SendCloseSignal 发送关闭信号，首个非 nil 错误会被记录
func (s *SafeClose) SendCloseSignal(err error) {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
		close(s.closeSignal)
	})
}

// WaitClosed 阻塞直到所有挂载的协程退出，返回首个关闭错误
func (s *SafeClose) WaitClosed() error {
	s.wg.Wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
