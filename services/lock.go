package services

import "sync"

// keyedLock khóa theo key để tuần tự hóa các thao tác trên cùng một phòng
// hoặc cùng một đặt phòng trong tiến trình (chống race kiểm-tra-rồi-ghi).
// Mutex tạo ra được giữ lại theo key, không thu hồi: mỗi phòng/đặt phòng
// chỉ tốn một mutex nên bộ nhớ tăng theo số bản ghi, ở quy mô này không đáng kể.
type keyedLock struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedLock() *keyedLock {
	return &keyedLock{locks: make(map[string]*sync.Mutex)}
}

// Lock khóa theo key, trả về hàm mở khóa
func (k *keyedLock) Lock(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}

var (
	roomLocks    = newKeyedLock()
	bookingLocks = newKeyedLock()
)
