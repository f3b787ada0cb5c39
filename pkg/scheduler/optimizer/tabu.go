// Package optimizer 提供排班优化算法
package optimizer

import (
	"github.com/paiban/tabuplan/pkg/model"
)

// TabuChecker 禁忌查询接口
type TabuChecker interface {
	Contains(move model.Move) bool
}

// TabuList 固定容量的禁忌表
// 环形缓冲区保存插入顺序，计数表提供 O(1) 查询；容量满时淘汰最旧的移动
// 非并发安全，只由搜索引擎持有
type TabuList struct {
	ring   []model.Move
	head   int // 最旧元素的位置
	size   int
	counts map[model.Move]int
}

// NewTabuList 创建禁忌表
func NewTabuList(capacity int) *TabuList {
	if capacity <= 0 {
		capacity = model.DefaultTabuSize
	}
	return &TabuList{
		ring:   make([]model.Move, capacity),
		counts: make(map[model.Move]int, capacity),
	}
}

// Add 追加移动，满时淘汰最旧的
func (t *TabuList) Add(move model.Move) {
	if t.size == len(t.ring) {
		oldest := t.ring[t.head]
		if t.counts[oldest] <= 1 {
			delete(t.counts, oldest)
		} else {
			t.counts[oldest]--
		}
		t.ring[t.head] = move
		t.head = (t.head + 1) % len(t.ring)
	} else {
		t.ring[(t.head+t.size)%len(t.ring)] = move
		t.size++
	}
	t.counts[move]++
}

// Contains 检查是否在禁忌表中
func (t *TabuList) Contains(move model.Move) bool {
	return t.counts[move] > 0
}

// Len 当前元素个数
func (t *TabuList) Len() int {
	return t.size
}

// Cap 容量
func (t *TabuList) Cap() int {
	return len(t.ring)
}

// Moves 按从旧到新的顺序返回禁忌移动
func (t *TabuList) Moves() []model.Move {
	out := make([]model.Move, t.size)
	for i := 0; i < t.size; i++ {
		out[i] = t.ring[(t.head+i)%len(t.ring)]
	}
	return out
}

// Clear 清空禁忌表
func (t *TabuList) Clear() {
	t.head = 0
	t.size = 0
	t.counts = make(map[model.Move]int, len(t.ring))
}
