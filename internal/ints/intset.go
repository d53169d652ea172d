// Package ints implements a compact set of small non-negative integers (e.g. runes).
package ints

const IntSizeShift = 5 + (^uint(0) >> 32 & 1)
const IntSize = 1 << IntSizeShift

// Set is a bit set covering the [lowItem, highItem) range, both rounded to IntSize.
type Set struct {
	lowItem, highItem int
	chunks            []uint
}

func countBits(chunk uint) int {
	result := 0
	for chunk != 0 {
		result++
		chunk &= (chunk - 1)
	}
	return result
}

func NewSet(items ...int) *Set {
	result := &Set{}
	if len(items) > 0 {
		result.Add(items...)
	}
	return result
}

// ToSlice returns set items in ascending order.
func (s *Set) ToSlice() []int {
	result := make([]int, 0, s.Len())
	item := s.lowItem
	for _, chunk := range s.chunks {
		for i := IntSize; i > 0; i-- {
			if chunk&1 != 0 {
				result = append(result, item)
			}
			item++
			chunk >>= 1
		}
	}
	return result
}

func (s *Set) Len() int {
	result := 0
	for _, chunk := range s.chunks {
		result += countBits(chunk)
	}
	return result
}

func baseItem(item int) int {
	return item & ^(IntSize - 1)
}

func (s *Set) allocate(low, high int) {
	lowItem := baseItem(low)
	highItem := baseItem(high) + IntSize
	if len(s.chunks) != 0 {
		if lowItem >= s.lowItem && highItem <= s.highItem {
			return
		}

		if lowItem > s.lowItem {
			lowItem = s.lowItem
		}
		if highItem < s.highItem {
			highItem = s.highItem
		}
	}

	chunks := make([]uint, (highItem-lowItem)>>IntSizeShift)
	if len(s.chunks) != 0 {
		copy(chunks[(s.lowItem-lowItem)>>IntSizeShift:], s.chunks)
	}
	s.chunks = chunks
	s.lowItem = lowItem
	s.highItem = highItem
}

func (s *Set) chunkIndex(item int) int {
	return (item - s.lowItem) >> IntSizeShift
}

func bitMask(item int) uint {
	return 1 << (uint(item) & (IntSize - 1))
}

func minMax(items []int) (min, max int) {
	min = items[0]
	max = items[0]
	for _, item := range items[1:] {
		if item < min {
			min = item
		}
		if item > max {
			max = item
		}
	}
	return
}

func (s *Set) Add(items ...int) *Set {
	if len(items) == 0 {
		return s
	}

	min, max := minMax(items)
	s.allocate(min, max)
	for _, item := range items {
		s.chunks[s.chunkIndex(item)] |= bitMask(item)
	}
	return s
}

func (s *Set) Contains(item int) bool {
	if item < s.lowItem || item >= s.highItem {
		return false
	}

	return s.chunks[s.chunkIndex(item)]&bitMask(item) != 0
}

func (s *Set) Copy() *Set {
	chunks := make([]uint, len(s.chunks))
	copy(chunks, s.chunks)
	return &Set{s.lowItem, s.highItem, chunks}
}

func (s *Set) IsEmpty() bool {
	for _, chunk := range s.chunks {
		if chunk != 0 {
			return false
		}
	}

	return true
}
