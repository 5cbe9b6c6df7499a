package randsrc

import (
	"errors"
	"fmt"
	"math/big"
	"sync"
)

// ErrExhausted is returned by a Fixed source once every value was consumed.
var ErrExhausted = errors.New("randsrc: fixed source exhausted")

// Fixed replays a predetermined list of integers. It lets tests choose exact
// Miller-Rabin witnesses or prime candidates.
type Fixed struct {
	mu     sync.Mutex
	values []*big.Int
	next   int
}

// NewFixed returns a Fixed source that yields values in order.
func NewFixed(values ...*big.Int) *Fixed {
	cp := make([]*big.Int, len(values))
	for i, v := range values {
		cp[i] = new(big.Int).Set(v)
	}
	return &Fixed{values: cp}
}

// Int implements Source. It fails if the next value lies outside [lo, hi].
func (f *Fixed) Int(lo, hi *big.Int) (*big.Int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if lo.Cmp(hi) > 0 {
		return nil, fmt.Errorf("%w: [%s, %s]", ErrEmptyRange, lo, hi)
	}
	if f.next >= len(f.values) {
		return nil, ErrExhausted
	}
	v := f.values[f.next]
	f.next++
	if v.Cmp(lo) < 0 || v.Cmp(hi) > 0 {
		return nil, fmt.Errorf("randsrc: fixed value %s outside [%s, %s]", v, lo, hi)
	}
	return new(big.Int).Set(v), nil
}

// Remaining reports how many values have not been consumed yet.
func (f *Fixed) Remaining() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.values) - f.next
}
