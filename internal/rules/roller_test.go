package rules_test

import (
	stderrors "errors"
)

// scriptedRoller hands out queued values, cycling when it runs out
type scriptedRoller struct {
	values []int
	next   int
	err    error
}

func (r *scriptedRoller) Roll(_ int) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	if len(r.values) == 0 {
		return 0, stderrors.New("no scripted values")
	}
	v := r.values[r.next%len(r.values)]
	r.next++
	return v, nil
}

func (r *scriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
