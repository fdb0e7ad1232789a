// Package interval implements closed real intervals with sound arithmetic.
//
// Every operation returns an interval that contains the result of the same operation applied
// to any values drawn from the operands. Operations never narrow, and no division is defined.
package interval

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

var (
	ErrNaN           = errors.New("interval bound is NaN")
	ErrInvalidBounds = errors.New("interval lower bound is greater than upper bound")
)

// Interval is a closed interval [lb, ub] with lb <= ub.
// The zero value is the degenerate interval [0, 0].
type Interval struct {
	lb float64
	ub float64
}

// New creates an interval checking that both bounds are numbers and lb <= ub.
// Infinite bounds are allowed.
func New(lb, ub float64) (Interval, error) {
	if math.IsNaN(lb) || math.IsNaN(ub) {
		return Interval{}, errors.Wrapf(ErrNaN, "[%v, %v]", lb, ub)
	}
	if lb > ub {
		return Interval{}, errors.Wrapf(ErrInvalidBounds, "[%v, %v]", lb, ub)
	}
	return Interval{lb: lb, ub: ub}, nil
}

// MustNew is like New but panics on invalid bounds.
func MustNew(lb, ub float64) Interval {
	i, err := New(lb, ub)
	if err != nil {
		panic(err)
	}
	return i
}

// Point returns the degenerate interval [v, v].
func Point(v float64) Interval {
	return Interval{lb: v, ub: v}
}

func (i Interval) LowerBound() float64 {
	return i.lb
}

func (i Interval) UpperBound() float64 {
	return i.ub
}

func (i Interval) IsPoint() bool {
	return i.lb == i.ub
}

func (i Interval) Width() float64 {
	return i.ub - i.lb
}

func (i Interval) Contains(v float64) bool {
	return i.lb <= v && v <= i.ub
}

func (i Interval) ContainsInterval(o Interval) bool {
	return i.lb <= o.lb && o.ub <= i.ub
}

func (i Interval) Equal(o Interval) bool {
	return i.lb == o.lb && i.ub == o.ub
}

// Hull returns the smallest interval containing both i and o.
func (i Interval) Hull(o Interval) Interval {
	return Interval{lb: math.Min(i.lb, o.lb), ub: math.Max(i.ub, o.ub)}
}

func (i Interval) String() string {
	return fmt.Sprintf("[%v, %v]", i.lb, i.ub)
}
