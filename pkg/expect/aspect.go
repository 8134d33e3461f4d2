package expect

import (
	"reflect"

	"digital.vasic.expectations/pkg/logging"
)

// Aspect is a child builder for expectations on a value derived
// from its parent's value. On creation it registers one
// aggregated expectation on the parent; expectations pushed to
// the aspect afterwards become part of that aggregate, so the
// whole group is reported as a single indented entry in the
// parent's failure message. Once the root is evaluated the
// aspect is closed as well.
type Aspect[T, U any, P Builder[T]] struct {
	parent       P
	owner        owner
	expectations *List[U]
}

// AspectOf creates an Aspect of parent whose value is
// transform applied to the parent's value. The transform runs
// when the parent is evaluated, not when the aspect is created.
//
//	root := expect.That(t, user)
//	expect.AspectOf(root, func(u User) int { return u.Age }).
//		ToPass(should.BeGreaterThan(17)).
//		Parent().
//		ToPass(should.Satisfy("is active", User.Active))
func AspectOf[T, U any, P Builder[T]](
	parent P,
	transform func(T) U,
) *Aspect[T, U, P] {
	expectations := NewList[U]()
	parent.Push(&projected[T, U]{
		transform:    transform,
		expectations: expectations,
	})

	o, _ := any(parent).(owner)
	a := &Aspect[T, U, P]{
		parent:       parent,
		owner:        o,
		expectations: expectations,
	}
	a.logger().Debug("aspect created",
		logging.StringField("type", reflect.TypeOf((*U)(nil)).Elem().String()),
	)
	return a
}

// Push appends an expectation on the derived value. Pushing to
// an aspect of an evaluated root panics with ErrEvaluated.
func (a *Aspect[T, U, P]) Push(expectation Expectation[U]) {
	a.ensureOpen()
	a.expectations.Push(expectation)
}

// ToPass appends an expectation on the derived value and returns
// the aspect.
func (a *Aspect[T, U, P]) ToPass(
	expectation Expectation[U],
) *Aspect[T, U, P] {
	a.Push(expectation)
	return a
}

// Len returns the number of expectations on the derived value.
func (a *Aspect[T, U, P]) Len() int {
	return a.expectations.Len()
}

// Parent returns the builder this aspect was derived from.
func (a *Aspect[T, U, P]) Parent() P {
	return a.parent
}

func (a *Aspect[T, U, P]) ensureOpen() {
	if a.owner != nil {
		a.owner.ensureOpen()
	}
}

func (a *Aspect[T, U, P]) logger() logging.Logger {
	if a.owner == nil {
		return logging.NullLogger{}
	}
	return a.owner.logger()
}
