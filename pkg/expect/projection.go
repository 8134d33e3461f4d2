package expect

// projected evaluates a nested list against a value derived from
// the parent value. The derived value is recomputed on every
// check; nothing is cached between evaluations.
type projected[T, U any] struct {
	transform    func(T) U
	expectations *List[U]
}

func (p *projected[T, U]) Check(value T) Result {
	r := p.expectations.Check(p.transform(value))
	if r.Passed() {
		return r
	}
	return Fail(Indent(r.Message()))
}

// Project returns a single expectation over T that derives a U
// with transform and checks it against the expectations added by
// configure. Failures of the nested group are indented by one
// level. A nil configure, or one that returns nil, yields a
// projection that always passes.
//
//	expect.Project(
//		func(u User) string { return u.Name },
//		func(name *expect.List[string]) *expect.List[string] {
//			return name.ToPass(should.HavePrefix("J"))
//		},
//	)
func Project[T, U any](
	transform func(T) U,
	configure func(*List[U]) *List[U],
) Expectation[T] {
	return &projected[T, U]{
		transform:    transform,
		expectations: configureList(configure),
	}
}

// ProjectedBy registers Project(transform, configure) on b and
// returns b for further chaining.
func ProjectedBy[T, U any, B Builder[T]](
	b B,
	transform func(T) U,
	configure func(*List[U]) *List[U],
) B {
	b.Push(Project(transform, configure))
	return b
}

// unwrapped is a projection whose derivation can fail. A failed
// derivation is reported verbatim; a failure of the nested group
// is indented like any other projection.
type unwrapped[T, U any] struct {
	extract      func(T) (U, Result)
	expectations *List[U]
}

func (u *unwrapped[T, U]) Check(value T) Result {
	inner, r := u.extract(value)
	if !r.Passed() {
		return r
	}

	r = u.expectations.Check(inner)
	if r.Passed() {
		return r
	}
	return Fail(Indent(r.Message()))
}

// Unwrap is like Project for derivations that are only defined
// for some values, such as dereferencing a pointer or reading the
// value of a successful call. extract returns the derived value
// and Pass, or a failing Result explaining why no value could be
// derived; in the latter case the nested expectations are not
// run.
func Unwrap[T, U any](
	extract func(T) (U, Result),
	configure func(*List[U]) *List[U],
) Expectation[T] {
	return &unwrapped[T, U]{
		extract:      extract,
		expectations: configureList(configure),
	}
}

func configureList[U any](
	configure func(*List[U]) *List[U],
) *List[U] {
	if configure == nil {
		return NewList[U]()
	}
	if l := configure(NewList[U]()); l != nil {
		return l
	}
	return NewList[U]()
}
