package expect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const multiline = "this\nis\na\nmultiline\nmessage"

// leadingSpaces counts the spaces before the first other rune.
func leadingSpaces(line string) int {
	return len(line) - len(strings.TrimLeft(line, " "))
}

func TestProject_RunsAllExpectations(t *testing.T) {
	first, second := NewProbe(Pass()), NewProbe(Pass())

	root := ProjectedBy(Value(true),
		func(bool) int { return 1 },
		func(l *List[int]) *List[int] {
			return l.ToPass(ProbeFor[int](first)).
				ToPass(ProbeFor[int](second))
		},
	)
	root.Check()

	assert.Equal(t, 1, first.Calls)
	assert.Equal(t, 1, second.Calls)
}

func TestProject_IndentsOutput(t *testing.T) {
	projected := Project(
		func(bool) int { return 1 },
		func(l *List[int]) *List[int] {
			return l.ToPass(ProbeFor[int](NewProbe(Fail(multiline))))
		},
	)

	r := projected.Check(true)

	require.False(t, r.Passed())
	lines := strings.Split(r.Message(), "\n")
	assert.Len(t, lines, 5)
	for _, line := range lines {
		assert.Equal(t, 2, leadingSpaces(line), "line %q", line)
	}
}

func TestProject_IndentationComposes(t *testing.T) {
	for depth := 1; depth <= 5; depth++ {
		var e Expectation[int] = ProbeFor[int](NewProbe(Fail(multiline)))
		for i := 0; i < depth; i++ {
			inner := e
			e = Project(
				func(v int) int { return v },
				func(l *List[int]) *List[int] { return l.ToPass(inner) },
			)
		}

		r := e.Check(0)

		require.False(t, r.Passed())
		for _, line := range strings.Split(r.Message(), "\n") {
			assert.Equal(t, 2*depth, leadingSpaces(line),
				"depth %d line %q", depth, line)
		}
	}
}

func TestProject_NestsAcrossTypes(t *testing.T) {
	probe := NewProbe(Pass())

	root := ProjectedBy(Value(true),
		func(bool) int { return 1 },
		func(l *List[int]) *List[int] {
			return ProjectedBy(l,
				func(int) float64 { return 1.0 },
				func(l *List[float64]) *List[float64] {
					return ProjectedBy(l,
						func(float64) string { return "foo" },
						func(l *List[string]) *List[string] {
							return l.ToPass(ProbeFor[string](probe))
						},
					)
				},
			)
		},
	)
	root.Check()

	assert.Equal(t, 1, probe.Calls)
}

func TestProject_EmptyIsVacuouslyTrue(t *testing.T) {
	tests := []struct {
		name      string
		configure func(*List[int]) *List[int]
	}{
		{"untouched list", func(l *List[int]) *List[int] { return l }},
		{"nil configure", nil},
		{"configure returns nil", func(*List[int]) *List[int] { return nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Project(func(s string) int { return len(s) }, tt.configure)
			assert.True(t, e.Check("anything").Passed())
		})
	}
}

func TestProject_RederivesOnEveryCheck(t *testing.T) {
	derivations := 0
	e := Project(
		func(v int) int {
			derivations++
			return v * 2
		},
		func(l *List[int]) *List[int] {
			return l.ToPass(Func[int](func(v int) Result {
				if v == 4 {
					return Pass()
				}
				return Failf("got %d", v)
			}))
		},
	)

	assert.True(t, e.Check(2).Passed())
	assert.Equal(t, "  got 6", e.Check(3).Message())
	assert.Equal(t, 2, derivations)
}

func TestProject_ConfigureRunsOnce(t *testing.T) {
	configured := 0
	e := Project(
		func(v int) int { return v },
		func(l *List[int]) *List[int] {
			configured++
			return l
		},
	)

	e.Check(1)
	e.Check(2)

	assert.Equal(t, 1, configured)
}

func TestUnwrap_ExtractFailureReportedVerbatim(t *testing.T) {
	probe := NewProbe(Pass())
	e := Unwrap(
		func(p *int) (int, Result) {
			if p == nil {
				return 0, Fail("was nil\nsecond line")
			}
			return *p, Pass()
		},
		func(l *List[int]) *List[int] {
			return l.ToPass(ProbeFor[int](probe))
		},
	)

	r := e.Check(nil)

	assert.Equal(t, "was nil\nsecond line", r.Message())
	assert.Equal(t, 0, probe.Calls)
}

func TestUnwrap_NestedFailureIndented(t *testing.T) {
	n := 3
	e := Unwrap(
		func(p *int) (int, Result) { return *p, Pass() },
		func(l *List[int]) *List[int] {
			return l.ToPass(ProbeFor[int](NewProbe(Fail("a\nb"))))
		},
	)

	assert.Equal(t, "  a\n  b", e.Check(&n).Message())
	assert.True(t, Unwrap(
		func(p *int) (int, Result) { return *p, Pass() },
		nil,
	).Check(&n).Passed())
}
