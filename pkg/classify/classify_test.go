package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/getmockd/mcpconsole/pkg/instance"
)

func TestClassify_ExplicitBuckets(t *testing.T) {
	want := map[int]Scheme{1: SchemeA, 2: SchemeB, 3: SchemeC, 4: SchemeD}
	for n, scheme := range want {
		assert.Equal(t, scheme, Classify(n), "count %d", n)
	}
}

func TestClassify_FiveOrMore(t *testing.T) {
	for _, n := range []int{5, 6, 10, 99, 1 << 20} {
		assert.Equal(t, SchemeE, Classify(n), "count %d", n)
	}
}

func TestClassify_ZeroFallsBackToOne(t *testing.T) {
	assert.Equal(t, Classify(1), Classify(0))
	assert.Equal(t, SchemeA, Classify(-3))
}

func TestClassify_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range All() {
		assert.False(t, seen[s.Color], "color %s reused", s.Color)
		seen[s.Color] = true
	}
	assert.Len(t, seen, 5)
}

func TestClassify_Deterministic(t *testing.T) {
	for n := 0; n < 20; n++ {
		assert.Equal(t, Classify(n), Classify(n))
	}
}

func TestForInstance_OnlyCountMatters(t *testing.T) {
	a := instance.Instance{PermittedCategories: []string{"Sales", "HR"}}
	b := instance.Instance{PermittedCategories: []string{"Support", "Finance"}}
	assert.Equal(t, SchemeB, ForInstance(a))
	assert.Equal(t, ForInstance(a), ForInstance(b))
	assert.Equal(t, SchemeA, ForInstance(instance.Instance{}))
}

func TestScheme_Range(t *testing.T) {
	assert.Equal(t, "0-1", SchemeA.Range())
	assert.Equal(t, "3", SchemeC.Range())
	assert.Equal(t, "5+", SchemeE.Range())
}
