// Package classify maps an instance's permitted-category count to the
// visual scheme used for its card.
package classify

import (
	"strconv"

	"github.com/getmockd/mcpconsole/pkg/instance"
)

// Scheme is the visual classification of an instance card.
type Scheme struct {
	Name   string // A through E
	Tone   string // palette name, e.g. "blue"
	Border string
	Icon   string
	Badge  string
	Color  string // hex color for terminal rendering
}

var (
	SchemeA = Scheme{
		Name:   "A",
		Tone:   "blue",
		Border: "border-l-blue-500",
		Icon:   "text-blue-600",
		Badge:  "bg-blue-50 text-blue-700 border-blue-200",
		Color:  "#3B82F6",
	}
	SchemeB = Scheme{
		Name:   "B",
		Tone:   "purple",
		Border: "border-l-purple-500",
		Icon:   "text-purple-600",
		Badge:  "bg-purple-50 text-purple-700 border-purple-200",
		Color:  "#A855F7",
	}
	SchemeC = Scheme{
		Name:   "C",
		Tone:   "green",
		Border: "border-l-green-500",
		Icon:   "text-green-600",
		Badge:  "bg-green-50 text-green-700 border-green-200",
		Color:  "#22C55E",
	}
	SchemeD = Scheme{
		Name:   "D",
		Tone:   "amber",
		Border: "border-l-amber-500",
		Icon:   "text-amber-600",
		Badge:  "bg-amber-50 text-amber-700 border-amber-200",
		Color:  "#F59E0B",
	}
	SchemeE = Scheme{
		Name:   "E",
		Tone:   "pink",
		Border: "border-l-pink-500",
		Icon:   "text-pink-600",
		Badge:  "bg-pink-50 text-pink-700 border-pink-200",
		Color:  "#EC4899",
	}
)

// byCount holds the explicit buckets. Counts of 5 and above are handled
// before the lookup.
var byCount = map[int]Scheme{
	1: SchemeA,
	2: SchemeB,
	3: SchemeC,
	4: SchemeD,
}

// Classify returns the scheme for a category count. It is total: zero,
// negative and unmapped counts fall back to SchemeA, and every count of
// five or more maps to SchemeE.
func Classify(count int) Scheme {
	if count >= 5 {
		return SchemeE
	}
	if s, ok := byCount[count]; ok {
		return s
	}
	return SchemeA
}

// ForInstance classifies an instance by its permitted-category count.
func ForInstance(inst instance.Instance) Scheme {
	return Classify(inst.CategoryCount())
}

// All returns every scheme in bucket order, for legends.
func All() []Scheme {
	return []Scheme{SchemeA, SchemeB, SchemeC, SchemeD, SchemeE}
}

// Range describes the counts a scheme covers, e.g. "1", "5+".
func (s Scheme) Range() string {
	switch s.Name {
	case "A":
		return "0-1"
	case "E":
		return "5+"
	}
	for n, candidate := range byCount {
		if candidate.Name == s.Name {
			return strconv.Itoa(n)
		}
	}
	return "?"
}
