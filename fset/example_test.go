package fset_test

import (
	"fmt"

	"github.com/LucaDeng/fuzzpy/fset"
)

// ExampleFuzzySet demonstrates the basic membership calculus: building
// a set, reading degrees, and taking an alpha-cut.
func ExampleFuzzySet() {
	// 1. Build a fuzzy set of flavors with their membership degrees.
	s := fset.New[string]()
	s.AddObject("sweet", 0.9)
	s.AddObject("sour", 0.4)
	s.AddObject("bitter", 0.1)

	// 2. Read individual degrees.
	fmt.Println("mu(sour) =", s.Mu("sour"))

	// 3. The alpha-cut at 0.4 keeps everything at or above the level.
	fmt.Println("alpha(0.4):", s.Alpha(0.4))

	// 4. The strong cut drops the boundary element.
	fmt.Println("salpha(0.4):", s.SAlpha(0.4))
	// Output:
	// mu(sour) = 0.4
	// alpha(0.4): [sweet sour]
	// salpha(0.4): [sweet]
}

// ExampleFuzzySet_Union demonstrates the standard min/max operations.
func ExampleFuzzySet_Union() {
	a := fset.New[string]()
	a.AddObject("x", 0.7)
	a.AddObject("y", 0.2)

	b := fset.New[string]()
	b.AddObject("y", 0.5)
	b.AddObject("z", 0.9)

	// Union takes the greater degree, intersection the lesser.
	u := a.Union(b)
	i := a.Intersection(b)
	fmt.Println("union mu(y) =", u.Mu("y"))
	fmt.Println("intersection mu(y) =", i.Mu("y"))
	fmt.Println("union has z:", u.Contains("z"))
	fmt.Println("intersection has z:", i.Contains("z"))
	// Output:
	// union mu(y) = 0.5
	// intersection mu(y) = 0.2
	// union has z: true
	// intersection has z: false
}

// ExampleFuzzySet_Normalize demonstrates rescaling a subnormal set so
// its height becomes 1.
func ExampleFuzzySet_Normalize() {
	s := fset.New[int]()
	s.AddObject(1, 0.5)
	s.AddObject(2, 0.25)

	fmt.Println("normal before:", s.Normal())
	s.Normalize()
	fmt.Println("normal after:", s.Normal())
	fmt.Println("mu(2) =", s.Mu(2))
	// Output:
	// normal before: false
	// normal after: true
	// mu(2) = 0.5
}
