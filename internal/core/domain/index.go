package domain

import "fmt"

// Index is a position in a list, convertible between zero- and one-based forms.
// Commands receive one-based indices from users and resolve them zero-based.
type Index struct {
	zeroBased int
}

// IndexFromZeroBased creates an Index. It panics if i is negative.
func IndexFromZeroBased(i int) Index {
	if i < 0 {
		panic(fmt.Sprintf("domain: negative index %d", i))
	}
	return Index{zeroBased: i}
}

// IndexFromOneBased creates an Index. It panics if i is less than 1.
func IndexFromOneBased(i int) Index {
	if i < 1 {
		panic(fmt.Sprintf("domain: one-based index %d out of range", i))
	}
	return Index{zeroBased: i - 1}
}

// ZeroBased returns the index counting from 0.
func (i Index) ZeroBased() int {
	return i.zeroBased
}

// OneBased returns the index counting from 1.
func (i Index) OneBased() int {
	return i.zeroBased + 1
}

func (i Index) String() string {
	return fmt.Sprintf("Index{zeroBased=%d}", i.zeroBased)
}
