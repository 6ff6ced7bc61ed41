package tagvec_test

import (
	"fmt"

	tagvec "github.com/Restioson/tag-vec"
)

func Example() {
	foods := tagvec.New[string](tagvec.Options{})

	foods.Push("salad", "healthy", "veg")
	foods.Push("chips", "junk")
	foods.Push("broccoli", "healthy", "veg")
	foods.Push("fries", "junk", "veg")
	foods.Push("candy", "junk")

	q := tagvec.And(tagvec.Not(tagvec.Tag("veg")), tagvec.Not(tagvec.Tag("healthy")))
	for i := range tagvec.Query(foods, q) {
		if v, err := foods.ValueAt(i); err != nil {
			fmt.Printf("error: %v\n", err)
		} else {
			fmt.Printf("found: %d %s\n", i, v)
		}
	}

	// Output:
	// found: 1 chips
	// found: 4 candy
}

func ExampleParse() {
	foods := tagvec.New[string](tagvec.Options{})

	foods.Push("salad", "healthy", "veg")
	foods.Push("fries", "junk", "veg", "deep fried")
	foods.Push("carrot", "healthy", "veg")

	q, err := tagvec.Parse(`veg && !(junk || "deep fried")`)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Println(q)
	fmt.Println(tagvec.Collect(foods, q))

	// Output:
	// veg && !(junk || "deep fried")
	// [0 2]
}

func ExampleStore_TagNames() {
	foods := tagvec.New[string](tagvec.Options{})
	foods.Push("salad", "veg", "healthy", "veg")

	names, err := foods.TagNames(0)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Println(names)

	// Output:
	// [veg healthy]
}
