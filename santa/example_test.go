package santa_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/secretsanta/registry"
	"github.com/katalvlaran/secretsanta/santa"
)

// ExampleGenerate draws for two couples with Alice rigged to Carol. Partners
// may not give to each other, which leaves exactly one cycle.
func ExampleGenerate() {
	reg, err := registry.New([]registry.Entry{
		{Name: "Alice", Partner: "Bob"},
		{Name: "Bob", Partner: "Alice"},
		{Name: "Carol", Partner: "Dave"},
		{Name: "Dave", Partner: "Carol"},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	d, err := santa.NewDraw(reg, santa.Rules{Triangles: true, CoupleToCouple: true}, santa.Rigging{"Alice": "Carol"})
	if err != nil {
		fmt.Println(err)
		return
	}
	res, err := santa.Generate(context.Background(), d, santa.Options{Seed: 2024})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(res.List)
	fmt.Println("attempts:", res.Stats.Attempts)
	// Output:
	// Alice → Carol
	// Carol → Bob
	// Bob → Dave
	// Dave → Alice
	// attempts: 1
}

// ExampleHistoryWeight shows the decay over a three-year grandfather period.
func ExampleHistoryWeight() {
	for depth := 0; depth <= 3; depth++ {
		fmt.Printf("%d: %.3f\n", depth, santa.HistoryWeight(depth, 3))
	}
	// Output:
	// 0: 0.000
	// 1: 0.111
	// 2: 0.444
	// 3: 1.000
}

// ExampleCheck rejects a list in which partners give to each other.
func ExampleCheck() {
	reg, _ := registry.New([]registry.Entry{
		{Name: "Alice", Partner: "Bob"},
		{Name: "Bob", Partner: "Alice"},
		{Name: "Carol"},
	})
	d, _ := santa.NewDraw(reg, santa.Rules{Triangles: true}, nil)

	list := santa.SantasList{Pairs: []santa.Pair{
		{Giver: "Alice", Receiver: "Bob"},
		{Giver: "Bob", Receiver: "Carol"},
		{Giver: "Carol", Receiver: "Alice"},
	}}
	fmt.Println(santa.Check(list, d))
	// Output:
	// "Alice" → "Bob": santa: pair is excluded by the rules
}
