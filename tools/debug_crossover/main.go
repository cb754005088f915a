package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	calc "github.com/wealthcoach/wealthcoach/internal/calculation"
	"github.com/wealthcoach/wealthcoach/internal/config"
)

// Prints the nominal trajectory of every plan in a file as CSV, one row per
// month, followed by the month each plan first overtakes the first plan.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_crossover <plan-file>")
		return
	}
	p := config.NewInputParser()
	file, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	engine := calc.NewProjectionEngine()
	res, err := engine.EvaluatePlanFile(context.Background(), file)
	if err != nil {
		panic(err)
	}
	if len(res.Reports) < 1 {
		fmt.Println("no plans")
		return
	}

	minLen := -1
	for _, r := range res.Reports {
		if minLen == -1 || r.Months() < minLen {
			minLen = r.Months()
		}
	}

	header := []string{"Month"}
	for _, r := range res.Reports {
		header = append(header, r.Name)
	}
	fmt.Println(strings.Join(header, ","))
	for m := 1; m <= minLen; m++ {
		row := []string{fmt.Sprint(m)}
		for _, r := range res.Reports {
			b, _ := r.Nominal.At(m)
			row = append(row, decimal.NewFromFloat(b).StringFixed(2))
		}
		fmt.Println(strings.Join(row, ","))
	}

	base := res.Reports[0]
	for _, r := range res.Reports[1:] {
		c, err := calc.Crossover(r.Nominal, base.Nominal)
		if err != nil {
			fmt.Printf("%s vs %s: %v\n", r.Name, base.Name, err)
			continue
		}
		if !c.Found {
			fmt.Printf("%s vs %s: no crossover\n", r.Name, base.Name)
			continue
		}
		fmt.Printf("%s vs %s: crossover at month %d, balance %s\n", r.Name, base.Name, c.Month,
			decimal.NewFromFloat(c.Balance).StringFixed(2))
	}
}
