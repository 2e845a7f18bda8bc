// cmd/lastrace/main.go
// Prints the latest classification or championship table from the Ergast API.
//
// Usage:
//
//	go run ./cmd/lastrace -kind qualifying
//	go run ./cmd/lastrace -kind drivers -season 2023
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/padraicbc/paddock/ergast"
)

func main() {
	kind := flag.String("kind", "race", "qualifying, race, drivers or constructors")
	root := flag.String("url", ergast.DefaultRootURL, "API root")
	season := flag.String("season", ergast.DefaultSeason, "season, e.g. 2023")
	timeout := flag.Duration("timeout", ergast.DefaultTimeout, "request timeout")
	flag.Parse()

	c := ergast.New(*root, ergast.WithSeason(*season), ergast.WithTimeout(*timeout))
	ctx, cancel := context.WithTimeout(context.Background(), *timeout+time.Second)
	defer cancel()

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := render(ctx, tw, c, *kind); err != nil {
		log.Fatalf("%s: %v", *kind, err)
	}
	if err := tw.Flush(); err != nil {
		log.Fatal("flush:", err)
	}
}

func render(ctx context.Context, w io.Writer, c *ergast.Client, kind string) error {
	switch kind {
	case "qualifying":
		res, err := c.QualifyingResults(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, res.RaceName)
		fmt.Fprintln(w, "POS\tNO\tDRIVER\tQ1\tQ2\tQ3")
		for _, r := range res.Rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", r.Position, r.Number, r.Driver, r.Q1, r.Q2, r.Q3)
		}
	case "race":
		res, err := c.RaceResults(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, res.RaceName)
		fmt.Fprintln(w, "POS\tNO\tDRIVER\tTIME\tFASTEST LAP")
		for _, r := range res.Rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.Position, r.Number, r.Driver, r.RaceTime, r.FastestLapTime)
		}
	case "drivers":
		res, err := c.DriverStandings(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Season %s, round %s\n", res.Season, res.Round)
		fmt.Fprintln(w, "POS\tDRIVER\tPOINTS\tWINS")
		for _, r := range res.Rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Position, r.Driver, r.Points, r.Wins)
		}
	case "constructors":
		res, err := c.ConstructorStandings(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Season %s, round %s\n", res.Season, res.Round)
		fmt.Fprintln(w, "POS\tCONSTRUCTOR\tPOINTS\tWINS")
		for _, r := range res.Rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Position, r.Constructor, r.Points, r.Wins)
		}
	default:
		return fmt.Errorf("unknown kind %q", kind)
	}
	return nil
}
