// cmd/checkdata/main.go
// Parses bets.csv, users.csv and events.csv and reports how many records
// each holds. Exits non-zero on the first file that fails to load.
//
// Usage:
//
//	DATA_DIR=/srv/league go run ./cmd/checkdata
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/padraicbc/paddock/config"
	"github.com/padraicbc/paddock/store"
)

func main() {
	dir := flag.String("dir", "", "data directory (defaults to DATA_DIR)")
	timeout := flag.Duration("timeout", 30*time.Second, "overall time limit")
	flag.Parse()

	if *dir == "" {
		*dir = config.Load().DataDir
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	s := store.New(*dir)
	steps := []struct {
		file string
		fn   func() (int, error)
	}{
		{store.BetsFile, func() (int, error) { rows, err := s.Bets(ctx); return len(rows), err }},
		{store.UsersFile, func() (int, error) { rows, err := s.Users(ctx); return len(rows), err }},
		{store.EventsFile, func() (int, error) { rows, err := s.Events(ctx); return len(rows), err }},
	}

	for _, st := range steps {
		n, err := st.fn()
		if err != nil {
			log.Fatalf("%s: %v", s.Path(st.file), err)
		}
		log.Printf("%-12s  %d records", st.file, n)
	}
	log.Println("all files parsed")
}
