// Package store reads league records from comma-separated files.
package store

import (
	"bufio"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/padraicbc/paddock/models"
)

// File names inside the data directory.
const (
	BetsFile   = "bets.csv"
	UsersFile  = "users.csv"
	EventsFile = "events.csv"
)

// maxLine bounds a single record line.
const maxLine = 1 << 20

// Store reads the league files from one directory. It holds no state
// besides the directory and is safe for concurrent use.
type Store struct {
	dir string
}

// New returns a Store reading from dir. An empty dir means the working
// directory.
func New(dir string) *Store {
	if dir == "" {
		dir = "."
	}
	return &Store{dir: dir}
}

// Path returns the full path of one of the league files.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Bets returns every bet in bets.csv in file order.
func (s *Store) Bets(ctx context.Context) ([]models.Bet, error) {
	return readAll(ctx, s.Path(BetsFile), models.ParseBet)
}

// Users returns every user in users.csv in file order.
func (s *Store) Users(ctx context.Context) ([]models.User, error) {
	return readAll(ctx, s.Path(UsersFile), models.ParseUser)
}

// Events returns every event in events.csv in file order.
func (s *Store) Events(ctx context.Context) ([]models.Event, error) {
	return readAll(ctx, s.Path(EventsFile), models.ParseEvent)
}

type readResult[T any] struct {
	rows []T
	err  error
}

// readAll parses path on its own goroutine so a cancelled ctx releases the
// caller without waiting for the disk.
func readAll[T any](ctx context.Context, path string, parse func(string) (T, error)) ([]T, error) {
	done := make(chan readResult[T], 1)
	go func() {
		rows, err := readFile(path, parse)
		done <- readResult[T]{rows: rows, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.rows, r.err
	}
}

func readFile[T any](path string, parse func(string) (T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows := []T{}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		row, err := parse(line)
		if err != nil {
			var fe *models.FieldError
			if errors.As(err, &fe) {
				fe.Line = n
			}
			return nil, err
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
