package pool_test

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/smnsjas/go-poolcore/pool"
)

type conn struct{ addr string }

type connAllocator struct{ addr string }

func (a connAllocator) Allocate(ctx context.Context) (*conn, error) {
	return &conn{addr: a.addr}, nil
}

func (a connAllocator) Deallocate(ctx context.Context, c *conn) error {
	return nil
}

func ExampleNew() {
	// 1. Build the configuration the pool will read at construction.
	cfg := pool.New[*conn]()
	if err := cfg.SetSize(25); err != nil {
		log.Fatal(err)
	}
	if err := cfg.SetTTL(30, time.Second); err != nil {
		log.Fatal(err)
	}
	cfg.SetAllocator(connAllocator{addr: "db.example.com:5432"})

	// 2. Clone it for a second pool; the copies are independent.
	replica := pool.New[*conn]()
	if err := cfg.CopyInto(replica); err != nil {
		log.Fatal(err)
	}

	fmt.Println(cfg.Size(), cfg.TTLDuration())
	fmt.Println(replica.Size(), replica.TTLDuration())
	// Output:
	// 25 30s
	// 25 30s
}
