//go:build integration
// +build integration

package testutils

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"
)

// TestMain makes sure the shared container is purged even on Ctrl+C
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("received interrupt signal, cleaning up Docker containers...")
		CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()

	log.Println("tests completed, cleaning up Docker containers...")
	CleanupSharedContainer()

	os.Exit(code)
}

func TestSharedContainerMigrates(t *testing.T) {
	s := SetupTestSuite(t)
	for _, table := range []string{"teams", "users", "standups", "activities"} {
		if !s.DB.Migrator().HasTable(table) {
			t.Fatalf("table %s missing after migration", table)
		}
	}
}
