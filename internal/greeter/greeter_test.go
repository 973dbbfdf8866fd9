package greeter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelloWorld(t *testing.T) {
	t.Parallel()

	got := HelloWorld()
	want := "Hello, Boot.dev!"
	if got != want {
		t.Fatalf("HelloWorld() = %q; want %q", got, want)
	}
}

func TestHelloWorld_Deterministic(t *testing.T) {
	t.Parallel()

	first := HelloWorld()
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, HelloWorld(), "call %d", i+1)
	}
}
