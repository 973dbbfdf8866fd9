package greeter

const Greeting = "Hello, Boot.dev!"

// HelloWorld returns the exercise greeting.
func HelloWorld() string {
	return Greeting
}
