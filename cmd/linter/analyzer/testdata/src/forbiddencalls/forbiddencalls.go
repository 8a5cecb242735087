package forbiddencalls

import (
	"log"
	"os"
)

func SynthesizeOrPanic() {
	panic("synthesis failed") // want "panic is forbidden"
}

func LoadConfigOrFatal() {
	log.Fatal("config missing") // want "log.Fatal is forbidden outside main function"
}

func ExitOnBadStrategy() {
	os.Exit(1) // want "os.Exit is forbidden outside main function"
}

func MultipleCallsFunction() {
	panic("panic 1")   // want "panic is forbidden"
	log.Fatal("fatal") // want "log.Fatal is forbidden outside main function"
	os.Exit(0)         // want "os.Exit is forbidden outside main function"
}

func shadowedPanic() {
	panic := func(string) {}
	panic("local function is fine")
}
