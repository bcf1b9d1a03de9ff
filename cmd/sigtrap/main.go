// Command sigtrap waits for a termination signal, reports it on stdout and
// exits. The end-to-end tests run it under nora as a stand-in for an
// interactive child, so signal forwarding can be observed from outside.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	timeout := flag.Duration("timeout", 30*time.Second, "give up waiting after this long")
	flag.Parse()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)

	// The test waits for this line before signaling the wrapper.
	fmt.Println("ready")

	select {
	case sig := <-sigs:
		fmt.Printf("caught %s\n", sig)
	case <-time.After(*timeout):
		fmt.Println("timeout")
		os.Exit(3)
	}
}
