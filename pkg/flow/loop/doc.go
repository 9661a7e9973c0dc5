// Package loop contains channel plumbing built on flow.ControlFlow: a
// cancellation-aware receive, a ForEach loop that stops on the first break,
// producers that respect context cancellation, and draining of items left
// behind when a loop stops early. Loop behaviour is configured through
// context values (see WithProcessOptions and WithLoopOptions).
package loop
