// Command secretsanta draws a Secret Santa list from a YAML configuration.
//
//	secretsanta --config family.yaml --order AlphabeticalOrder
//	secretsanta validate --config family.yaml
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
