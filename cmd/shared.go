package cmd

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/toolbridge/toolbridge/gateway"
	"github.com/toolbridge/toolbridge/gateway/config"
)

var (
	cfgPath string

	sessionOnce sync.Once
	sessionInst *gateway.Session
	sessionErr  error
)

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// session singleton can be created lazily by whichever sub-command executes
// first.
func setConfigPath(p string) { cfgPath = p }

// sessionSingleton connects to the configured servers only once and reuses
// the session across sub-commands within the same CLI invocation.
func sessionSingleton() (*gateway.Session, error) {
	sessionOnce.Do(func() {
		ctx := context.Background()
		if cfgPath == "" {
			sessionErr = fmt.Errorf("no configuration supplied, use -f/--config")
			return
		}
		cfg, err := config.Load(ctx, cfgPath)
		if err != nil {
			sessionErr = err
			return
		}
		servers, err := cfg.ServerList(ctx)
		if err != nil {
			sessionErr = err
			return
		}

		var opts []gateway.Option
		if os.Getenv("TOOLBRIDGE_DEBUG") == "1" {
			opts = append(opts, gateway.WithDebugWriter(os.Stderr))
		}
		sessionInst = gateway.New(opts...).Connect(ctx, servers...)

		for _, failure := range sessionInst.Errors() {
			fmt.Fprintf(os.Stderr, "warn: %v\n", failure)
		}
	})
	return sessionInst, sessionErr
}
