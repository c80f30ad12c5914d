package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/toolbridge/toolbridge/gateway"
	"github.com/toolbridge/toolbridge/gateway/config"
	"github.com/toolbridge/toolbridge/gateway/fault"
)

// CheckCmd connects to a single ad-hoc endpoint, bypassing the configuration
// file, and reports whether its tool catalog could be fetched.
type CheckCmd struct {
	Address string `short:"a" long:"address" description:"HTTP address of the tool server" required:"yes"`
	Type    string `short:"t" long:"type" description:"Transport type: http or sse" default:"http"`
	Name    string `short:"n" long:"name" description:"Identifier for the endpoint (defaults to host)"`
}

func (c *CheckCmd) Execute(_ []string) error {
	server := &config.Server{URL: c.Address, Type: c.Type, Name: c.Name}
	if err := server.Validate(); err != nil {
		return err
	}
	server.Init()

	ctx := context.Background()
	session := gateway.New().Connect(ctx, server)
	defer session.Close()

	if failures := session.Errors(); len(failures) > 0 {
		for _, failure := range failures {
			enhanced := fault.Classify(failure.Err.Error())
			fmt.Fprintln(os.Stderr, fault.Format(enhanced))
		}
		return fmt.Errorf("endpoint %s unreachable", server.Name)
	}

	names := session.ToolNames()
	fmt.Printf("endpoint %s ok, %d tool(s)\n", server.Name, len(names))
	for _, name := range names {
		fmt.Println(" ", name)
	}
	return nil
}
