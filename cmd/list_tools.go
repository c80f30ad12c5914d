package cmd

import (
	"fmt"
)

// ListToolsCmd prints every registered tool, optionally filtered by a name
// pattern.
type ListToolsCmd struct {
	Pattern string `short:"p" long:"pattern" description:"Name pattern: * for all, otherwise prefix match" default:"*"`
}

func (c *ListToolsCmd) Execute(_ []string) error {
	session, err := sessionSingleton()
	if err != nil {
		return err
	}
	defer session.Close()

	// MatchTools returns lexical name order, helpful for tests & scripting.
	for _, entry := range session.MatchTools(c.Pattern) {
		fmt.Printf("%s\t%s\n", entry.Name, entry.Description)
	}
	return nil
}
