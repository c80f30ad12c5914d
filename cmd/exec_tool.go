package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/toolbridge/toolbridge/gateway/fault"
)

// ExecCmd invokes a registered tool from the CLI.  Arguments can be supplied
// either inline via -i/--input or loaded from a JSON file via --file.
type ExecCmd struct {
	Name       string `short:"n" long:"name" description:"Tool name" required:"yes"`
	Inline     string `short:"i" long:"input" description:"Inline JSON arguments (object)"`
	File       string `long:"file" description:"Path to JSON file with arguments (use - for stdin)"`
	TimeoutSec int    `long:"timeout" description:"Seconds to wait for completion" default:"120"`
	JSON       bool   `long:"json" description:"Print result as JSON"`
}

func (c *ExecCmd) Execute(_ []string) error {
	if c.Inline != "" && c.File != "" {
		return fmt.Errorf("-i/--input and --file are mutually exclusive")
	}

	session, err := sessionSingleton()
	if err != nil {
		return err
	}
	defer session.Close()

	entry, ok := session.Tool(c.Name)
	if !ok {
		return fmt.Errorf("tool %q not found", c.Name)
	}

	// ------------------------------------------------------------------
	// Build argument map
	// ------------------------------------------------------------------
	var args map[string]interface{}

	switch {
	case c.Inline != "":
		if err := json.Unmarshal([]byte(c.Inline), &args); err != nil {
			return fmt.Errorf("invalid inline JSON: %w", err)
		}
	case c.File != "":
		var rdr io.Reader
		if c.File == "-" {
			rdr = os.Stdin
		} else {
			f, err := os.Open(c.File)
			if err != nil {
				return fmt.Errorf("open input file: %w", err)
			}
			defer f.Close()
			rdr = f
		}
		data, err := io.ReadAll(rdr)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if err := json.Unmarshal(data, &args); err != nil {
			return fmt.Errorf("decode JSON: %w", err)
		}
	default:
		// no arguments supplied, args remains nil
	}

	timeout := time.Duration(c.TimeoutSec) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	out, err := entry.Invoke(ctx, args)
	if err != nil {
		enhanced := fault.Classify(err.Error())
		fmt.Fprintln(os.Stderr, fault.Format(enhanced))
		return fmt.Errorf("tool %s failed", c.Name)
	}

	if c.JSON {
		bytes, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(bytes))
	} else {
		// When output is already a string/byte slice just print it.
		switch v := out.(type) {
		case string:
			fmt.Println(v)
		case []byte:
			fmt.Println(string(v))
		default:
			bytes, _ := json.MarshalIndent(v, "", "  ")
			fmt.Println(string(bytes))
		}
	}
	return nil
}
