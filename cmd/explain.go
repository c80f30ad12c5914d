package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/toolbridge/toolbridge/gateway/fault"
)

// ExplainCmd classifies a raw error message into user-facing guidance.  The
// message comes either from -m/--message or from stdin when the flag is
// omitted.
type ExplainCmd struct {
	Message string `short:"m" long:"message" description:"Raw error message to classify (reads stdin when omitted)"`
	JSON    bool   `long:"json" description:"Print the structured error envelope as JSON"`
}

func (c *ExplainCmd) Execute(_ []string) error {
	message := c.Message
	if message == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		message = strings.TrimSpace(string(data))
	}
	if message == "" {
		return fmt.Errorf("no message supplied")
	}

	enhanced := fault.Classify(message)

	if c.JSON {
		envelope := fault.NewEnvelope(enhanced, nil)
		data, _ := json.MarshalIndent(envelope, "", "  ")
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Category   : %s\n", enhanced.Category)
	fmt.Printf("Recoverable: %v\n", enhanced.Recoverable)
	fmt.Println(fault.Format(enhanced))
	return nil
}
